package storage_mocks

//go:generate mockgen -source=../interfaces.go -destination=storage_mocks.go -package=storage_mocks
