// Package storage defines the transactional object-store contract the record
// store is built on. Implementations own open/upgrade lifecycle, transaction
// scoping and the put/get/getAll/delete primitives; callers never touch the
// backing database directly.
package storage
