package handlers

import (
	"net/http"

	"recordbook/internal/dto"
	"recordbook/internal/errors"
	"recordbook/internal/services"
	"recordbook/internal/validation"

	"github.com/labstack/echo/v4"
)

// RecordHandler handles record CRUD endpoints of one record store
type RecordHandler struct {
	store services.RecordStoreInterface
}

// NewRecordHandler creates a new record handler
func NewRecordHandler(store services.RecordStoreInterface) *RecordHandler {
	return &RecordHandler{store: store}
}

// storeParam reads and validates the :store path parameter.
func storeParam(c echo.Context) (string, bool) {
	name := c.Param("store")
	if fields := validation.GetValidator().Var("store", name, "store_name"); len(fields) > 0 {
		return "", false
	}
	return name, true
}

func sendInvalidStore(c echo.Context) error {
	fields := validation.GetValidator().Var("store", c.Param("store"), "store_name")
	return SendValidationError(c, fields)
}

// bindRecord binds and validates a record request body
func bindRecord(c echo.Context) (*dto.RecordRequest, error) {
	var req dto.RecordRequest
	if err := c.Bind(&req); err != nil {
		return nil, SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("request body must be a JSON record"))
	}
	if fields := validation.GetValidator().Struct(&req); len(fields) > 0 {
		return nil, SendValidationError(c, fields)
	}
	return &req, nil
}

// CreateRecord saves a new record with a fresh key
// @Summary Create record
// @Tags Records
// @Accept json
// @Produce json
// @Param store path string true "Object store name"
// @Param request body dto.RecordRequest true "Record"
// @Success 201 {object} SuccessResponse{data=models.Record}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid record"
// @Failure 404 {object} errors.ErrorResponse "STORE_001 - Unknown object store"
// @Router /api/v1/stores/{store}/records [post]
func (h *RecordHandler) CreateRecord(c echo.Context) error {
	storeName, ok := storeParam(c)
	if !ok {
		return sendInvalidStore(c)
	}

	req, err := bindRecord(c)
	if req == nil {
		return err
	}

	record, err := req.ToRecord()
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	saved, err := h.store.Upsert(requestContext(c), storeName, record)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    saved,
		Message: "record saved",
	})
}

// UpdateRecord overwrites an existing record in place
// @Summary Update record
// @Tags Records
// @Accept json
// @Produce json
// @Param store path string true "Object store name"
// @Param id path int true "Record key"
// @Param request body dto.RecordRequest true "Record"
// @Success 200 {object} SuccessResponse{data=models.Record}
// @Failure 404 {object} errors.ErrorResponse "RECORD_001 - Record not found"
// @Router /api/v1/stores/{store}/records/{id} [put]
func (h *RecordHandler) UpdateRecord(c echo.Context) error {
	storeName, ok := storeParam(c)
	if !ok {
		return sendInvalidStore(c)
	}

	key, err := parseRecordKey(c)
	if err != nil {
		return SendError(c, errors.RecordInvalidID, errors.WithDetails(err.Error()))
	}

	req, err := bindRecord(c)
	if req == nil {
		return err
	}

	record, err := req.ToRecord()
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}
	record.ID = key

	updated, err := h.store.Update(requestContext(c), storeName, record)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    updated,
		Message: "record updated",
	})
}

// ListRecords returns every record of a store in key order
// @Summary List records
// @Tags Records
// @Produce json
// @Param store path string true "Object store name"
// @Success 200 {object} SuccessResponse{data=dto.RecordListResponse}
// @Router /api/v1/stores/{store}/records [get]
func (h *RecordHandler) ListRecords(c echo.Context) error {
	storeName, ok := storeParam(c)
	if !ok {
		return sendInvalidStore(c)
	}

	records, err := h.store.ListAll(requestContext(c), storeName)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.RecordListResponse{
			Store:   storeName,
			Records: records,
			Count:   len(records),
		},
	})
}

// GetRecord returns a single record
// @Summary Get record
// @Tags Records
// @Produce json
// @Param store path string true "Object store name"
// @Param id path int true "Record key"
// @Success 200 {object} SuccessResponse{data=models.Record}
// @Failure 404 {object} errors.ErrorResponse "RECORD_001 - Record not found"
// @Router /api/v1/stores/{store}/records/{id} [get]
func (h *RecordHandler) GetRecord(c echo.Context) error {
	storeName, ok := storeParam(c)
	if !ok {
		return sendInvalidStore(c)
	}

	key, err := parseRecordKey(c)
	if err != nil {
		return SendError(c, errors.RecordInvalidID, errors.WithDetails(err.Error()))
	}

	record, err := h.store.Get(requestContext(c), storeName, key)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: record})
}

// DeleteRecord removes a record by key. Missing keys are not an error.
// @Summary Delete record
// @Tags Records
// @Produce json
// @Param store path string true "Object store name"
// @Param id path int true "Record key"
// @Success 200 {object} SuccessResponse
// @Router /api/v1/stores/{store}/records/{id} [delete]
func (h *RecordHandler) DeleteRecord(c echo.Context) error {
	storeName, ok := storeParam(c)
	if !ok {
		return sendInvalidStore(c)
	}

	key, err := parseRecordKey(c)
	if err != nil {
		return SendError(c, errors.RecordInvalidID, errors.WithDetails(err.Error()))
	}

	if err := h.store.DeleteByKey(requestContext(c), storeName, key); err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "record deleted"})
}

// ListStores returns the object stores of the open database
// @Summary List object stores
// @Tags Stores
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.StoreListResponse}
// @Failure 503 {object} errors.ErrorResponse "STORE_002 - Database could not be opened"
// @Router /api/v1/stores [get]
func (h *RecordHandler) ListStores(c echo.Context) error {
	ctx := requestContext(c)

	db, err := h.store.Open(ctx)
	if err != nil {
		return SendServiceError(c, err)
	}

	names, err := h.store.ObjectStoreNames(ctx)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.StoreListResponse{
			Database: db.Name(),
			Version:  db.Version(),
			Stores:   names,
		},
	})
}
