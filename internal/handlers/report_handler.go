package handlers

import (
	"net/http"

	"recordbook/internal/dto"
	"recordbook/internal/errors"
	"recordbook/internal/services"
	"recordbook/internal/validation"

	"github.com/labstack/echo/v4"
)

// ReportHandler handles category report endpoints
type ReportHandler struct {
	store services.RecordStoreInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(store services.RecordStoreInterface) *ReportHandler {
	return &ReportHandler{store: store}
}

func bindReportQuery(c echo.Context, requireMonth bool) (*dto.ReportQuery, error) {
	var query dto.ReportQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return nil, SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("year and month must be integers"))
	}

	fields := validation.GetValidator().Struct(&query)
	if requireMonth && query.Month == 0 {
		fields = append(fields, validation.FieldError{
			Field:   "month",
			Tag:     "required",
			Message: "month is required",
		})
	}
	if len(fields) > 0 {
		return nil, SendValidationError(c, fields)
	}
	return &query, nil
}

// YearlyReport groups the records of one calendar year by category
// @Summary Yearly category report
// @Tags Reports
// @Produce json
// @Param store path string true "Object store name"
// @Param year query int true "Calendar year"
// @Success 200 {object} SuccessResponse{data=models.ReportResult}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid period"
// @Router /api/v1/stores/{store}/reports/yearly [get]
func (h *ReportHandler) YearlyReport(c echo.Context) error {
	storeName, ok := storeParam(c)
	if !ok {
		return sendInvalidStore(c)
	}

	query, err := bindReportQuery(c, false)
	if query == nil {
		return err
	}

	result, err := h.store.YearlyReport(requestContext(c), storeName, query.Year)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: result, Message: result.Message})
}

// MonthlyReport groups the records of one calendar month by category
// @Summary Monthly category report
// @Tags Reports
// @Produce json
// @Param store path string true "Object store name"
// @Param year query int true "Calendar year"
// @Param month query int true "Calendar month (1-12)"
// @Success 200 {object} SuccessResponse{data=models.ReportResult}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid period"
// @Router /api/v1/stores/{store}/reports/monthly [get]
func (h *ReportHandler) MonthlyReport(c echo.Context) error {
	storeName, ok := storeParam(c)
	if !ok {
		return sendInvalidStore(c)
	}

	query, err := bindReportQuery(c, true)
	if query == nil {
		return err
	}

	result, err := h.store.MonthlyReport(requestContext(c), storeName, query.Month, query.Year)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: result, Message: result.Message})
}
