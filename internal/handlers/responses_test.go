package handlers

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"recordbook/internal/errors"
	"recordbook/internal/services"
	"recordbook/internal/storage"
	"recordbook/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sendAndDecode(t *testing.T, send func(c echo.Context) error) (int, errors.ErrorResponse) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.Set(TraceIDContextKey, "trace-abc")

	require.NoError(t, send(c))

	var resp errors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "trace-abc", resp.Error.TraceID)
	return rec.Code, resp
}

func storeErr(code string, cause error) error {
	return &services.StoreError{Op: "list", Store: "expenses", Code: code, Err: cause}
}

func TestSendServiceError(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		status   int
		code     errors.ErrorCode
		hostCode string
	}{
		{"unknown store", storeErr(storage.CodeNotFound, storage.ErrStoreNotFound), http.StatusNotFound, errors.StoreNotFound, storage.CodeNotFound},
		{"store outside transaction", storeErr(storage.CodeNotFound, storage.ErrStoreNotInTx), http.StatusNotFound, errors.StoreNotFound, storage.CodeNotFound},
		{"missing record", storeErr(storage.CodeNotFound, storage.ErrRecordNotFound), http.StatusNotFound, errors.RecordNotFound, storage.CodeNotFound},
		{"not open", storeErr(storage.CodeInvalidState, services.ErrNotOpen), http.StatusServiceUnavailable, errors.StoreNotOpen, storage.CodeInvalidState},
		{"read only", storeErr(storage.CodeReadOnly, storage.ErrReadOnly), http.StatusConflict, errors.StoreReadOnly, storage.CodeReadOnly},
		{"constraint", storeErr(storage.CodeConstraint, stderrors.New("key belongs to another store")), http.StatusConflict, errors.RecordConflict, storage.CodeConstraint},
		{"timeout", storeErr(storage.CodeTimeout, stderrors.New("deadline")), http.StatusGatewayTimeout, errors.SystemRequestTimeout, storage.CodeTimeout},
		{"data error", storeErr(storage.CodeData, stderrors.New("bad row")), http.StatusUnprocessableEntity, errors.StoreOperationFailed, storage.CodeData},
		{"aborted", storeErr(storage.CodeAbort, stderrors.New("cancelled")), http.StatusUnprocessableEntity, errors.StoreOperationFailed, storage.CodeAbort},
		{"driver failure", storeErr("SQLITE_IOERR", stderrors.New("disk I/O error")), http.StatusInternalServerError, errors.SystemDatabaseError, "SQLITE_IOERR"},
		{"open failure", &services.OpenError{Name: "finance", Version: 1, Code: storage.CodeVersion, Err: storage.ErrVersionLower}, http.StatusServiceUnavailable, errors.StoreOpenFailed, storage.CodeVersion},
		{"wrapped store error", fmt.Errorf("handler: %w", storeErr(storage.CodeReadOnly, storage.ErrReadOnly)), http.StatusConflict, errors.StoreReadOnly, storage.CodeReadOnly},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, resp := sendAndDecode(t, func(c echo.Context) error {
				return SendServiceError(c, tc.err)
			})

			assert.Equal(t, tc.status, status)
			assert.Equal(t, string(tc.code), resp.Error.Code)
			assert.Equal(t, []string{"host_code: " + tc.hostCode}, resp.Error.Details)
		})
	}
}

func TestSendServiceError_Validation(t *testing.T) {
	err := &services.ValidationError{}
	err.Fields = append(err.Fields,
		validationField("sum", "sum must be a positive number"),
		validationField("category", "category must be a non-empty string"),
	)

	status, resp := sendAndDecode(t, func(c echo.Context) error {
		return SendServiceError(c, err)
	})

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, string(errors.ValidationGeneral), resp.Error.Code)
	assert.Equal(t, []string{
		"sum: sum must be a positive number",
		"category: category must be a non-empty string",
	}, resp.Error.Details)
}

func TestSendServiceError_UnclassifiedError(t *testing.T) {
	status, resp := sendAndDecode(t, func(c echo.Context) error {
		return SendServiceError(c, stderrors.New("boom"))
	})

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, string(errors.SystemInternalError), resp.Error.Code)
	assert.Empty(t, resp.Error.Details)
}

func TestSendError_WithDetails(t *testing.T) {
	status, resp := sendAndDecode(t, func(c echo.Context) error {
		return SendError(c, errors.RecordInvalidID, errors.WithDetails("record id must be a positive integer"))
	})

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "RECORD_002", resp.Error.Code)
	assert.Equal(t, "Invalid record ID", resp.Error.Message)
	assert.Equal(t, []string{"record id must be a positive integer"}, resp.Error.Details)
}

func validationField(field, message string) validation.FieldError {
	return validation.FieldError{Field: field, Message: message}
}
