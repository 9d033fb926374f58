package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "4f9c7d2e-trace"
}

// TestResponseTestSuite runs the test suite
func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_Defaults() {
	response := NewErrorResponse(RecordNotFound, s.traceID)

	s.Equal(string(RecordNotFound), response.Error.Code)
	s.Equal("Record not found", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.NotNil(response.Error.Details)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_Options() {
	response := NewErrorResponse(StoreNotFound, s.traceID,
		WithMessage("Object store 'budgets' not found"),
		WithDetails("host_code: NOT_FOUND_ERR"))

	s.Equal("Object store 'budgets' not found", response.Error.Message)
	s.Equal([]string{"host_code: NOT_FOUND_ERR"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationError_KeepsFieldOrder() {
	response := NewValidationError([][2]string{
		{"date", "date is required"},
		{"sum", "sum must be a positive number"},
	}, s.traceID)

	s.Equal(string(ValidationGeneral), response.Error.Code)
	s.Equal([]string{"date: date is required", "sum: sum must be a positive number"}, response.Error.Details)
	s.Equal(http.StatusBadRequest, response.GetHTTPStatus())
}

func (s *ResponseTestSuite) TestWrapSystemError_HidesInternalError() {
	internal := errors.New("sqlite: disk I/O error")
	response, err := WrapSystemError(internal, s.traceID)

	s.Equal(internal, err)
	s.Equal(string(SystemInternalError), response.Error.Code)
	s.NotContains(response.Error.Message, "sqlite")
}

func (s *ResponseTestSuite) TestWrapDatabaseError() {
	internal := errors.New("connection refused")
	response, err := WrapDatabaseError(internal, s.traceID)

	s.Equal(internal, err)
	s.Equal(string(SystemDatabaseError), response.Error.Code)
	s.True(response.IsServerError())
}

func (s *ResponseTestSuite) TestGetHTTPStatus() {
	testCases := []struct {
		code   ErrorCode
		status int
	}{
		{ValidationGeneral, http.StatusBadRequest},
		{RecordInvalidID, http.StatusBadRequest},
		{AuthMissingToken, http.StatusUnauthorized},
		{RecordNotFound, http.StatusNotFound},
		{StoreNotFound, http.StatusNotFound},
		{RecordConflict, http.StatusConflict},
		{StoreOperationFailed, http.StatusUnprocessableEntity},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{StoreNotOpen, http.StatusServiceUnavailable},
		{StoreOpenFailed, http.StatusServiceUnavailable},
		{SystemRequestTimeout, http.StatusGatewayTimeout},
		{SystemRouteNotFound, http.StatusNotFound},
		{SystemMethodNotAllowed, http.StatusMethodNotAllowed},
		{SystemDatabaseError, http.StatusInternalServerError},
		{"UNKNOWN_CODE", http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.status, GetHTTPStatus(tc.code))
		})
	}
}

func (s *ResponseTestSuite) TestClientAndServerClassification() {
	client := NewErrorResponse(ValidationOutOfRange, s.traceID)
	server := NewErrorResponse(SystemInternalError, s.traceID)

	s.True(client.IsClientError())
	s.False(client.IsServerError())
	s.True(server.IsServerError())
	s.False(server.IsClientError())
}

func (s *ResponseTestSuite) TestJSONShapeAndString() {
	response := NewErrorResponse(RecordNotFound, s.traceID)

	body, err := json.Marshal(response)
	s.Require().NoError(err)

	var decoded map[string]map[string]interface{}
	s.Require().NoError(json.Unmarshal(body, &decoded))
	s.Equal("RECORD_001", decoded["error"]["code"])
	s.Equal(s.traceID, decoded["error"]["trace_id"])

	s.Equal("[RECORD_001] Record not found (trace: 4f9c7d2e-trace)", response.String())
}
