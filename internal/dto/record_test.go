package dto

import (
	"encoding/json"
	"testing"
	"time"

	"recordbook/internal/validation"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordRequest_DecodeAndConvert(t *testing.T) {
	var req RecordRequest
	body := `{"date":"2023-01-05","sum":10.5,"category":"food","extra":{"note":"lunch"}}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.Empty(t, validation.GetValidator().Struct(req))

	record, err := req.ToRecord()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, time.January, 5, 0, 0, 0, 0, time.UTC), record.Date)
	assert.True(t, decimal.NewFromFloat(10.5).Equal(record.Sum))
	assert.Equal(t, "food", record.Category)
	assert.Equal(t, "lunch", record.Extra["note"])
}

func TestRecordRequest_StringSum(t *testing.T) {
	var req RecordRequest
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2023-01-05T08:30:00Z","sum":"19.99","category":"books"}`), &req))

	assert.Empty(t, validation.GetValidator().Struct(req))
	assert.Equal(t, "19.99", req.Sum.String())
}

func TestRecordRequest_Validation(t *testing.T) {
	req := RecordRequest{Date: "tomorrow", Sum: decimal.NewFromInt(-2), Category: ""}

	fields := validation.GetValidator().Struct(req)

	require.Len(t, fields, 3)
	assert.Equal(t, "date", fields[0].Field)
	assert.Equal(t, "sum", fields[1].Field)
	assert.Equal(t, "category", fields[2].Field)
}

func TestRecordRequest_SumMustFitStorage(t *testing.T) {
	bodies := map[string]string{
		`{"date":"2023-01-05","sum":12345678901234567.89,"category":"food"}`: "sum must have at most 11 digits before the decimal point",
		`{"date":"2023-01-05","sum":"0.00001","category":"food"}`:            "sum must have at most 4 decimal places",
	}

	for body, message := range bodies {
		var req RecordRequest
		require.NoError(t, json.Unmarshal([]byte(body), &req))

		fields := validation.GetValidator().Struct(req)
		require.Len(t, fields, 1, body)
		assert.Equal(t, "sum", fields[0].Field)
		assert.Equal(t, message, fields[0].Message)
	}
}

func TestRecordRequest_ToRecordRejectsBadDate(t *testing.T) {
	req := RecordRequest{Date: "05/01/2023", Sum: decimal.NewFromInt(1), Category: "food"}

	_, err := req.ToRecord()

	assert.Error(t, err)
}

func TestReportQuery_Validation(t *testing.T) {
	v := validation.GetValidator()

	assert.Empty(t, v.Struct(ReportQuery{Year: 2023}))
	assert.Empty(t, v.Struct(ReportQuery{Year: 2023, Month: 12}))
	assert.Len(t, v.Struct(ReportQuery{Year: 2023, Month: 13}), 1)
	assert.Len(t, v.Struct(ReportQuery{}), 1)
}
