package record

import (
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// Record is one row keyed by column name.
type Record map[string]any

// AddRecordRequest is the raw body of POST /addRecord/{table}: employee_id
// plus the table's fields.
type AddRecordRequest map[string]any

type UpdateDataRequest struct {
	ID      any            `json:"id"`
	Updates map[string]any `json:"updates"`
}

type AddRecordResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

type AffectedResponse struct {
	Message      string `json:"message"`
	AffectedRows int64  `json:"affectedRows"`
}

// DecodeJSON decodes a request body keeping numbers as json.Number so
// amounts convert to decimals without float rounding.
func DecodeJSON(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return validator.ValidationErrors{{
			Field:   "body",
			Message: "request body must be a valid JSON object",
		}}
	}
	return nil
}

// Coerce converts a raw JSON value to the Go value stored for kind. Numeric
// strings are accepted for number fields.
func Coerce(field string, kind FieldKind, raw any) (any, error) {
	switch kind {
	case KindNumber:
		d, ok := toDecimal(raw)
		if !ok {
			return nil, fieldError(field, field+" must be a number")
		}
		return d, nil
	case KindInteger:
		d, ok := toDecimal(raw)
		if !ok || !d.Equal(d.Truncate(0)) {
			return nil, fieldError(field, field+" must be an integer")
		}
		if !d.BigInt().IsInt64() {
			return nil, fieldError(field, field+" is out of range")
		}
		return d.IntPart(), nil
	case KindDate:
		s, ok := raw.(string)
		if !ok {
			return nil, fieldError(field, field+" must be a valid date")
		}
		t, ok := parseDate(s)
		if !ok {
			return nil, fieldError(field, field+" must be a valid date")
		}
		return t, nil
	default:
		s, ok := raw.(string)
		if !ok {
			return nil, fieldError(field, field+" must be a string")
		}
		return s, nil
	}
}

// ParseID reads a positive integer id from a JSON value or path segment.
func ParseID(field string, raw any) (int64, error) {
	v, err := Coerce(field, KindInteger, raw)
	if err != nil {
		return 0, err
	}
	id := v.(int64)
	if id <= 0 {
		return 0, fieldError(field, field+" must be a positive integer")
	}
	return id, nil
}

func toDecimal(raw any) (decimal.Decimal, bool) {
	switch v := raw.(type) {
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		return d, err == nil
	case float64:
		return decimal.NewFromFloat(v), true
	case int64:
		return decimal.NewFromInt(v), true
	case int:
		return decimal.NewFromInt(int64(v)), true
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return decimal.Decimal{}, false
		}
		d, err := decimal.NewFromString(s)
		return d, err == nil
	default:
		return decimal.Decimal{}, false
	}
}

func parseDate(s string) (time.Time, bool) {
	if t, ok := validator.IsValidDate(s); ok {
		return t, true
	}
	if t, ok := validator.IsValidDateTime(s); ok {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}

func fieldError(field, msg string) error {
	return validator.ValidationErrors{{Field: field, Message: msg}}
}
