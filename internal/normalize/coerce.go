package normalize

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gyeh/providerstats/internal/model"
)

// Text returns the trimmed string form of a record field, or "" when the
// field is missing or null. Numbers are rendered without exponent so NPIs
// delivered as JSON numbers keep all digits.
func Text(rec model.RawRecord, field string) string {
	switch v := rec[field].(type) {
	case nil:
		return ""
	case string:
		return CleanText(strings.TrimSpace(v))
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return CleanText(strings.TrimSpace(fmt.Sprint(v)))
	}
}

// CleanText makes s storable as Postgres TEXT: invalid UTF-8 sequences
// become U+FFFD and NUL bytes are dropped.
func CleanText(s string) string {
	s = strings.ToValidUTF8(s, "\uFFFD")
	if strings.IndexByte(s, 0) >= 0 {
		s = strings.ReplaceAll(s, "\x00", "")
	}
	return s
}

// Float coerces a record field to float64. Missing, null, empty and
// non-numeric values become 0. Thousands separators and a leading dollar
// sign are tolerated ("$1,234.50").
func Float(rec model.RawRecord, field string) float64 {
	var f float64
	switch v := rec[field].(type) {
	case float64:
		f = v
	case json.Number:
		parsed, err := strconv.ParseFloat(v.String(), 64)
		if err != nil {
			return 0
		}
		f = parsed
	case string:
		cleaned := strings.TrimPrefix(strings.ReplaceAll(strings.TrimSpace(v), ",", ""), "$")
		if cleaned == "" {
			return 0
		}
		parsed, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Int coerces a record field to int64 with the same rules as Float.
// Decimal values are truncated toward zero.
func Int(rec model.RawRecord, field string) int64 {
	if s := Text(rec, field); s != "" {
		if n, err := strconv.ParseInt(strings.ReplaceAll(s, ",", ""), 10, 64); err == nil {
			return n
		}
	}
	f := Float(rec, field)
	if f >= math.MaxInt64 || f <= math.MinInt64 {
		return 0
	}
	return int64(f)
}
