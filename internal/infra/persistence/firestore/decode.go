package firestore

import (
	"strconv"
	"time"
)

// Documents are written by several clients, so field types drift: numbers
// arrive as strings, timestamps may not be materialised yet. Decoding is
// lenient and falls back to zero values rather than rejecting a record.

func stringField(data map[string]any, key string) string {
	switch v := data[key].(type) {
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

func floatField(data map[string]any, key string) float64 {
	switch v := data[key].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}

		return f
	default:
		return 0
	}
}

func intField(data map[string]any, key string) int {
	return int(floatField(data, key))
}

func timeField(data map[string]any, key string) time.Time {
	switch v := data[key].(type) {
	case time.Time:
		return v
	case *time.Time:
		if v != nil {
			return *v
		}
	case int64:
		return time.UnixMilli(v)
	}

	return time.Time{}
}

func mapSlice(data map[string]any, key string) []map[string]any {
	raw, ok := data[key].([]any)
	if !ok {
		return nil
	}

	out := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}

	return out
}
