package fields

import "strings"

// First normalizes a loosely-typed document field value to a single string.
// Strings are trimmed; for arrays the first string element is used. Empty or
// unusable values return ok=false.
func First(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return trimmed(v)
	case []string:
		if len(v) == 0 {
			return "", false
		}
		return trimmed(v[0])
	case []any:
		if len(v) == 0 {
			return "", false
		}
		s, ok := v[0].(string)
		if !ok {
			return "", false
		}
		return trimmed(s)
	default:
		return "", false
	}
}

func trimmed(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	return s, true
}
