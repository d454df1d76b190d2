package api

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// APIError is a non-2xx backend response.
type APIError struct {
	// Status is the HTTP status code.
	Status int
	// Detail is the backend's explanation, when it gave one.
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("backend returned %d", e.Status)
	}
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Detail)
}

// newAPIError extracts the backend's detail field, which is either a plain
// string or a validation array of {loc, msg, type} objects. gjson keeps the
// extraction tolerant of both shapes without a second decode pass.
func newAPIError(statusCode int, body []byte) *APIError {
	detail := gjson.GetBytes(body, "detail")

	var msg string
	switch {
	case detail.Type == gjson.String:
		msg = detail.String()
	case detail.IsArray():
		var parts []string
		for _, item := range detail.Array() {
			if m := item.Get("msg"); m.Exists() {
				parts = append(parts, m.String())
			} else {
				parts = append(parts, item.String())
			}
		}
		msg = strings.Join(parts, "; ")
	default:
		msg = strings.TrimSpace(string(body))
		if len(msg) > 200 {
			msg = msg[:200]
		}
	}

	return &APIError{Status: statusCode, Detail: msg}
}
