// Package envelope reduces the heterogeneous JSON envelopes returned by the
// VLIVE web API to one canonical payload shape and implements the cursor
// protocol used by its paginated endpoints.
package envelope

import (
	"fmt"
	"log/slog"
	"strings"
)

// ResponseError is returned when the server answered with an explicit error
// envelope and no recoverable data.
type ResponseError struct {
	Code    string
	Message string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("server responded with error [%s] %s", e.Code, e.Message)
}

func stringify(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	default:
		return fmt.Sprint(s)
	}
}

// Normalize strips envelope metadata from a decoded response body.
//
// Three envelope shapes are recognized, tried in order:
//
//  1. {"code": ..., "result": ...}: success; unwraps to "result", or to an
//     empty map when "result" is absent.
//  2. {"errorCode": ..., "message": ..., "data"?: ...}: explicit error; if
//     "data" is present the error is logged and the payload degrades to it,
//     otherwise a *ResponseError is returned (nil, nil under silent). Only
//     an object-typed "data" recovers; any other type (array, string) is
//     not a payload this function can return and fails hard.
//  3. a map whose sole key is "data": membership-gated nesting; unwraps
//     once more. This applies after 1/2, so a coded success wrapping a gated
//     payload unwraps twice. That double unwrap is intentional.
//
// Anything else passes through unchanged.
func Normalize(raw map[string]any, silent bool) (map[string]any, error) {
	if _, coded := raw["code"]; coded {
		result, ok := raw["result"].(map[string]any)
		if !ok {
			// success code with no (or non-object) result is "no
			// data", not an error
			result = map[string]any{}
		}
		raw = result
	} else if code, errored := raw["errorCode"]; errored {
		errCode := stringify(code)
		message := strings.ReplaceAll(stringify(raw["message"]), "\n", " ")

		data, recoverable := raw["data"].(map[string]any)
		if !recoverable {
			if silent {
				return nil, nil
			}
			return nil, &ResponseError{Code: errCode, Message: message}
		}
		slog.Warn(
			"server responded with recoverable error",
			"code", errCode,
			"message", message,
		)
		raw = data
	}

	if len(raw) == 1 {
		if data, gated := raw["data"].(map[string]any); gated {
			raw = data
		}
	}
	return raw, nil
}

// NextCursor extracts the opaque continuation token from a normalized page.
// It returns "" when the page is the last one; the token has no meaning
// beyond being passed back verbatim as the next request's "after" parameter.
func NextCursor(page map[string]any) string {
	paging, ok := page["paging"].(map[string]any)
	if !ok {
		return ""
	}
	next, ok := paging["nextParams"].(map[string]any)
	if !ok {
		return ""
	}
	return stringify(next["after"])
}
