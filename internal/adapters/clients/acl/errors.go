// Package acl is the anti-corruption layer between the downstream REST API
// and the resource store. It maps resource names to collection paths,
// decodes bodies into the generic JSON values the reducers consume, and
// turns HTTP failures into domain errors.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/HumzahChoudry/redux-api-resources/internal/domain"
)

// maxErrorBodySize limits how much of an error body is read.
const maxErrorBodySize = 1 << 20

// errorBody covers RFC 9457 problem documents and the common ad hoc
// {"message": ...} and {"error": ...} shapes REST APIs return.
type errorBody struct {
	Detail  string        `json:"detail"`
	Message string        `json:"message"`
	Error   any           `json:"error"`
	Errors  []errorDetail `json:"errors"`
}

type errorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// summary is the most specific human readable text in the body.
func (b errorBody) summary() string {
	switch {
	case b.Detail != "":
		return b.Detail
	case b.Message != "":
		return b.Message
	}
	if s, ok := b.Error.(string); ok {
		return s
	}
	return ""
}

// TranslateHTTPError maps a failed downstream response onto a domain error.
// 400 and 422 bodies with field errors become a *domain.ValidationError with
// the "body." prefix removed from each location.
func TranslateHTTPError(resp *http.Response) error {
	body := readErrorBody(resp)

	detail := body.summary()
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	var sentinel error
	switch code := resp.StatusCode; {
	case code == http.StatusNotFound || code == http.StatusGone:
		sentinel = domain.ErrNotFound
	case code == http.StatusBadRequest || code == http.StatusUnprocessableEntity:
		if len(body.Errors) > 0 {
			var verr domain.ValidationError
			for _, d := range body.Errors {
				verr.Add(strings.TrimPrefix(d.Location, "body."), d.Message)
			}
			return &verr
		}
		sentinel = domain.ErrValidation
	case code == http.StatusConflict || code == http.StatusPreconditionFailed:
		sentinel = domain.ErrConflict
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		sentinel = domain.ErrForbidden
	case code == http.StatusTooManyRequests || code >= http.StatusInternalServerError:
		sentinel = domain.ErrUnavailable
	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, detail)
	}
	return fmt.Errorf("%s: %w", detail, sentinel)
}

// readErrorBody decodes a JSON error body. Anything else, including a
// missing or malformed body, yields the zero value.
func readErrorBody(resp *http.Response) errorBody {
	if resp.Body == nil {
		return errorBody{}
	}
	mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || (mediaType != "application/json" && !strings.HasSuffix(mediaType, "+json")) {
		return errorBody{}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return errorBody{}
	}
	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return errorBody{}
	}
	return body
}
