package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/f4f-study-portal/internal/schema"
)

// ServerError is a failed response of the portal server.
type ServerError struct {
	StatusCode int
	Message    string

	// Result is set when a request was rejected by validation.
	Result *schema.Result

	// References lists the entities that prevented a delete.
	References []string

	kind error
}

func (e *ServerError) Error() string {
	kind := e.Unwrap()
	if e.Message == "" {
		return kind.Error()
	}
	return fmt.Sprintf("%s: %s", kind, e.Message)
}

// Unwrap returns the sentinel matching StatusCode.
func (e *ServerError) Unwrap() error {
	if e.kind == nil {
		return errorKind(e.StatusCode)
	}
	return e.kind
}

// errorBody mirrors the JSON error body written by the server.
type errorBody struct {
	Error      string         `json:"error"`
	Result     *schema.Result `json:"result,omitempty"`
	References []string       `json:"references,omitempty"`
}

func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	serverErr := &ServerError{StatusCode: code, kind: errorKind(code)}

	var body errorBody
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		serverErr.Message = body.Error
		serverErr.Result = body.Result
		serverErr.References = body.References
	} else {
		serverErr.Message = strings.TrimSpace(string(resp.Body()))
	}
	if serverErr.Message == "" {
		serverErr.Message = http.StatusText(code)
	}

	return serverErr
}

func errorKind(code int) error {
	switch code {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusUnprocessableEntity:
		return ErrValidation
	case http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusGatewayTimeout:
		return ErrServerUnavailable
	case http.StatusInternalServerError:
		return ErrInternalServerError
	}
	return ErrUnexpectedStatus
}
