package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	fallback := http.StatusText(resp.StatusCode())
	if fallback == "" {
		fallback = fmt.Sprintf("HTTP %d", resp.StatusCode())
	}

	return &APIError{
		Status:  resp.StatusCode(),
		Message: ExtractMessage(resp.Body(), fallback),
		kind:    statusKind(resp.StatusCode()),
	}
}

func statusKind(status int) error {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusTooManyRequests:
		return ErrTooManyRequests
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return ErrBadGateway
	case http.StatusInternalServerError:
		return ErrInternalServerError
	default:
		return ErrUnexpectedStatus
	}
}

// mapTransportError wraps errors returned by resty before any response was
// read. Context cancellation stays matchable with errors.Is.
func mapTransportError(op string, err error) error {
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s request: %w", op, err)
	}
	return fmt.Errorf("%s request: %w: %w", op, ErrNetwork, err)
}

func rejected(status int, message string) error {
	return &APIError{Status: status, Message: message, kind: ErrRejected}
}
