package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"syscall"

	"github.com/dmitrijs2005/blogfolio/internal/client/models"
)

var (
	ErrTimeout     = errors.New("request timed out")
	ErrUnavailable = errors.New("server unavailable")
	ErrParse       = errors.New("invalid response body")

	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = models.ErrNotFound
	ErrTooLarge     = errors.New("payload too large")
	ErrRateLimited  = errors.New("rate limited")
	ErrServer       = errors.New("server error")
)

// HTTPError is a non-2xx response. Message is taken from the body's
// "error" or "message" field when present.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status: %d", e.Status)
	}
	return fmt.Sprintf("request failed with status: %d: %s", e.Status, e.Message)
}

func (e *HTTPError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrTooLarge:
		return e.Status == http.StatusRequestEntityTooLarge
	case ErrRateLimited:
		return e.Status == http.StatusTooManyRequests
	case ErrServer:
		return e.Status >= http.StatusInternalServerError
	}
	return false
}

type Kind int

const (
	KindUnknown Kind = iota
	KindTimeout
	KindConnectionRefused
	KindHTTP
	KindParse
)

func (k Kind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindConnectionRefused:
		return "connection-refused"
	case KindHTTP:
		return "http-error"
	case KindParse:
		return "parse-error"
	default:
		return "unknown"
	}
}

// Classify buckets a transport error.
func Classify(err error) Kind {
	var httpErr *HTTPError
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrTimeout):
		return KindTimeout
	case errors.Is(err, ErrUnavailable):
		return KindConnectionRefused
	case errors.As(err, &httpErr):
		return KindHTTP
	case errors.Is(err, ErrParse):
		return KindParse
	}
	return KindUnknown
}

// IsNetwork reports failures where no HTTP response was received.
func IsNetwork(err error) bool {
	k := Classify(err)
	return k == KindTimeout || k == KindConnectionRefused
}

// mapError turns a net/http failure into one of the sentinels, keeping the
// cause in the chain.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return err
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}

	var dnsErr *net.DNSError
	var opErr *net.OpError
	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EHOSTUNREACH) ||
		errors.Is(err, syscall.ENETUNREACH) ||
		errors.As(err, &dnsErr) ||
		(errors.As(err, &opErr) && opErr.Op == "dial") ||
		strings.Contains(err.Error(), "connection refused") {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return fmt.Errorf("request: %w", err)
}

// UserMessage renders err for display.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var ve *models.ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}

	var httpErr *HTTPError
	switch {
	case errors.Is(err, ErrUnauthorized):
		return "Authentication failed. Please log in again."
	case errors.Is(err, ErrTooLarge):
		return "The post is too large. Please shorten the content and try again."
	case errors.Is(err, ErrRateLimited):
		return "Too many requests. Please wait a moment and try again."
	case errors.Is(err, ErrServer):
		return "The server encountered an error while processing your request."
	case errors.As(err, &httpErr):
		if httpErr.Message != "" {
			return httpErr.Message
		}
		return fmt.Sprintf("Request failed with status: %d", httpErr.Status)
	case errors.Is(err, ErrTimeout):
		return "The server took too long to respond. There might be a network issue."
	case errors.Is(err, ErrUnavailable):
		return "Unable to connect to the server. There might be a network issue."
	case errors.Is(err, ErrParse):
		return "Received an invalid response from the server."
	case errors.Is(err, context.Canceled):
		return "The request was cancelled."
	}
	return "An unexpected error occurred: " + err.Error()
}
