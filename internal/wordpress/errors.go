package wordpress

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the backend answers 404 for a resource
// lookup (unknown slug, expired cart line, and so on).
var ErrNotFound = errors.New("resource not found")

// APIError is a non-2xx answer from the WordPress API, carrying the
// error envelope WordPress returns ({"code": ..., "message": ...}).
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("wordpress api: %s (%s, http %d)", e.Message, e.Code, e.Status)
	}
	return fmt.Sprintf("wordpress api: http %d", e.Status)
}
