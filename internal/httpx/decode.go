package httpx

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
)

var (
	ErrEmptyBody    = errors.New("request body is empty")
	ErrBodyTooLarge = errors.New("request body too large")
	ErrTrailingData = errors.New("request body must contain a single JSON value")
)

// DecodeJSON decodes exactly one JSON value from the request body into dst.
// Field names match case-insensitively.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return ErrBodyTooLarge
		case errors.Is(err, io.EOF):
			return ErrEmptyBody
		default:
			return fmt.Errorf("invalid JSON body: %w", err)
		}
	}
	if dec.More() {
		return ErrTrailingData
	}
	return nil
}

// DecodeError writes the 400 or 413 response for a DecodeJSON failure.
func DecodeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, ErrBodyTooLarge) {
		JSONError(w, r, http.StatusRequestEntityTooLarge, CodeTooLarge, "Request body too large", nil)
		return
	}
	JSONError(w, r, http.StatusBadRequest, CodeInvalidJSON, err.Error(), nil)
}

var (
	ErrInvalidID    = errors.New("id must be an integer")
	ErrIDOutOfRange = errors.New("id is outside the range of stored ids")
)

// PathID parses the {id} path segment. Ids are int4 serials, so a number
// below 1 or past 2147483647 can never match a row and yields ErrIDOutOfRange.
func PathID(r *http.Request) (int, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, ErrIDOutOfRange
		}
		return 0, ErrInvalidID
	}
	if id < 1 {
		return 0, ErrIDOutOfRange
	}
	return int(id), nil
}

// IDError answers a PathID failure: 404 for a well-formed id that cannot
// exist, 400 otherwise.
func IDError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, ErrIDOutOfRange) {
		NotFound(w)
		return
	}
	JSONError(w, r, http.StatusBadRequest, CodeInvalidID, ErrInvalidID.Error(), nil)
}

// IDMismatch rejects an update whose body id differs from the path id.
func IDMismatch(w http.ResponseWriter, r *http.Request) {
	JSONError(w, r, http.StatusBadRequest, CodeValidation, "Invalid input", []ErrorDetail{
		{Field: "id", Message: "id must match the id in the path"},
	})
}

// ConcurrencyConflict reports that the row changed since it was read.
func ConcurrencyConflict(w http.ResponseWriter, r *http.Request) {
	JSONError(w, r, http.StatusBadRequest, CodeConflict, "A problem occurred updating the record.", nil)
}
