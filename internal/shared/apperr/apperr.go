package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	Invalid        Kind = "invalid"
	NotFound       Kind = "not_found"
	RenderFailed   Kind = "render_failed"
	StoreFailed    Kind = "store_failed"
	DispatchFailed Kind = "dispatch_failed"
	Internal       Kind = "internal"
)

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return string(e.Kind)
}

func (e *AppError) Unwrap() error { return e.Err }

// Constructors (PublicMsg must stay short and safe)
func InvalidErr(publicMsg string, fields map[string]string) *AppError {
	return &AppError{Kind: Invalid, PublicMsg: publicMsg, Fields: fields}
}
func NotFoundErr(publicMsg string) *AppError {
	return &AppError{Kind: NotFound, PublicMsg: publicMsg}
}
func RenderErr(err error) *AppError {
	return &AppError{Kind: RenderFailed, PublicMsg: "Could not generate the receipt.", Err: err}
}
func StoreErr(err error) *AppError {
	return &AppError{Kind: StoreFailed, PublicMsg: "Could not store the receipt.", Err: err}
}
func DispatchErr(err error) *AppError {
	return &AppError{Kind: DispatchFailed, PublicMsg: "Could not deliver the notification.", Err: err}
}

// Wrap: internal error without a public message (defaults to 500)
func Wrap(err error) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Kind: Internal, PublicMsg: "An unexpected error occurred.", Err: err}
}

func As(err error) (*AppError, bool) {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

func IsKind(err error, k Kind) bool {
	if ae, ok := As(err); ok {
		return ae.Kind == k
	}
	return false
}

func HTTPStatus(err error) int {
	if ae, ok := As(err); ok {
		switch ae.Kind {
		case Invalid:
			return http.StatusBadRequest
		case NotFound:
			return http.StatusNotFound
		default:
			return http.StatusInternalServerError
		}
	}
	return http.StatusInternalServerError
}

func PublicMessage(err error) string {
	if ae, ok := As(err); ok && ae.PublicMsg != "" {
		return ae.PublicMsg
	}
	return "An unexpected error occurred."
}
