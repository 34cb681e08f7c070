package errors

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrDecode           = errors.New("stored credential cannot be decoded")
	ErrStoreUnavailable = errors.New("store unavailable")
)
