package domain

import "errors"

var (
	ErrKeyNotFound      = errors.New("key not found")
	ErrInvalidSymbolSet = errors.New("invalid symbol set")
	ErrInvalidTime      = errors.New("invalid time snapshot")
)
