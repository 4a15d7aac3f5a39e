package utils

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrCuratedStore = errors.New("curated store error")
)
