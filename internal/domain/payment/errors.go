package payment

import "errors"

var (
	ErrCardNotFound     = errors.New("card not found")
	ErrCardFlagNotFound = errors.New("card flag not found")
)
