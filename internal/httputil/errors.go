package httputil

import "errors"

var (
	ErrInvalidBody      = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")
	ErrInvalidFields    = errors.New("the body of your request contains invalid values for these fields")
	ErrRequestBodyEmpty = errors.New("the request body must not be empty")
)
