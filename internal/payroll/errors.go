package payroll

import "errors"

var (
	// ErrParseFailed means the tokenizer could not read a file at all.
	// Detail stays in logs; users get the generic message.
	ErrParseFailed = errors.New("payroll files could not be parsed")

	// ErrEmptyResult means the files parsed but no employee survived
	// filtering. Distinct from ErrParseFailed so handlers can map it to 422.
	ErrEmptyResult = errors.New("no usable employee data found")
)
