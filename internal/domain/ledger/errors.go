package ledger

import "errors"

var (
	// ErrInvalidInput indicates a blank project name or an invalid frame.
	ErrInvalidInput = errors.New("invalid ledger input")
)
