package util

import "errors"

var (
	ErrInvalidGrade  = errors.New("grade out of range")
	ErrInvalidCredit = errors.New("credit must be positive")
	ErrCorruptData   = errors.New("corrupt data in file")
	ErrNoSavedData   = errors.New("no saved data found")
)
