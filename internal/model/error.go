package model

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateName     = errors.New("duplicate name in scope")
	ErrHasDependents     = errors.New("manufacturer still has dependent equipment")
	ErrDanglingReference = errors.New("manufacturer reference does not resolve")
	ErrInvalidArgument   = errors.New("invalid argument")
)
