package ir

import "errors"

var (
	ErrType     = errors.New("unrecognized type")
	ErrRelation = errors.New("unrecognized relation")
)
