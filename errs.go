package hcs

import "errors"

var (
	ErrRootEdit   = errors.New("root node cannot be edited this way")
	ErrNoSuchFile = errors.New("no such file")
	ErrNoSuchNode = errors.New("no such node")
	ErrEdit       = errors.New("invalid edit")
)
