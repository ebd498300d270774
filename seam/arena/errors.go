package arena

import "errors"

var (
	// ErrNoSpace indicates that the block has fewer bytes left than requested.
	ErrNoSpace = errors.New("arena: not enough space left in block")

	// ErrBadSize indicates a negative allocation size.
	ErrBadSize = errors.New("arena: negative allocation size")

	// ErrBadMark indicates a Reset target outside the allocated range.
	ErrBadMark = errors.New("arena: mark out of range")
)
