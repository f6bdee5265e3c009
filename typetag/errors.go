package typetag

import "errors"

var (
	// ErrTagNotFound is returned by Check and OfTag when no checker is
	// registered under the requested tag.
	ErrTagNotFound = errors.New("typetag: tag not found")

	// ErrEmptyTag is returned by Register when the tag is empty.
	ErrEmptyTag = errors.New("typetag: tag must not be empty")

	// ErrNilChecker is returned by Register when the checker is nil.
	ErrNilChecker = errors.New("typetag: checker must not be nil")
)
