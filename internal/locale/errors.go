package locale

import "errors"

// Errors returned by Load, Save and the decoders. They are wrapped with the
// offending path; test with errors.Is.
var (
	ErrMissingFile       = errors.New("locale file does not exist")
	ErrParse             = errors.New("locale file is not a valid translation tree")
	ErrWrite             = errors.New("locale file could not be written")
	ErrUnsupportedFormat = errors.New("unsupported locale file format")
)
