package recents

type constError string

const (
	// ErrMissingURL is reported by [Read] for tables without a url field.
	ErrMissingURL = constError("missing url")
	// ErrInvalidURL may be returned from [ParseRecent],
	// and is reported by [Read] for tables holding an unusable url.
	ErrInvalidURL = constError("invalid url")
	// ErrDuplicateURL is reported by [Read] for tables superseded
	// by a later table holding the same url.
	ErrDuplicateURL = constError("duplicate url")
)

func (errStr constError) Error() string { return string(errStr) }
