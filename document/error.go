package document

type constError string

// ErrParse is returned by [Parse] when the input is not valid TOML.
const ErrParse = constError("could not parse document")

func (errStr constError) Error() string { return string(errStr) }
