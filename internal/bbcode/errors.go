package bbcode

import "fmt"

// UnsupportedError reports a document construct the forum dialect cannot
// express: an unimplemented node variant, a link scheme, a list variant, or
// an out-of-range headline level. The first one aborts the whole pass.
type UnsupportedError struct {
	Construct string
}

func (e *UnsupportedError) Error() string {
	return "unsupported construct: " + e.Construct
}

func unsupported(construct string) error {
	return &UnsupportedError{Construct: construct}
}

func unsupportedf(format string, args ...any) error {
	return &UnsupportedError{Construct: fmt.Sprintf(format, args...)}
}
