package errors

import (
	"errors"
	"fmt"
)

// Category classifies the failures a codec operation can produce. This
// lets callers tell resource/size failures apart from protocol-level
// corruption without string matching.
type Category int

const (
	// CategoryUnsupported indicates gzip framing was requested on a
	// codec build that lacks gzip support, or an unknown method was
	// passed explicitly.
	CategoryUnsupported Category = iota + 1

	// CategoryInit indicates the underlying codec rejected its setup
	// parameters or failed internally before producing a stream.
	CategoryInit

	// CategoryLimit indicates buffer growth would overflow, exceed the
	// 32-bit single-call transfer limit, or exceed the process-wide
	// allocation ceiling.
	CategoryLimit

	// CategoryBomb indicates the observed or projected expansion ratio
	// exceeded the compression-bomb policy.
	CategoryBomb

	// CategoryCorrupt indicates the codec reported malformed data while
	// output space was still available - distinguished from resource
	// exhaustion.
	CategoryCorrupt

	// CategoryTruncated indicates input ran out mid-stream while the
	// caller demanded complete consumption.
	CategoryTruncated

	// CategoryTeardown indicates a codec handle did not release cleanly.
	// Treated as a logged anomaly when the data itself was already
	// validly produced.
	CategoryTeardown
)

// String returns the string representation of the error category.
func (c Category) String() string {
	switch c {
	case CategoryUnsupported:
		return "unsupported"
	case CategoryInit:
		return "init"
	case CategoryLimit:
		return "limit"
	case CategoryBomb:
		return "bomb"
	case CategoryCorrupt:
		return "corrupt"
	case CategoryTruncated:
		return "truncated"
	case CategoryTeardown:
		return "teardown"
	default:
		return "unknown"
	}
}

// CodecError is the error type returned by every failing codec
// operation. Operation names the failing step, Category classifies it,
// and Err carries the underlying cause when one exists.
type CodecError struct {
	Err       error
	Operation string
	Category  Category
}

func (e *CodecError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%v] %s: %v", e.Category, e.Operation, e.Err)
	}
	return fmt.Sprintf("[%v] %s", e.Category, e.Operation)
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// NewCodecError creates a new CodecError instance.
func NewCodecError(category Category, operation string, err error) *CodecError {
	return &CodecError{
		Err:       err,
		Category:  category,
		Operation: operation,
	}
}

// IsCategory reports whether err is a CodecError of the given category.
func IsCategory(err error, category Category) bool {
	var ce *CodecError
	if errors.As(err, &ce) {
		return ce.Category == category
	}
	return false
}

// AsCodecError attempts to extract a CodecError from a given error.
func AsCodecError(err error) *CodecError {
	var ce *CodecError
	if errors.As(err, &ce) {
		return ce
	}
	return nil
}
