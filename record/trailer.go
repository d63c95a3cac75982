package record

import (
	"errors"
	"fmt"
)

// ErrInvalidTrailerIndex is returned for a trailer index outside
// [0, TrailerSlots).
var ErrInvalidTrailerIndex = errors.New("record: invalid trailer index")

// ValidTrailerIndex reports whether index addresses one of the trailer slots.
func ValidTrailerIndex(index int) bool {
	return index >= 0 && index < TrailerSlots
}

// Trailer returns the trailer group at the zero based index. The returned
// pointer aliases r and must be treated as read-only.
func (r *Record) Trailer(index int) (*Trailer, error) {
	if !ValidTrailerIndex(index) {
		return nil, fmt.Errorf("%w: %d, must be between 0 and %d", ErrInvalidTrailerIndex, index, TrailerSlots-1)
	}
	return &r.Trailers[index], nil
}

// SetString copies s into a fixed text buffer, truncating it to fit and
// zero filling the rest. It is the inverse of the text decoding applied by
// readers.
func SetString(dst []byte, s string) {
	n := copy(dst, s)
	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}
}
