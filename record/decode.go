package record

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrLayoutMismatch is returned when a buffer cannot hold the layout this
// package was built against. It almost always means the plugin and this
// package disagree on the record version.
var ErrLayoutMismatch = errors.New("record: layout mismatch")

// Decode parses one record from b. Bytes past Size are ignored so that
// newer plugin revisions may append fields.
func Decode(b []byte) (*Record, error) {
	if len(b) < Size {
		return nil, fmt.Errorf("%w: got %d bytes, want at least %d", ErrLayoutMismatch, len(b), Size)
	}

	rec := new(Record)
	if err := binary.Read(bytes.NewReader(b[:Size]), binary.LittleEndian, rec); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrLayoutMismatch, err)
	}

	return rec, nil
}

// MarshalBinary encodes r in the plugin layout. Reserved bytes are written
// as zeros.
func (r *Record) MarshalBinary() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, Size))
	if err := binary.Write(buf, binary.LittleEndian, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
