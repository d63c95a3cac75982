package record

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() *Record {
	rec := &Record{
		PluginRevision: 10,
		VersionMajor:   1,
		VersionMinor:   17,
		TimeAbsolute:   4321,
		Speed:          22.5,
		Gear:           -1,
		CoordinateX:    -12345.678,
		FineAmount:     -1,
	}
	SetString(rec.TruckMake[:], "Scania")
	rec.Trailers[3].Attached = 1
	SetString(rec.Trailers[3].ID[:], "reefer")
	rec.Trailers[9].WorldZ = 99.5
	return rec
}

func TestSize(t *testing.T) {
	assert.Equal(t, binary.Size(Record{}), Size)
	assert.True(t, Size > TrailerSlots*binary.Size(Trailer{}))
}

func TestDecode(t *testing.T) {
	assert := require.New(t)

	want := sampleRecord()
	b, err := want.MarshalBinary()
	assert.NoError(err)
	assert.Len(b, Size)

	got, err := Decode(b)
	assert.NoError(err)
	assert.Equal(*want, *got)
}

func TestDecode_TrailingBytes(t *testing.T) {
	assert := require.New(t)

	want := sampleRecord()
	b, err := want.MarshalBinary()
	assert.NoError(err)
	b = append(b, 0xde, 0xad, 0xbe, 0xef)

	got, err := Decode(b)
	assert.NoError(err)
	assert.Equal(*want, *got)
}

func TestDecode_ReservedBytesIgnored(t *testing.T) {
	assert := require.New(t)

	want := sampleRecord()
	b, err := want.MarshalBinary()
	assert.NoError(err)

	// PluginRevision, VersionMajor, VersionMinor and Paused come first, the
	// three bytes after Paused are reserved.
	for i := 13; i < 16; i++ {
		b[i] = 0xff
	}

	got, err := Decode(b)
	assert.NoError(err)
	assert.Equal(*want, *got)
}

func TestDecode_Short(t *testing.T) {
	for _, n := range []int{0, 1, Size - 1} {
		_, err := Decode(make([]byte, n))
		assert.True(t, errors.Is(err, ErrLayoutMismatch), "len %d: %v", n, err)
	}

	_, err := Decode(nil)
	assert.True(t, errors.Is(err, ErrLayoutMismatch))
}

func TestRecord_Trailer(t *testing.T) {
	rec := sampleRecord()

	for i := 0; i < TrailerSlots; i++ {
		tr, err := rec.Trailer(i)
		require.NoError(t, err)
		assert.True(t, tr == &rec.Trailers[i], "index %d", i)
	}

	tr, err := rec.Trailer(3)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), tr.Attached)
}

func TestRecord_TrailerInvalidIndex(t *testing.T) {
	rec := sampleRecord()

	for _, i := range []int{-1, TrailerSlots, 100} {
		tr, err := rec.Trailer(i)
		assert.Nil(t, tr)
		assert.True(t, errors.Is(err, ErrInvalidTrailerIndex), "index %d: %v", i, err)
	}
}

func TestSetString(t *testing.T) {
	var buf [6]byte
	for i := range buf {
		buf[i] = 'x'
	}

	SetString(buf[:], "ABC")
	assert.Equal(t, [6]byte{'A', 'B', 'C', 0, 0, 0}, buf)

	SetString(buf[:], "ABCDEFGH")
	assert.Equal(t, [6]byte{'A', 'B', 'C', 'D', 'E', 'F'}, buf)
}

func BenchmarkDecode(b *testing.B) {
	raw, err := sampleRecord().MarshalBinary()
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(raw)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Decode(raw); err != nil {
			b.Fatal(err)
		}
	}
}
