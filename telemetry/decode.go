package telemetry

import (
	"bytes"
	"math"
	"strings"
	"time"
)

// zeroUnix is the Unix time of 0001-01-01T00:00:00Z, the epoch game time is
// counted from. It is also the zero value of time.Time.
const zeroUnix = -62135596800

// kmhPerMps converts meters per second to kilometers per hour.
const kmhPerMps = 3.6

// SecondsToTime returns the UTC time seconds after 0001-01-01T00:00:00Z.
// Negative input is treated as zero.
func SecondsToTime(seconds int64) time.Time {
	if seconds < 0 {
		seconds = 0
	}
	return time.Unix(seconds+zeroUnix, 0).UTC()
}

// MinutesToTime is SecondsToTime for a count of minutes.
func MinutesToTime(minutes int64) time.Time {
	return SecondsToTime(minutes * 60)
}

// BytesToString decodes a NUL terminated text buffer. Without a terminator
// the whole buffer is decoded. Invalid UTF-8 is replaced with U+FFFD.
func BytesToString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	if len(b) == 0 {
		return ""
	}
	return strings.ToValidUTF8(string(b), "\uFFFD")
}

// MetersPerSecondToKmh converts a speed to km/h.
func MetersPerSecondToKmh(v float32) float32 {
	return v * kmhPerMps
}

// speedLimitKmh converts a navigation speed limit to whole km/h. Zero and
// negative limits mean "no limit" and are reported as 0.
func speedLimitKmh(v float32) int {
	if v <= 0 {
		return 0
	}
	return int(math.Round(float64(MetersPerSecondToKmh(v))))
}

func flag(v uint8) bool { return v != 0 }
