package keyer

import (
	"math"
	"time"
)

const (
	MinimumWpm = 5
	MaximumWpm = 60
	DefaultWpm = 24

	MaximumRawSpeed = uint8(127)

	rawSpeedBaseWpm  = 6
	rawSpeedRangeWpm = 42
)

// WpmOfRaw maps the raw value of a speed control (0..127) to 6..48 WPM.
func WpmOfRaw(raw uint8) int {
	raw = min(raw, MaximumRawSpeed)
	return rawSpeedBaseWpm + int(math.Round(rawSpeedRangeWpm*float64(raw)/float64(MaximumRawSpeed)))
}

// RawOfWpm is the inverse of WpmOfRaw.
func RawOfWpm(wpm int) uint8 {
	v := math.Round(float64(wpm-rawSpeedBaseWpm) * float64(MaximumRawSpeed) / rawSpeedRangeWpm)
	return uint8(max(0, min(v, float64(MaximumRawSpeed))))
}

// DotMillis is the duration of one dot in milliseconds using the PARIS
// standard: 1.2 seconds divided by the words per minute.
func DotMillis(wpm int) float64 {
	return 1200 / float64(wpm)
}

func DotDurationOf(wpm int) time.Duration {
	return time.Duration(math.Round(DotMillis(wpm) * float64(time.Millisecond)))
}

// MaximumWpmOf returns the highest speed at which an element rendered with
// the given ramp still fits into the time it is keyed for. A rendered
// element is two ramps longer than its nominal duration, the pause after it
// is one dot, so a dot must not be shorter than two ramps.
func MaximumWpmOf(rampMs float64) int {
	if rampMs <= 0 {
		return MaximumWpm
	}
	return min(MaximumWpm, int(math.Floor(1200/(2*rampMs))))
}

func clampWpm(wpm, maximum int) int {
	return max(MinimumWpm, min(wpm, maximum))
}
