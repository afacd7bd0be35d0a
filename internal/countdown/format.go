package countdown

import (
	"strconv"
	"time"
)

// Separator is the literal between the minutes and seconds groups.
const Separator = ":"

// Digits renders a 0-59 value as two zero-padded digits. Empty text renders
// "00"; text that is not a number is returned unchanged.
func Digits(text string) string {
	if text == "" {
		return "00"
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return text
	}
	return Pad(n)
}

// Pad zero-pads n to two digits.
func Pad(n int) string {
	if n >= 0 && n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// Clock renders d as MM:SS.
func Clock(d time.Duration) string {
	total := int(d / time.Second)
	return Pad(total/60) + Separator + Pad(total%60)
}

// blinkHalf is the duration of one fade; a full blink cycle is twice this.
const blinkHalf = 500 * time.Millisecond

// SeparatorAlpha returns the separator opacity elapsed into a blink. It
// fades 1.0 to 0.9 over the first 250ms, then to 0.0 at 500ms, and plays the
// same keyframes in reverse for the next 500ms.
func SeparatorAlpha(elapsed time.Duration) float64 {
	if elapsed < 0 {
		elapsed = -elapsed
	}
	pos := elapsed % (2 * blinkHalf)
	if pos >= blinkHalf {
		pos = 2*blinkHalf - pos
	}
	const knee = 250 * time.Millisecond
	if pos <= knee {
		return 1.0 - 0.1*float64(pos)/float64(knee)
	}
	return 0.9 - 0.9*float64(pos-knee)/float64(blinkHalf-knee)
}
