package countdown

import (
	"fmt"
	"strconv"
)

// MaxValue is the largest value accepted for minutes or seconds.
const MaxValue = 59

// maxRemaining is the longest countdown, in seconds, the inputs can express.
const maxRemaining = MaxValue*60 + MaxValue

// maxLen is how many characters of raw input are considered.
const maxLen = 2

// Truncate keeps at most the first two characters of raw.
func Truncate(raw string) string {
	r := []rune(raw)
	if len(r) > maxLen {
		return string(r[:maxLen])
	}
	return raw
}

// Validate parses raw into a value in [0, 59]. Text longer than two
// characters is truncated first. Empty, non-numeric, signed or out of range
// text is rejected with an error wrapping ErrInvalidInput.
func Validate(raw string) (int, error) {
	text := Truncate(raw)
	if text == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidInput)
	}
	for _, c := range text {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidInput, text)
		}
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInput, text)
	}
	if n > MaxValue {
		return 0, fmt.Errorf("%w: %d", ErrInvalidInput, n)
	}
	return n, nil
}

// Field is one numeric input: the text shown to the user and its value.
// An empty field has no value.
type Field struct {
	Text  string
	Value int
}

// Empty reports whether the field holds no value.
func (f Field) Empty() bool { return f.Text == "" }

// set applies a text-change event. Rejected text clears the field.
func (f *Field) set(raw string) error {
	if raw == "" {
		*f = Field{}
		return nil
	}
	n, err := Validate(raw)
	if err != nil {
		*f = Field{}
		return err
	}
	*f = Field{Text: Truncate(raw), Value: n}
	return nil
}

func fieldOf(n int) Field {
	return Field{Text: strconv.Itoa(n), Value: n}
}
