package countdown

import (
	"errors"
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{"zero", "0", 0, false},
		{"single digit", "7", 7, false},
		{"leading zero", "07", 7, false},
		{"upper bound", "59", 59, false},
		{"over bound", "60", 0, true},
		{"truncated to valid", "123", 12, false},
		{"truncated to invalid", "999", 0, true},
		{"negative", "-5", 0, true},
		{"plus sign", "+5", 0, true},
		{"letters", "ab", 0, true},
		{"mixed", "1a", 0, true},
		{"space", " 5", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Validate(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("Validate(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

// accepts is an independent statement of which raw text is legal.
func accepts(raw string) (int, bool) {
	r := []rune(raw)
	if len(r) > 2 {
		r = r[:2]
	}
	if len(r) == 0 {
		return 0, false
	}
	n := 0
	for _, c := range r {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, n <= 59
}

func TestValidateProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("accepts exactly the bounded integers after truncation", prop.ForAll(
		func(raw string) bool {
			got, err := Validate(raw)
			want, ok := accepts(raw)
			if !ok {
				return errors.Is(err, ErrInvalidInput)
			}
			return err == nil && got == want && got >= 0 && got <= 59
		},
		gen.OneGenOf(gen.AnyString(), gen.NumString(), gen.AlphaString()),
	))

	properties.Property("every value in range round-trips", prop.ForAll(
		func(n int) bool {
			got, err := Validate(strconv.Itoa(n))
			return err == nil && got == n
		},
		gen.IntRange(0, 59),
	))

	properties.Property("two-digit values above 59 are rejected", prop.ForAll(
		func(n int) bool {
			_, err := Validate(strconv.Itoa(n))
			return errors.Is(err, ErrInvalidInput)
		},
		gen.IntRange(60, 99),
	))

	properties.Property("negative values are rejected", prop.ForAll(
		func(n int) bool {
			_, err := Validate(strconv.Itoa(n))
			return errors.Is(err, ErrInvalidInput)
		},
		gen.IntRange(-1000, -1),
	))

	properties.TestingRun(t)
}

func TestFieldSetClearsRejectedText(t *testing.T) {
	f := Field{Text: "12", Value: 12}
	if err := f.set("75"); err == nil {
		t.Fatal("expected rejection")
	}
	if !f.Empty() || f.Value != 0 {
		t.Fatalf("expected cleared field, got %+v", f)
	}

	if err := f.set("345"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Text != "34" || f.Value != 34 {
		t.Fatalf("expected truncated field 34, got %+v", f)
	}

	if err := f.set(""); err != nil {
		t.Fatalf("clearing a field should not fail: %v", err)
	}
	if !f.Empty() {
		t.Fatalf("expected empty field, got %+v", f)
	}
}
