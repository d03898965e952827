package labs

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// Sequence is a fixed-length binary sequence with elements in {-1, +1}.
// Core operations treat sequences as values: they work on internal copies
// and never mutate a caller's slice.
type Sequence []int8

// Random draws a uniform sequence of length n from rng, each element
// independently ±1 with equal probability. The random source is owned by
// the caller; seeding it is the caller's responsibility.
func Random(n int, rng *rand.Rand) (Sequence, error) {
	if n < 1 {
		return nil, ErrInvalidLength
	}
	if rng == nil {
		return nil, ErrNilRand
	}

	s := make(Sequence, n)
	for i := range s {
		if rng.Intn(2) == 0 {
			s[i] = -1
		} else {
			s[i] = 1
		}
	}
	return s, nil
}

// Parse reads a sequence from text. Two forms are accepted: a compact
// symbol string where '+' or '1' means +1 and '-' means -1 (e.g. "+--+"),
// and a comma or whitespace separated list of ±1 integers (e.g. "1,-1,1").
func Parse(text string) (Sequence, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptySequence
	}

	if strings.ContainsAny(text, ", \t") {
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		s := make(Sequence, 0, len(fields))
		for _, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil || (v != 1 && v != -1) {
				return nil, fmt.Errorf("labs: element %q: %w", f, ErrInvalidSymbol)
			}
			s = append(s, int8(v))
		}
		if len(s) == 0 {
			return nil, ErrEmptySequence
		}
		return s, nil
	}

	s := make(Sequence, 0, len(text))
	for _, r := range text {
		switch r {
		case '+', '1':
			s = append(s, 1)
		case '-':
			s = append(s, -1)
		default:
			return nil, fmt.Errorf("labs: symbol %q: %w", r, ErrInvalidSymbol)
		}
	}
	return s, nil
}

// Validate checks that the sequence is non-empty and every element is ±1.
func (s Sequence) Validate() error {
	if len(s) == 0 {
		return ErrEmptySequence
	}
	for i, v := range s {
		if v != 1 && v != -1 {
			return fmt.Errorf("labs: index %d: %w", i, ErrInvalidSymbol)
		}
	}
	return nil
}

// Clone returns an independent copy of the sequence.
func (s Sequence) Clone() Sequence {
	c := make(Sequence, len(s))
	copy(c, s)
	return c
}

// String renders the sequence in compact symbol form, '+' for +1 and '-'
// for -1. The output round-trips through Parse.
func (s Sequence) String() string {
	var b strings.Builder
	b.Grow(len(s))
	for _, v := range s {
		if v < 0 {
			b.WriteByte('-')
		} else {
			b.WriteByte('+')
		}
	}
	return b.String()
}
