package scene

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/connorcarpenter/morph"
)

// ErrUnits is returned for a length that cannot be parsed.
var ErrUnits = errors.New("invalid length")

// ParseUnits parses "auto", "12px", "12", "50%" or "1s".
func ParseUnits(s string) (morph.Units, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "auto") {
		return morph.Auto(), nil
	}

	num, ctor := s, morph.Pixels
	switch {
	case strings.HasSuffix(s, "px"):
		num = strings.TrimSuffix(s, "px")
	case strings.HasSuffix(s, "%"):
		num, ctor = strings.TrimSuffix(s, "%"), morph.Percent
	case strings.HasSuffix(s, "s"):
		num, ctor = strings.TrimSuffix(s, "s"), morph.Stretch
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(num), 32)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return morph.Units{}, fmt.Errorf("%w %q", ErrUnits, s)
	}
	return ctor(float32(v)), nil
}

// Length is a length as written in a scene file. It accepts strings and
// bare numbers, which mean pixels. Parsing is deferred until the tree is
// built so that errors can name the node.
type Length struct {
	raw string
	set bool
}

// UnmarshalTOML implements toml.Unmarshaler.
func (l *Length) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case string:
		l.raw = v
	case int64:
		l.raw = strconv.FormatInt(v, 10)
	case float64:
		l.raw = strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Errorf("%w: unsupported value %v", ErrUnits, v)
	}
	l.set = true
	return nil
}

// IsSet reports whether the length was present in the file.
func (l Length) IsSet() bool {
	return l.set
}

// String returns the length as written.
func (l Length) String() string {
	return l.raw
}

// L returns a Length as if written s in a file.
func L(s string) Length {
	return Length{raw: s, set: true}
}
