package solver

import (
	"fmt"
	"strings"
)

// Method selects how portals are derived.
type Method int

const (
	MethodAffine Method = iota
	MethodColor
	MethodFlat
)

var methodNames = map[Method]string{
	MethodAffine: "affine",
	MethodColor:  "color",
	MethodFlat:   "flat",
}

// String returns the method name.
func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("method(%d)", int(m))
}

// ParseMethod resolves a method name; the empty string is MethodAffine.
// Returns ErrUnknownMethod for anything else.
func ParseMethod(s string) (Method, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return MethodAffine, nil
	}
	for m, name := range methodNames {
		if name == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// MarshalText encodes m as its name.
func (m Method) MarshalText() ([]byte, error) {
	if _, ok := methodNames[m]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText decodes a method name.
func (m *Method) UnmarshalText(b []byte) error {
	v, err := ParseMethod(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
