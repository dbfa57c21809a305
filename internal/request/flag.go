package request

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Flag is a boolean that also accepts 0/1 and their string forms, as
// sent by clients that store flags as integers.
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = Flag(b)
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = n != 0
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return f.parseString(s)
	}

	return fmt.Errorf("invalid flag value %s", string(data))
}

// UnmarshalText supports form-encoded bodies.
func (f *Flag) UnmarshalText(text []byte) error {
	return f.parseString(string(text))
}

func (f *Flag) parseString(s string) error {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		*f = false
		return nil
	}
	if b, err := strconv.ParseBool(s); err == nil {
		*f = Flag(b)
		return nil
	}
	return fmt.Errorf("invalid flag value %q", s)
}

// Int is the stored representation: 1 for true, 0 for false.
func (f Flag) Int() int {
	if f {
		return 1
	}
	return 0
}
