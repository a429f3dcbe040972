package enum

import (
	"fmt"
)

// Mode is the toggle direction, enable uncomments LOG_DEBUG lines and disable comments them out
type Mode struct {
	name  string
	value int
}

func (e Mode) String() string { return e.name }

// Index returns the underlying integer value
func (e Mode) Index() int { return e.value }

// MarshalText implements encoding.TextMarshaler
func (e Mode) MarshalText() ([]byte, error) {
	return []byte(e.name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (e *Mode) UnmarshalText(text []byte) error {
	val, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*e = val
	return nil
}

// ParseMode converts string to mode enum value
func ParseMode(v string) (Mode, error) {
	if val, ok := modeNameToValue[v]; ok {
		return val, nil
	}
	return Mode{}, fmt.Errorf("invalid mode: %s", v)
}

// MustMode is like ParseMode but panics if string is invalid
func MustMode(v string) Mode {
	r, err := ParseMode(v)
	if err != nil {
		panic(err)
	}
	return r
}

// Public constants for mode values
var (
	ModeEnable  = Mode{name: "enable", value: int(modeEnable)}
	ModeDisable = Mode{name: "disable", value: int(modeDisable)}
)

// ModeValues contains all possible enum values
var ModeValues = []Mode{
	ModeEnable,
	ModeDisable,
}

// ModeNames contains all possible enum names
var ModeNames = []string{
	"enable",
	"disable",
}

// modeNameToValue maps names and aliases to enum values
var modeNameToValue = map[string]Mode{
	"enable":  ModeEnable,
	"on":      ModeEnable,
	"disable": ModeDisable,
	"off":     ModeDisable,
}

// compile-time check that all enum values are handled
func _() {
	var x [1]struct{}
	_ = x[modeEnable-0]
	_ = x[modeDisable-1]
}
