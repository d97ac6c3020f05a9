package models

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnknownEngineType indicates a string that does not name a supported engine.
var ErrUnknownEngineType = errors.New("unknown engine type")

// EngineType identifies a game engine. The value is the display form used
// in project configuration files and error messages.
type EngineType string

const (
	EngineUnreal EngineType = "Unreal"
	EngineUnity  EngineType = "Unity"
	EngineGodot  EngineType = "Godot"
)

// EngineTypes returns all supported engine types in display order.
func EngineTypes() []EngineType {
	return []EngineType{EngineUnreal, EngineUnity, EngineGodot}
}

// IsValid checks if the engine type is one of the supported values.
func (t EngineType) IsValid() bool {
	switch t {
	case EngineUnreal, EngineUnity, EngineGodot:
		return true
	}
	return false
}

// String returns the display form ("Unreal").
func (t EngineType) String() string {
	return string(t)
}

// Key returns the lowercase form used as a key in the global
// engine_paths table and on the command line ("unreal").
func (t EngineType) Key() string {
	return strings.ToLower(string(t))
}

// ParseEngineType parses an engine name case-insensitively.
func ParseEngineType(s string) (EngineType, error) {
	// Casers carry state, so one is built per call.
	t := EngineType(cases.Title(language.Und).String(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", fmt.Errorf("%w: %q (must be one of: %s)", ErrUnknownEngineType, s, engineKeys())
	}
	return t, nil
}

// MarshalText implements encoding.TextMarshaler.
func (t EngineType) MarshalText() ([]byte, error) {
	return []byte(t), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Known names are
// canonicalised; unknown names are kept verbatim so callers can report
// them as unsupported rather than as a decode failure.
func (t *EngineType) UnmarshalText(text []byte) error {
	if parsed, err := ParseEngineType(string(text)); err == nil {
		*t = parsed
		return nil
	}
	*t = EngineType(strings.TrimSpace(string(text)))
	return nil
}

func engineKeys() string {
	keys := make([]string, 0, 3)
	for _, t := range EngineTypes() {
		keys = append(keys, t.Key())
	}
	return strings.Join(keys, ", ")
}
