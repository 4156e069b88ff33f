package domain

import (
	"fmt"
	"strings"
)

// Tone is the presentation category of a verdict
type Tone int

const (
	ToneNegative Tone = iota
	ToneCaution
	TonePositive
)

func (t Tone) String() string {
	switch t {
	case ToneNegative:
		return "negative"
	case ToneCaution:
		return "caution"
	case TonePositive:
		return "positive"
	default:
		return "unknown"
	}
}

// ParseTone maps a textual tone to its value
func ParseTone(s string) (Tone, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "negative", "error":
		return ToneNegative, nil
	case "caution", "warning":
		return ToneCaution, nil
	case "positive", "success":
		return TonePositive, nil
	}
	return ToneNegative, fmt.Errorf("unknown tone %q (want positive, caution or negative)", s)
}

// MarshalText implements encoding.TextMarshaler
func (t Tone) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *Tone) UnmarshalText(text []byte) error {
	parsed, err := ParseTone(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Verdict is the categorical label derived from a final score
type Verdict struct {
	Label       string `yaml:"label" json:"label"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Tone        Tone   `yaml:"tone" json:"tone"`
}

func (v Verdict) String() string {
	return v.Label
}
