package parser

import "fmt"

// Constructs named by a FormatError
const (
	ConstructAudioOffset = "audio offset"
	ConstructHold        = "hold"
	ConstructArc         = "arc"
	ConstructArcTap      = "arctap"
	ConstructTiming      = "timing"
	ConstructTap         = "tap"
)

// FormatError is returned when a line does not have the shape its prefix
// promises.
type FormatError struct {
	Line      int // 1-based
	Construct string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s format error at line %d", e.Construct, e.Line)
}

type InvalidEasingTokenError struct {
	Line  int
	Token string
}

func (e *InvalidEasingTokenError) Error() string {
	return fmt.Sprintf("unknown easing type %q at line %d", e.Token, e.Line)
}

type NumberFormatError struct {
	Line  int
	Field string
	Value string
	Err   error
}

func (e *NumberFormatError) Error() string {
	return fmt.Sprintf("invalid %s %q at line %d: %v", e.Field, e.Value, e.Line, e.Err)
}

func (e *NumberFormatError) Unwrap() error {
	return e.Err
}
