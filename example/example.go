// Package example demonstrates enumbind schemas and the code generated
// from them.
package example

//go:generate enumbind kind.yaml
//go:generate enumbind mode.yaml
//go:generate enumbind delta.yaml
//go:generate enumbind flavor.yaml

// Wire framing codes. mode.yaml binds the Mode members to these constants
// by name instead of repeating the values.
const (
	PLAIN  uint32 = 0
	FRAMED uint32 = 1
)
