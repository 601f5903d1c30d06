// enumbind is a tool designed to be called by go:generate for turning a
// declarative enum schema into Go source code.
//
// A schema names an enumerated type, picks a fixed-width integer
// representation, and lists members with explicit values:
//
//	package: example
//	enum:
//	  name: Kind
//	  repr: int64
//	  members: Kek = 14, Wow = 87
//
// From that, enumbind generates
//
//	type Kind int64
//
//	const (
//		Kek Kind = 14
//		Wow Kind = 87
//	)
//
//	// KindFromInt64 converts a raw int64 into a Kind.
//	func KindFromInt64(v int64) (Kind, error) { /* omitted for brevity */ }
//
//	// Int64 returns the numeric value of k.
//	func (k Kind) Int64() int64 { /* omitted for brevity */ }
//
// The conversion from the raw representation fails with a typed error that
// carries the rejected value; the conversion back to the representation
// cannot fail. Member values may also name constants defined in the target
// package instead of literals, and a derive list adds optional methods such
// as String or MarshalJSON.
//
// Invoke it next to the package the code belongs to:
//
//	//go:generate enumbind kind.yaml
//
// For help with the cli, run with the --help argument.
//
//	enumbind --help
package main

import (
	"github.com/enumbind/enumbind/internal/cmd"
)

func main() {
	cmd.Execute()
}
