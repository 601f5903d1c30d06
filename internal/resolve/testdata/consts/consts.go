// Package consts holds constants for resolver tests.
package consts

const (
	PLAIN  uint32 = 0
	FRAMED uint32 = 1
)

const NEG = -1

const Greeting = "hello"

var NotAConstant = 42
