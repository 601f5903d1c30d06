// Package schema defines the enum declaration descriptor consumed by
// enumbind and decodes it from YAML.
package schema

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// Repr is the fixed-width integer kind backing a generated enum. It
// determines the underlying type of the emitted enum type and the exact
// numeric kind used by both generated conversions.
type Repr string

const (
	Int8   Repr = "int8"
	Int16  Repr = "int16"
	Int32  Repr = "int32"
	Int64  Repr = "int64"
	Uint8  Repr = "uint8"
	Uint16 Repr = "uint16"
	Uint32 Repr = "uint32"
	Uint64 Repr = "uint64"
)

var reprInfo = map[Repr]struct {
	signed bool
	bits   int
}{
	Int8:   {true, 8},
	Int16:  {true, 16},
	Int32:  {true, 32},
	Int64:  {true, 64},
	Uint8:  {false, 8},
	Uint16: {false, 16},
	Uint32: {false, 32},
	Uint64: {false, 64},
}

// Known reports whether r names a supported representation.
func (r Repr) Known() bool {
	_, ok := reprInfo[r]
	return ok
}

// Signed reports whether r is a signed kind.
func (r Repr) Signed() bool {
	return reprInfo[r].signed
}

// Bits returns the width of r in bits.
func (r Repr) Bits() int {
	return reprInfo[r].bits
}

// Method returns the name of the generated enum-to-numeric method, e.g.
// "Int64" for repr int64.
func (r Repr) Method() string {
	s := string(r)
	return strings.ToUpper(s[:1]) + s[1:]
}

// Derive names an optional capability generated alongside the conversions.
type Derive string

const (
	DeriveStringer Derive = "stringer" // String() string
	DeriveDefined  Derive = "defined"  // Defined() bool
	DeriveScan     Derive = "scan"     // Scan(fmt.ScanState, rune) error
	DeriveJSON     Derive = "json"     // MarshalJSON / UnmarshalJSON
	DeriveText     Derive = "text"     // MarshalText / UnmarshalText
)

var knownDerives = map[Derive]bool{
	DeriveStringer: true,
	DeriveDefined:  true,
	DeriveScan:     true,
	DeriveJSON:     true,
	DeriveText:     true,
}

// Member is one named case of the enum, bound to exactly one value. The
// value is either a verbatim integer literal or the name of a constant in
// the target package; exactly one of Literal and Ref is set.
type Member struct {
	Name    string
	Doc     string
	Literal string
	Ref     string
}

// UnmarshalYAML decodes a member mapping. The value field accepts an
// integer literal or an identifier naming a constant; the literal text is
// preserved verbatim so it can be re-emitted unchanged.
func (m *Member) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Name  string    `yaml:"name"`
		Doc   string    `yaml:"doc"`
		Value yaml.Node `yaml:"value"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}

	m.Name = raw.Name
	m.Doc = raw.Doc
	m.Literal = ""
	m.Ref = ""

	if raw.Value.Kind == 0 {
		return nil // absence is reported by Validate with the member's name
	}
	if raw.Value.Kind != yaml.ScalarNode {
		return fmt.Errorf("member %q: value must be a scalar", raw.Name)
	}

	lit, ref, err := classifyValue(raw.Value.Value)
	if err != nil {
		return fmt.Errorf("member %q: %w", raw.Name, err)
	}
	m.Literal, m.Ref = lit, ref
	return nil
}

// Enum describes the enumerated type to generate.
type Enum struct {
	Name    string
	Repr    Repr
	Doc     string
	Derive  []Derive
	Members []Member
}

// UnmarshalYAML decodes an enum mapping. The members field accepts either a
// sequence of member mappings or a single "Name = value, ..." string.
func (e *Enum) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Name    string    `yaml:"name"`
		Repr    Repr      `yaml:"repr"`
		Doc     string    `yaml:"doc"`
		Derive  []Derive  `yaml:"derive"`
		Members yaml.Node `yaml:"members"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}

	e.Name = raw.Name
	e.Repr = raw.Repr
	e.Doc = raw.Doc
	e.Derive = raw.Derive
	e.Members = nil

	switch raw.Members.Kind {
	case 0:
		return nil
	case yaml.ScalarNode:
		var list string
		if err := raw.Members.Decode(&list); err != nil {
			return err
		}
		ms, err := ParseMemberList(list)
		if err != nil {
			return err
		}
		e.Members = ms
		return nil
	case yaml.SequenceNode:
		return raw.Members.Decode(&e.Members)
	default:
		return fmt.Errorf("enum %q: members must be a list or a string", raw.Name)
	}
}

// HasRefs reports whether any member value is a named constant reference.
func (e *Enum) HasRefs() bool {
	for _, m := range e.Members {
		if m.Ref != "" {
			return true
		}
	}
	return false
}

// Schema is a complete enum declaration descriptor.
type Schema struct {
	Package string `yaml:"package"`
	Enum    Enum   `yaml:"enum"`
}

// Load reads and validates the schema file at path.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a schema document.
func Parse(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the descriptor invariants that the Go compiler cannot
// catch later. Duplicate member names and out-of-range values are left to
// the compiler, which rejects them when the generated file is built.
func (s *Schema) Validate() error {
	e := &s.Enum

	if e.Name == "" {
		return fmt.Errorf("enum name is required")
	}
	if !isIdentifier(e.Name) {
		return fmt.Errorf("enum name %q is not a valid identifier", e.Name)
	}
	if e.Repr == "" {
		return fmt.Errorf("enum %q: repr is required", e.Name)
	}
	if !e.Repr.Known() {
		return fmt.Errorf("enum %q: unknown repr %q", e.Name, e.Repr)
	}
	if len(e.Members) == 0 {
		return fmt.Errorf("enum %q: at least one member is required", e.Name)
	}

	for _, d := range e.Derive {
		if !knownDerives[d] {
			return fmt.Errorf("enum %q: unknown derive %q", e.Name, d)
		}
	}

	for _, m := range e.Members {
		if m.Name == "" {
			return fmt.Errorf("enum %q: member name is required", e.Name)
		}
		if !isIdentifier(m.Name) {
			return fmt.Errorf("enum %q: member name %q is not a valid identifier", e.Name, m.Name)
		}
		if m.Literal == "" && m.Ref == "" {
			return fmt.Errorf("enum %q: member %q requires an explicit value", e.Name, m.Name)
		}
	}

	return nil
}

// ParseMemberList parses the compact "Name = value, Name = value" member
// list form. A trailing comma after the last member is accepted and yields
// the same members as omitting it.
func ParseMemberList(list string) ([]Member, error) {
	parts := strings.Split(list, ",")
	if last := len(parts) - 1; last >= 0 && strings.TrimSpace(parts[last]) == "" {
		parts = parts[:last]
	}

	if len(parts) == 0 {
		return nil, fmt.Errorf("empty member list")
	}

	ms := make([]Member, 0, len(parts))
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("member %d is empty", i+1)
		}

		name, value, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("member %d: expected Name = value, got %q", i+1, part)
		}

		m := Member{Name: strings.TrimSpace(name)}
		lit, ref, err := classifyValue(value)
		if err != nil {
			return nil, fmt.Errorf("member %q: %w", m.Name, err)
		}
		m.Literal, m.Ref = lit, ref

		ms = append(ms, m)
	}

	return ms, nil
}

// classifyValue decides whether a member value is an integer literal or a
// named constant reference. Literal text is returned verbatim; range checks
// are left to the compiler.
func classifyValue(value string) (lit, ref string, err error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", "", fmt.Errorf("explicit value required")
	}

	if isIdentifier(value) {
		return "", value, nil
	}
	if isIntLiteral(value) {
		return value, "", nil
	}

	return "", "", fmt.Errorf("value %q is neither an integer literal nor an identifier", value)
}

// isIdentifier reports whether s is a valid Go identifier.
func isIdentifier(s string) bool {
	for i, r := range s {
		if unicode.IsLetter(r) || r == '_' {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return s != ""
}

// isIntLiteral reports whether s is an integer literal with an optional
// sign. Base prefixes and digit separators follow Go literal syntax.
func isIntLiteral(s string) bool {
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		s = s[1:]
	}
	_, err := strconv.ParseUint(s, 0, 64)
	return err == nil
}
