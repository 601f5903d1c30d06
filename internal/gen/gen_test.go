package gen

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/smartystreets/assertions"
	"github.com/smartystreets/assertions/should"

	"github.com/enumbind/enumbind/internal/schema"
)

// constantMap is a ConstantSource backed by a map, standing in for a
// type-checked package.
type constantMap map[string]string

func (m constantMap) Constant(name string) (string, error) {
	v, ok := m[name]
	if !ok {
		return "", fmt.Errorf("constant %q not found", name)
	}
	return v, nil
}

func render(t *testing.T, src string, consts ConstantSource) string {
	t.Helper()

	s, err := schema.Parse([]byte(src))
	if err != nil {
		t.Fatal(err)
	}

	f, err := File(s, "example", consts)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		t.Fatal(err)
	}

	return buf.String()
}

func TestFile_Literals(t *testing.T) {
	test := assertions.New(t)

	out := render(t, `
enum:
  name: Kind
  repr: int64
  doc: Kind classifies example records.
  members: Kek = 14, Wow = 87
`, nil)

	test.So(out, should.ContainSubstring, "// Kind classifies example records.")
	test.So(out, should.ContainSubstring, "type Kind int64")
	test.So(out, should.ContainSubstring, "Kek Kind = 14")
	test.So(out, should.ContainSubstring, "Wow Kind = 87")
	test.So(out, should.ContainSubstring, "func KindFromInt64(v int64) (Kind, error)")
	test.So(out, should.ContainSubstring, "case 14:")
	test.So(out, should.ContainSubstring, "return 0, &UnmatchedKindError{Value: v}")
	test.So(out, should.ContainSubstring, "func (k Kind) Int64() int64")
	test.So(out, should.ContainSubstring, "return int64(k)")
	test.So(out, should.ContainSubstring, `fmt.Sprintf("unmatched Kind value: %d", e.Value)`)
}

func TestFile_NegativeLiterals(t *testing.T) {
	test := assertions.New(t)

	out := render(t, `
enum:
  name: Delta
  repr: int16
  members: Zero = 0, Minus = -1
`, nil)

	test.So(out, should.ContainSubstring, "Minus Delta = -1")
	test.So(out, should.ContainSubstring, "case -1:")
	test.So(out, should.ContainSubstring, "func (d Delta) Int16() int16")
}

func TestFile_Refs(t *testing.T) {
	test := assertions.New(t)

	out := render(t, `
enum:
  name: Mode
  repr: uint32
  members: Plain = PLAIN, Framed = FRAMED
`, constantMap{"PLAIN": "0", "FRAMED": "1"})

	test.So(out, should.ContainSubstring, "Plain  Mode = Mode(PLAIN)")
	test.So(out, should.ContainSubstring, "Framed Mode = Mode(FRAMED)")
	test.So(out, should.ContainSubstring, "case PLAIN:")
	test.So(out, should.ContainSubstring, "case FRAMED:")
}

func TestFile_RefWithoutSource(t *testing.T) {
	s, err := schema.Parse([]byte(`
enum:
  name: Mode
  repr: uint32
  members: Plain = PLAIN
`))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := File(s, "example", nil); err == nil {
		t.Error("File() succeeded, want error for unresolvable reference")
	}
}

func TestFile_UnknownRef(t *testing.T) {
	s, err := schema.Parse([]byte(`
enum:
  name: Mode
  repr: uint32
  members: Plain = PLAIN
`))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := File(s, "example", constantMap{}); err == nil {
		t.Error("File() succeeded, want error for unknown constant")
	}
}

func TestFile_DuplicateValuesFirstMatchWins(t *testing.T) {
	test := assertions.New(t)

	out := render(t, `
enum:
  name: Flavor
  repr: uint8
  derive: [stringer]
  members: Sour = 1, Bitter = 1, Sweet = 2
`, nil)

	// Bitter stays a valid constant but is folded out of value-keyed
	// switches in favor of the first-declared Sour.
	test.So(out, should.ContainSubstring, "Bitter Flavor = 1")
	test.So(strings.Count(out, "case 1:"), should.Equal, 1)
	test.So(out, should.ContainSubstring, "return Sour, nil")
	test.So(out, should.NotContainSubstring, "return Bitter, nil")
	test.So(out, should.NotContainSubstring, `return "Bitter"`)
}

func TestFile_TrailingCommaEquivalent(t *testing.T) {
	test := assertions.New(t)

	with := render(t, `
enum:
  name: Kind
  repr: int64
  members: Kek = 14, Wow = 87,
`, nil)
	without := render(t, `
enum:
  name: Kind
  repr: int64
  members: Kek = 14, Wow = 87
`, nil)

	test.So(with, should.Equal, without)
}

func TestFile_ListAndCompactEquivalent(t *testing.T) {
	test := assertions.New(t)

	list := render(t, `
enum:
  name: Kind
  repr: int64
  members:
    - name: Kek
      value: 14
    - name: Wow
      value: 87
`, nil)
	compact := render(t, `
enum:
  name: Kind
  repr: int64
  members: Kek = 14, Wow = 87
`, nil)

	test.So(list, should.Equal, compact)
}

func TestFile_DeriveOrderIndependent(t *testing.T) {
	test := assertions.New(t)

	a := render(t, `
enum:
  name: Kind
  repr: int64
  derive: [json, stringer]
  members: Kek = 14
`, nil)
	b := render(t, `
enum:
  name: Kind
  repr: int64
  derive: [stringer, json]
  members: Kek = 14
`, nil)

	test.So(a, should.Equal, b)
}

func TestFile_Derives(t *testing.T) {
	test := assertions.New(t)

	out := render(t, `
enum:
  name: Flavor
  repr: uint8
  derive: [stringer, defined, scan, json, text]
  members: Sour = 1, Sweet = 2
`, nil)

	test.So(out, should.ContainSubstring, "func (f Flavor) String() string")
	test.So(out, should.ContainSubstring, "func (f Flavor) Defined() bool")
	test.So(out, should.ContainSubstring, "func (f *Flavor) Scan(scanState fmt.ScanState, verb rune) error")
	test.So(out, should.ContainSubstring, "func (f Flavor) MarshalJSON() ([]byte, error)")
	test.So(out, should.ContainSubstring, "func (f *Flavor) UnmarshalJSON(data []byte) error")
	test.So(out, should.ContainSubstring, "func (f Flavor) MarshalText() ([]byte, error)")
	test.So(out, should.ContainSubstring, "func (f *Flavor) UnmarshalText(data []byte) error")
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		same bool
	}{
		{
			"hex equals decimal",
			"0x10",
			"16",
			true,
		},
		{
			"explicit plus",
			"+1",
			"1",
			true,
		},
		{
			"negative zero",
			"-0",
			"0",
			true,
		},
		{
			"sign matters",
			"-1",
			"1",
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := parseValue(tt.a)
			if err != nil {
				t.Fatal(err)
			}
			b, err := parseValue(tt.b)
			if err != nil {
				t.Fatal(err)
			}
			if (a == b) != tt.same {
				t.Errorf("parseValue(%q) == parseValue(%q) is %v, want %v", tt.a, tt.b, a == b, tt.same)
			}
		})
	}
}

func TestParseValue_Bad(t *testing.T) {
	if _, err := parseValue("1x2"); err == nil {
		t.Error("parseValue(\"1x2\") succeeded, want error")
	}
}

func TestSafeIdent(t *testing.T) {
	if got := safeIdent("type"); got != "_type" {
		t.Errorf("safeIdent(\"type\") = %q", got)
	}
	if got := safeIdent("v", "v"); got != "_v" {
		t.Errorf("safeIdent(\"v\", \"v\") = %q", got)
	}
	if got := safeIdent("v", "x"); got != "v" {
		t.Errorf("safeIdent(\"v\", \"x\") = %q", got)
	}
}
