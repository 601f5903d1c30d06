// Package gen renders the Go source for an enum declaration descriptor:
// the type, its constants, the two value conversions, and any derived
// methods.
package gen

import (
	"fmt"
	"go/token"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dave/jennifer/jen"

	"github.com/enumbind/enumbind/internal/schema"
)

// ConstantSource resolves named constant references to their exact values.
type ConstantSource interface {
	Constant(name string) (string, error)
}

// boundMember pairs a schema member with its resolved numeric value. The
// value is needed at generation time so that members sharing a value can be
// folded into the first-declared one wherever the generated code switches
// on values.
type boundMember struct {
	schema.Member
	key valueKey
}

// valueKey is a comparable form of a member value. Magnitude and sign
// cover every representable value of every supported repr.
type valueKey struct {
	neg bool
	mag uint64
}

// File renders the complete generated file for s. pkgName is the package
// clause of the output. consts supplies values for members bound to named
// constants; it may be nil when no member uses one.
func File(s *schema.Schema, pkgName string, consts ConstantSource) (*jen.File, error) {
	e := &s.Enum

	ms, err := bindMembers(e, consts)
	if err != nil {
		return nil, err
	}
	distinct := distinctByValue(ms)

	receiver := defaultReceiverName(e.Name)
	vVarName := safeIdent("v", receiver)
	errVarName := safeIdent("e", receiver, vVarName)
	tokenVarName := safeIdent("token", receiver, vVarName, errVarName)
	scanStateVarName := safeIdent("scanState", receiver, vVarName, errVarName, tokenVarName)
	verbVarName := safeIdent("verb", receiver, vVarName, errVarName, tokenVarName, scanStateVarName)
	dataVarName := safeIdent("data", receiver, vVarName, errVarName, tokenVarName, scanStateVarName, verbVarName)

	f := jen.NewFile(pkgName)
	f.HeaderComment(fmt.Sprintf("Code generated by %q; DO NOT EDIT.", strings.Join(os.Args, " ")))

	f.Line()
	generateTypeDecl(f, e, ms)

	f.Line()
	generateUnmatchedError(f, e, errVarName)

	f.Line()
	generateFromRepr(f, e, distinct, vVarName)

	f.Line()
	generateToRepr(f, e, receiver)

	for _, d := range deriveOrder {
		if !hasDerive(e, d) {
			continue
		}

		f.Line()
		switch d {
		case schema.DeriveStringer:
			generateStringMethod(f, e, distinct, receiver)
		case schema.DeriveDefined:
			generateDefinedMethod(f, e, distinct, receiver)
		case schema.DeriveScan:
			generateScanMethod(f, e, ms, receiver, scanStateVarName, verbVarName, tokenVarName)
		case schema.DeriveJSON:
			generateJSONMethods(f, e, ms, distinct, receiver, dataVarName)
		case schema.DeriveText:
			generateTextMethods(f, e, ms, distinct, receiver, dataVarName)
		}
	}

	f.Line()

	return f, nil
}

// deriveOrder fixes the order derived methods appear in, independent of
// the order they were requested in.
var deriveOrder = []schema.Derive{
	schema.DeriveStringer,
	schema.DeriveDefined,
	schema.DeriveScan,
	schema.DeriveJSON,
	schema.DeriveText,
}

func hasDerive(e *schema.Enum, d schema.Derive) bool {
	for _, have := range e.Derive {
		if have == d {
			return true
		}
	}
	return false
}

// bindMembers resolves every member to its numeric value. Literal text is
// parsed directly; references are looked up through consts.
func bindMembers(e *schema.Enum, consts ConstantSource) ([]boundMember, error) {
	ms := make([]boundMember, 0, len(e.Members))
	for _, m := range e.Members {
		text := m.Literal
		if m.Ref != "" {
			if consts == nil {
				return nil, fmt.Errorf("member %q references constant %q but no package is available to resolve it", m.Name, m.Ref)
			}

			v, err := consts.Constant(m.Ref)
			if err != nil {
				return nil, fmt.Errorf("member %q: %w", m.Name, err)
			}
			text = v
		}

		key, err := parseValue(text)
		if err != nil {
			return nil, fmt.Errorf("member %q: %w", m.Name, err)
		}

		ms = append(ms, boundMember{Member: m, key: key})
	}

	return ms, nil
}

// distinctByValue keeps the first-declared member for each value. Later
// members with the same value stay valid constants but are dropped from
// value-keyed switches, so the first one wins on conversion.
func distinctByValue(ms []boundMember) []boundMember {
	seen := make(map[valueKey]bool, len(ms))
	ret := make([]boundMember, 0, len(ms))
	for _, m := range ms {
		if seen[m.key] {
			continue
		}
		seen[m.key] = true
		ret = append(ret, m)
	}

	return ret
}

// parseValue normalizes integer literal text into a comparable key.
func parseValue(text string) (valueKey, error) {
	var neg bool
	digits := text
	if len(digits) > 0 && (digits[0] == '-' || digits[0] == '+') {
		neg = digits[0] == '-'
		digits = digits[1:]
	}

	mag, err := strconv.ParseUint(digits, 0, 64)
	if err != nil {
		return valueKey{}, fmt.Errorf("bad integer value %q", text)
	}
	if mag == 0 {
		neg = false
	}

	return valueKey{neg: neg, mag: mag}, nil
}

// generateTypeDecl emits the enum type and its constants, forwarding the
// descriptor's documentation verbatim.
func generateTypeDecl(f *jen.File, e *schema.Enum, ms []boundMember) {
	for _, line := range docLines(e.Doc) {
		f.Comment(line)
	}
	f.Type().Id(e.Name).Id(string(e.Repr))

	f.Line()
	f.Const().DefsFunc(func(g *jen.Group) {
		for _, m := range ms {
			for _, line := range docLines(m.Doc) {
				g.Comment(line)
			}
			if m.Ref != "" {
				g.Id(m.Name).Id(e.Name).Op("=").Id(e.Name).Call(jen.Id(m.Ref))
				continue
			}
			g.Id(m.Name).Id(e.Name).Op("=").Op(m.Literal)
		}
	})
}

// generateUnmatchedError emits the error type carrying a rejected value.
func generateUnmatchedError(f *jen.File, e *schema.Enum, errVarName string) {
	errName := unmatchedErrorName(e)

	f.Commentf("%s is returned by %s when no %s member has the requested value.", errName, fromReprName(e), e.Name)
	f.Comment("Value holds the rejected input unchanged.")
	f.Type().Id(errName).Struct(
		jen.Id("Value").Id(string(e.Repr)),
	)

	f.Line()
	f.Func().Params(jen.Id(errVarName).Op("*").Id(errName)).Id("Error").Params().String().Block(
		jen.Return(jen.Qual("fmt", "Sprintf").Call(jen.Lit("unmatched "+e.Name+" value: %d"), jen.Id(errVarName).Dot("Value"))),
	)
}

// generateFromRepr emits the fallible numeric-to-enum conversion. Members
// are tested in declaration order; the first member with a matching value
// wins.
func generateFromRepr(f *jen.File, e *schema.Enum, distinct []boundMember, vVarName string) {
	f.Commentf("%s converts a raw %s into a %s.", fromReprName(e), e.Repr, e.Name)
	f.Commentf("A value that matches no member is rejected with an *%s carrying that value.", unmatchedErrorName(e))
	f.Func().Id(fromReprName(e)).Params(jen.Id(vVarName).Id(string(e.Repr))).Params(jen.Id(e.Name), jen.Error()).Block(
		jen.Switch(jen.Id(vVarName)).BlockFunc(func(g *jen.Group) {
			for _, m := range distinct {
				g.Case(caseValue(m)).Block(jen.Return(jen.Id(m.Name), jen.Nil()))
			}
		}),
		jen.Return(jen.Lit(0), jen.Op("&").Id(unmatchedErrorName(e)).Values(jen.Dict{
			jen.Id("Value"): jen.Id(vVarName),
		})),
	)
}

// generateToRepr emits the total enum-to-numeric conversion.
func generateToRepr(f *jen.File, e *schema.Enum, receiver string) {
	f.Commentf("%s returns the numeric value of %s. It is defined for every %s value.", e.Repr.Method(), receiver, e.Name)
	f.Func().Params(jen.Id(receiver).Id(e.Name)).Id(e.Repr.Method()).Params().Id(string(e.Repr)).Block(
		jen.Return(jen.Id(string(e.Repr)).Parens(jen.Id(receiver))),
	)
}

// generateStringMethod emits the String() method for the enum.
func generateStringMethod(f *jen.File, e *schema.Enum, distinct []boundMember, receiver string) {
	f.Commentf("String implements fmt.Stringer. Undefined values render as %s(<value>).", e.Name)
	f.Func().Params(jen.Id(receiver).Id(e.Name)).Id("String").Params().String().Block(
		jen.Switch(jen.Id(receiver)).BlockFunc(func(g *jen.Group) {
			for _, m := range distinct {
				g.Case(jen.Id(m.Name)).Block(jen.Return(jen.Lit(m.Name)))
			}
		}),
		jen.Return(jen.Qual("fmt", "Sprintf").Call(jen.Lit(fmt.Sprintf("%s(%%d)", e.Name)), jen.Id(string(e.Repr)).Parens(jen.Id(receiver)))),
	)
}

// generateDefinedMethod emits the Defined() method for the enum.
func generateDefinedMethod(f *jen.File, e *schema.Enum, distinct []boundMember, receiver string) {
	f.Commentf("Defined returns true if %s holds a declared member's value.", receiver)
	f.Func().Params(jen.Id(receiver).Id(e.Name)).Id("Defined").Params().Bool().Block(
		jen.Switch(jen.Id(receiver)).Block(
			jen.CaseFunc(func(g *jen.Group) {
				for _, m := range distinct {
					g.Id(m.Name)
				}
			}).Block(jen.Return(jen.True())),
			jen.Default().Block(jen.Return(jen.False())),
		),
	)
}

// generateScanMethod emits the Scan() method for the enum.
func generateScanMethod(f *jen.File, e *schema.Enum, ms []boundMember, receiver, scanStateVarName, verbVarName, tokenVarName string) {
	f.Commentf("Scan implements fmt.Scanner. Use fmt.Scan() to parse strings into %s values", e.Name)
	f.Func().Params(jen.Id(receiver).Op("*").Id(e.Name)).Id("Scan").Params(jen.Id(scanStateVarName).Qual("fmt", "ScanState"), jen.Id(verbVarName).Rune()).Error().Block(
		jen.List(jen.Id(tokenVarName), jen.Err()).Op(":=").Id(scanStateVarName).Dot("Token").Call(jen.True(), jen.Nil()),
		jen.If(jen.Err().Op("!=").Nil()).Block(
			jen.Return(jen.Err()),
		),

		jen.Line(),
		jen.Switch(jen.String().Parens(jen.Id(tokenVarName))).BlockFunc(func(g *jen.Group) {
			for _, m := range ms {
				g.Case(jen.Lit(m.Name)).Block(
					jen.Op("*").Id(receiver).Op("=").Id(m.Name),
				)
			}
			g.Default().Block(
				jen.Return(jen.Qual("fmt", "Errorf").Call(jen.Lit("unknown "+e.Name+" value: %s"), jen.Id(tokenVarName))),
			)
		}),

		jen.Return(jen.Nil()),
	)
}

// generateJSONMethods emits MarshalJSON and UnmarshalJSON, representing
// members by their names.
func generateJSONMethods(f *jen.File, e *schema.Enum, ms, distinct []boundMember, receiver, dataVarName string) {
	f.Comment("MarshalJSON implements json.Marshaler")
	f.Func().Params(jen.Id(receiver).Id(e.Name)).Id("MarshalJSON").Params().Params(jen.Op("[]").Byte(), jen.Error()).Block(
		jen.Switch(jen.Id(receiver)).BlockFunc(func(g *jen.Group) {
			for _, m := range distinct {
				g.Case(jen.Id(m.Name)).Block(jen.Return(jen.Op("[]").Byte().Parens(jen.Lit(strconv.Quote(m.Name))), jen.Nil()))
			}
		}),
		jen.Return(jen.Nil(), jen.Op("&").Id(unmatchedErrorName(e)).Values(jen.Dict{
			jen.Id("Value"): jen.Id(string(e.Repr)).Parens(jen.Id(receiver)),
		})),
	)

	f.Line()
	f.Comment("UnmarshalJSON implements json.Unmarshaler")
	f.Func().Params(jen.Id(receiver).Op("*").Id(e.Name)).Id("UnmarshalJSON").Params(jen.Id(dataVarName).Op("[]").Byte()).Params(jen.Error()).Block(
		jen.Switch(jen.String().Parens(jen.Id(dataVarName))).BlockFunc(func(g *jen.Group) {
			for _, m := range ms {
				g.Case(jen.Lit(strconv.Quote(m.Name))).Block(
					jen.Op("*").Id(receiver).Op("=").Id(m.Name),
					jen.Return(jen.Nil()),
				)
			}
			g.Default().Block(
				jen.Return(jen.Qual("fmt", "Errorf").Call(jen.Lit("failed to parse value %v into %T"), jen.Id(dataVarName), jen.Op("*").Id(receiver))),
			)
		}),
	)
}

// generateTextMethods emits MarshalText and UnmarshalText, representing
// members by their names.
func generateTextMethods(f *jen.File, e *schema.Enum, ms, distinct []boundMember, receiver, dataVarName string) {
	f.Comment("MarshalText implements encoding.TextMarshaler")
	f.Func().Params(jen.Id(receiver).Id(e.Name)).Id("MarshalText").Params().Params(jen.Op("[]").Byte(), jen.Error()).Block(
		jen.Switch(jen.Id(receiver)).BlockFunc(func(g *jen.Group) {
			for _, m := range distinct {
				g.Case(jen.Id(m.Name)).Block(jen.Return(jen.Op("[]").Byte().Parens(jen.Lit(m.Name)), jen.Nil()))
			}
		}),
		jen.Return(jen.Nil(), jen.Op("&").Id(unmatchedErrorName(e)).Values(jen.Dict{
			jen.Id("Value"): jen.Id(string(e.Repr)).Parens(jen.Id(receiver)),
		})),
	)

	f.Line()
	f.Comment("UnmarshalText implements encoding.TextUnmarshaler")
	f.Func().Params(jen.Id(receiver).Op("*").Id(e.Name)).Id("UnmarshalText").Params(jen.Id(dataVarName).Op("[]").Byte()).Params(jen.Error()).Block(
		jen.Switch(jen.String().Parens(jen.Id(dataVarName))).BlockFunc(func(g *jen.Group) {
			for _, m := range ms {
				g.Case(jen.Lit(m.Name)).Block(
					jen.Op("*").Id(receiver).Op("=").Id(m.Name),
					jen.Return(jen.Nil()),
				)
			}
			g.Default().Block(
				jen.Return(jen.Qual("fmt", "Errorf").Call(jen.Lit("unknown "+e.Name+" value: %s"), jen.Id(dataVarName))),
			)
		}),
	)
}

// caseValue renders a member's value expression for a switch over the raw
// representation. Literal text and constant references pass through
// verbatim, like the descriptor spelled them.
func caseValue(m boundMember) jen.Code {
	if m.Ref != "" {
		return jen.Id(m.Ref)
	}

	// Op inserts the literal verbatim without the type cast Lit would add.
	return jen.Op(m.Literal)
}

func fromReprName(e *schema.Enum) string {
	return e.Name + "From" + e.Repr.Method()
}

func unmatchedErrorName(e *schema.Enum) string {
	return "Unmatched" + e.Name + "Error"
}

// docLines splits forwarded documentation into comment lines.
func docLines(doc string) []string {
	doc = strings.TrimRight(doc, "\n")
	if doc == "" {
		return nil
	}

	return strings.Split(doc, "\n")
}

// defaultReceiverName returns the default receiver name for type name.
func defaultReceiverName(name string) string {
	s, _ := utf8.DecodeRuneInString(name)
	return unexportedName(string(s))
}

// safeIdent returns an identifier that is safe to use (not a keyword,
// and not already used). want is the requested identifier; not is a
// list of identifiers that are already used.
func safeIdent(want string, not ...string) string {
	if token.IsKeyword(want) {
		return safeIdent("_"+want, not...)
	}

	for _, s := range not {
		if want == s {
			return safeIdent("_"+want, not...)
		}
	}

	return want
}

// unexportedName returns s with the first character replaced
// with its lower case version if it is upper case.
func unexportedName(s string) string {
	start, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}

	start = unicode.ToLower(start)
	return string(start) + s[size:]
}
