// Package gen emits conversion code for parsed enums. One generator exists
// per derive; all of them write their fragments in variant declaration
// order.
package gen

import (
	"go/token"
	"go/types"
	"maps"
	"unicode"
	"unicode/utf8"

	"github.com/chikaku/roset/internal/codefmt"
	"github.com/chikaku/roset/internal/roset/parse"
)

// Generator emits the code of one derive for an enum.
type Generator interface {
	Derive() parse.Derive
	Generate(w *codefmt.Writer, e *parse.Enum) error
}

// New creates the generator for the derive. ns is the namespace of the
// target package; every emitted function clones it for its local names.
func New(p *parse.Parser, ns codefmt.NS, d parse.Derive) Generator {
	switch d {
	case parse.DeriveEnumFrom:
		return &enumFrom{p: p, ns: ns}
	case parse.DeriveEnumFromWrapped:
		return &enumFromWrapped{p: p, ns: ns}
	case parse.DeriveEnumIntoWrapped:
		return &enumIntoWrapped{p: p, ns: ns}
	}
	panic("unknown derive")
}

// title upper-cases the first rune of an identifier.
func title(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// wrappedName returns the identifier chunk naming a wrapped field, e.g.
// "Int32" for an embedded int32.
func wrappedName(f *types.Var) string {
	return title(codefmt.NormalizeName(f.Name()))
}

// parseFuncName returns the name of the parse function of an enum. The name
// keeps the visibility of the enum: ParseAnimal for Animal, parseAnimal for
// animal.
func parseFuncName(e *parse.Enum) string {
	name := e.Obj.Name()
	if token.IsExported(name) {
		return "Parse" + name
	}
	return "parse" + title(name)
}

// fromFuncName returns the name of the construct-from-value function of a
// variant, e.g. NumberFromInt32.
func fromFuncName(e *parse.Enum, wrapped *types.Var) string {
	return e.Obj.Name() + "From" + wrappedName(wrapped)
}

// toFuncName returns the name of the convert-to-value function of a
// variant, e.g. NumberToInt32.
func toFuncName(e *parse.Enum, wrapped *types.Var) string {
	return e.Obj.Name() + "To" + wrappedName(wrapped)
}

// amp returns the address operator for pointer-receiver variants.
func amp(v *parse.Variant) string {
	if v.Ptr {
		return "&"
	}
	return ""
}

// star returns the pointer marker for pointer-receiver variants.
func star(v *parse.Variant) string {
	if v.Ptr {
		return "*"
	}
	return ""
}

// writeFromFunc writes the construct-from-value function of one variant:
// constructing the enum from a value of the wrapped type yields this
// variant holding the value.
func writeFromFunc(w *codefmt.Writer, ns codefmt.NS, e *parse.Enum, v *parse.Variant, wrapped *types.Var) {
	fw := w.WithNS(maps.Clone(ns))
	varV := fw.Name("v")

	fw.Printf("func %s(%s %t) %o {\n", fromFuncName(e, wrapped), varV, wrapped.Type(), e.Obj)
	fw.Printf("\treturn %s%o{%s}\n", amp(v), v.Obj, varV)
	fw.Printf("}\n\n")
}
