package gen

import (
	"maps"

	"go/types"

	"github.com/chikaku/roset/internal/codefmt"
	"github.com/chikaku/roset/internal/roset/parse"
)

// enumIntoWrapped emits a fallible convert-to-value function for every
// variant. The conversion succeeds only when the dynamic variant matches;
// otherwise it yields the zero value and false.
//
// Two variants wrapping the same type produce two functions with the same
// name. The resulting compile error in the generated code is on the enum's
// design, not detected here.
type enumIntoWrapped struct {
	p  *parse.Parser
	ns codefmt.NS
}

func (g *enumIntoWrapped) Derive() parse.Derive { return parse.DeriveEnumIntoWrapped }

func (g *enumIntoWrapped) Generate(w *codefmt.Writer, e *parse.Enum) error {
	wrappeds, err := wrapAll(g.p, e, parse.DeriveEnumIntoWrapped)
	if err != nil {
		return err
	}
	if len(e.Variants) == 0 {
		return nil
	}

	w.Printf("// roset: EnumIntoWrapped for %o\n\n", e.Obj)
	for i, v := range e.Variants {
		g.writeToFunc(w, e, v, wrappeds[i])
	}
	return nil
}

func (g *enumIntoWrapped) writeToFunc(w *codefmt.Writer, e *parse.Enum, v *parse.Variant, wrapped *types.Var) {
	fw := w.WithNS(maps.Clone(g.ns))
	varE := fw.Name("e")
	varV := fw.Name("v")
	varOK := fw.Name("ok")
	varZero := fw.Name("zero")

	fw.Printf("func %s(%s %o) (%t, bool) {\n", toFuncName(e, wrapped), varE, e.Obj, wrapped.Type())
	fw.Printf("\tif %s, %s := %s.(%s%o); %s {\n", varV, varOK, varE, star(v), v.Obj, varOK)
	fw.Printf("\t\treturn %s.%s, true\n", varV, wrapped.Name())
	fw.Printf("\t}\n")
	fw.Printf("\tvar %s %t\n", varZero, wrapped.Type())
	fw.Printf("\treturn %s, false\n", varZero)
	fw.Printf("}\n\n")
}
