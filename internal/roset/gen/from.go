package gen

import (
	"errors"
	"go/types"
	"maps"

	"github.com/chikaku/roset/internal/codefmt"
	"github.com/chikaku/roset/internal/roset/parse"
)

// enumFrom is the annotation-driven generator. In string-tag mode it emits
// a parse function and a String method per variant; in marker mode it emits
// a constructor for every inner-marked variant.
type enumFrom struct {
	p  *parse.Parser
	ns codefmt.NS
}

func (g *enumFrom) Derive() parse.Derive { return parse.DeriveEnumFrom }

func (g *enumFrom) Generate(w *codefmt.Writer, e *parse.Enum) error {
	annots, err := parse.ParseAnnotations(g.p, e)
	if err != nil {
		return err
	}

	if annots.StrMode() {
		w.Printf("// roset: EnumFrom string tags for %o\n\n", e.Obj)
		g.writeParse(w, e, annots)
		g.writeStrings(w, e, annots)
		return nil
	}

	// Marker mode. Validate every marked variant before emitting anything
	// so that a broken enum reports all of its shape errors at once.
	var marked []*parse.Variant
	var wrappeds []*types.Var
	var errs error
	for _, v := range e.Variants {
		annot, ok := annots.Of(v)
		if !ok || annot.Kind != parse.AnnotInner {
			continue
		}

		wrapped, err := v.Wrapped(g.p, e, parse.DeriveEnumFrom)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		marked = append(marked, v)
		wrappeds = append(wrappeds, wrapped)
	}
	if errs != nil {
		return errs
	}
	if len(marked) == 0 {
		return nil
	}

	w.Printf("// roset: EnumFrom inner markers for %o\n\n", e.Obj)
	for i, v := range marked {
		writeFromFunc(w, g.ns, e, v, wrappeds[i])
	}
	return nil
}

// writeParse writes the parse function: one exact-match comparison per
// variant, tried in declaration order, first match wins. An unmatched input
// reports a plain false.
func (g *enumFrom) writeParse(w *codefmt.Writer, e *parse.Enum, annots *parse.Annotations) {
	fw := w.WithNS(maps.Clone(g.ns))
	varS := fw.Name("s")

	fw.Printf("func %s(%s string) (%o, bool) {\n", parseFuncName(e), varS, e.Obj)
	for _, v := range e.Variants {
		annot, _ := annots.Of(v)
		fw.Printf("\tif %s == %q {\n", varS, annot.Tag)
		fw.Printf("\t\treturn %s%o{}, true\n", amp(v), v.Obj)
		fw.Printf("\t}\n")
	}
	fw.Printf("\treturn nil, false\n")
	fw.Printf("}\n\n")
}

// writeStrings writes the inverse mapping: a String method per variant
// returning its literal tag.
func (g *enumFrom) writeStrings(w *codefmt.Writer, e *parse.Enum, annots *parse.Annotations) {
	for _, v := range e.Variants {
		annot, _ := annots.Of(v)
		w.Printf("func (%s%o) String() string { return %q }\n", star(v), v.Obj, annot.Tag)
	}
	w.Printf("\n")
}
