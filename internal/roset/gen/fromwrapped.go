package gen

import (
	"errors"
	"go/types"

	"github.com/chikaku/roset/internal/codefmt"
	"github.com/chikaku/roset/internal/roset/parse"
)

// enumFromWrapped emits a construct-from-value function for every variant.
// Unlike the marker mode of EnumFrom there is no opt-out: every variant
// must wrap exactly one embedded field.
type enumFromWrapped struct {
	p  *parse.Parser
	ns codefmt.NS
}

func (g *enumFromWrapped) Derive() parse.Derive { return parse.DeriveEnumFromWrapped }

func (g *enumFromWrapped) Generate(w *codefmt.Writer, e *parse.Enum) error {
	wrappeds, err := wrapAll(g.p, e, parse.DeriveEnumFromWrapped)
	if err != nil {
		return err
	}
	if len(e.Variants) == 0 {
		return nil
	}

	w.Printf("// roset: EnumFromWrapped for %o\n\n", e.Obj)
	for i, v := range e.Variants {
		writeFromFunc(w, g.ns, e, v, wrappeds[i])
	}
	return nil
}

// wrapAll extracts the wrapped field of every variant, collecting the shape
// errors of all variants before failing.
func wrapAll(p *parse.Parser, e *parse.Enum, d parse.Derive) ([]*types.Var, error) {
	wrappeds := make([]*types.Var, len(e.Variants))

	var errs error
	for i, v := range e.Variants {
		wrapped, err := v.Wrapped(p, e, d)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		wrappeds[i] = wrapped
	}
	if errs != nil {
		return nil, errs
	}
	return wrappeds, nil
}
