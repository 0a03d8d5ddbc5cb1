package parse

import (
	"go/types"

	"github.com/chikaku/roset/internal/codefmt"
)

// FieldsKind discriminates the field shape of a variant struct.
type FieldsKind int

const (
	// FieldsUnit is a struct with no fields.
	FieldsUnit FieldsKind = iota

	// FieldsEmbedded is a struct whose fields are all embedded.
	FieldsEmbedded

	// FieldsNamed is a struct with at least one named field.
	FieldsNamed
)

func (k FieldsKind) String() string {
	switch k {
	case FieldsUnit:
		return "unit"
	case FieldsEmbedded:
		return "embedded"
	case FieldsNamed:
		return "named"
	}
	return "unknown"
}

// Fields is the field shape of a variant struct.
type Fields struct {
	Kind FieldsKind
	Vars []*types.Var
}

// FieldsOf inspects a struct type and classifies its shape. A struct mixing
// named and embedded fields counts as named.
func FieldsOf(st *types.Struct) Fields {
	if st.NumFields() == 0 {
		return Fields{Kind: FieldsUnit}
	}

	f := Fields{Kind: FieldsEmbedded}
	for i := range st.NumFields() {
		v := st.Field(i)
		if !v.Anonymous() {
			f.Kind = FieldsNamed
		}
		f.Vars = append(f.Vars, v)
	}
	return f
}

// Wrapped returns the variant's single embedded field. Every other shape is
// an error naming the enum, the generator that required the field, and the
// variant.
func (v *Variant) Wrapped(p *Parser, e *Enum, d Derive) (*types.Var, error) {
	switch v.Fields.Kind {
	case FieldsEmbedded:
		if len(v.Fields.Vars) == 1 {
			return v.Fields.Vars[0], nil
		}
		return nil, codefmt.Errorf(p, v, "%o: cannot use %s: variant %o has multiple embedded fields; exactly one is required", e.Obj, d, v.Obj)

	case FieldsUnit:
		return nil, codefmt.Errorf(p, v, "%o: cannot use %s: variant %o has no fields; exactly one embedded field is required", e.Obj, d, v.Obj)

	case FieldsNamed:
		return nil, codefmt.Errorf(p, v, "%o: cannot use %s: variant %o has named fields; exactly one embedded field is required", e.Obj, d, v.Obj)
	}

	panic("unreachable")
}
