package parse

import (
	"errors"
	"go/token"
	"go/types"
	"slices"

	"github.com/emirpasic/gods/sets/linkedhashset"

	"github.com/chikaku/roset/internal/codefmt"
)

// Derive identifies one of the code generators.
type Derive int

const (
	DeriveEnumFrom Derive = iota
	DeriveEnumFromWrapped
	DeriveEnumIntoWrapped
)

func (d Derive) String() string {
	switch d {
	case DeriveEnumFrom:
		return "EnumFrom"
	case DeriveEnumFromWrapped:
		return "EnumFromWrapped"
	case DeriveEnumIntoWrapped:
		return "EnumIntoWrapped"
	}
	return "unknown"
}

// Enum is an interface sum type annotated with derive directives. Variants
// are the struct types of the package implementing the interface, in
// declaration order.
type Enum struct {
	Obj      *types.TypeName
	Iface    *types.Interface
	Derives  []Derive
	Variants []*Variant
}

func (e *Enum) Pos() token.Pos { return e.Obj.Pos() }

// Variant is one alternative of an enum.
type Variant struct {
	Obj    *types.TypeName
	Fields Fields

	// Ptr indicates that the variant implements the enum interface with a
	// pointer receiver, so it must be constructed and asserted as a pointer.
	Ptr bool

	annots []Directive
}

func (v *Variant) Pos() token.Pos { return v.Obj.Pos() }

// ParseEnums collects the derive-annotated enums of the package in
// declaration order. It keeps scanning after an error to report as many
// problems as possible at once.
func (p *Parser) ParseEnums() ([]*Enum, error) {
	var errs error

	annots := make(map[*types.TypeName][]Directive)
	var enums []*Enum

	for _, td := range p.scanDirectives() {
		derives, rest, err := parseDerives(p, td)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		if len(rest) != 0 {
			// Keep enum_from annotations for variant resolution below.
			annots[td.obj] = rest
		}

		if len(derives) == 0 {
			continue
		}

		enum, err := p.assertEnum(td.obj, derives)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		enums = append(enums, enum)
	}

	if len(enums) != 0 {
		p.discoverVariants(enums, annots)
	}

	return enums, errs
}

// parseDerives splits the directives of a type declaration into derives and
// the remaining enum_from annotations. Unknown directive names, unknown
// generator names, and empty derive lists are errors.
func parseDerives(p *Parser, td typeDirectives) ([]Derive, []Directive, error) {
	var errs error

	set := linkedhashset.New()
	var rest []Directive

	for _, dir := range td.dirs {
		switch dir.Name {
		case "derive":
			if dir.Args == "" {
				err := codefmt.Errorf(p, td.obj, "roset:derive on %o needs a generator name", td.obj)
				errs = errors.Join(errs, err)
				continue
			}
			for name := range splitList(dir.Args) {
				switch name {
				case "EnumFrom":
					set.Add(DeriveEnumFrom)
				case "EnumFromWrapped":
					set.Add(DeriveEnumFromWrapped)
				case "EnumIntoWrapped":
					set.Add(DeriveEnumIntoWrapped)
				default:
					err := codefmt.Errorf(p, td.obj, "unknown generator %q for roset:derive on %o", name, td.obj)
					errs = errors.Join(errs, err)
				}
			}

		case "enum_from":
			rest = append(rest, dir)

		default:
			err := codefmt.Errorf(p, td.obj, "unknown directive roset:%s on %o", dir.Name, td.obj)
			errs = errors.Join(errs, err)
		}
	}
	if errs != nil {
		return nil, nil, errs
	}

	var derives []Derive
	set.Each(func(_ int, value any) {
		derives = append(derives, value.(Derive))
	})
	return derives, rest, nil
}

// assertEnum checks that the derive-annotated type is an enum: a
// non-generic named interface with at least one method.
func (p *Parser) assertEnum(obj *types.TypeName, derives []Derive) (*Enum, error) {
	named, ok := obj.Type().(*types.Named)
	if !ok {
		return nil, codefmt.Errorf(p, obj, "%o must be an enum interface to derive %s", obj, derives[0])
	}
	if named.TypeParams().Len() != 0 {
		return nil, codefmt.Errorf(p, obj, "%o is generic; generic enums are not supported", obj)
	}

	iface, ok := named.Underlying().(*types.Interface)
	if !ok {
		return nil, codefmt.Errorf(p, obj, "%o must be an enum interface to derive %s", obj, derives[0])
	}
	if iface.NumMethods() == 0 {
		return nil, codefmt.Errorf(p, obj, "%o has no methods; an enum interface requires at least one", obj)
	}

	return &Enum{Obj: obj, Iface: iface, Derives: derives}, nil
}

// discoverVariants finds the variants of every enum: named, non-generic
// struct types of the package assertable to the enum interface by value or
// by pointer. Variants keep their declaration order.
func (p *Parser) discoverVariants(enums []*Enum, annots map[*types.TypeName][]Directive) {
	scope := p.pkg.Types.Scope()
	for _, name := range scope.Names() {
		obj, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || obj.IsAlias() {
			continue
		}

		named, ok := obj.Type().(*types.Named)
		if !ok || named.TypeParams().Len() != 0 {
			continue
		}

		st, ok := named.Underlying().(*types.Struct)
		if !ok {
			continue
		}

		for _, enum := range enums {
			variant := &Variant{
				Obj:    obj,
				Fields: FieldsOf(st),
				annots: annots[obj],
			}

			if types.AssertableTo(enum.Iface, named) {
				// Value receiver implements the interface
			} else if types.AssertableTo(enum.Iface, types.NewPointer(named)) {
				// Pointer receiver implements the interface
				variant.Ptr = true
			} else {
				continue
			}

			enum.Variants = append(enum.Variants, variant)
		}
	}

	for _, enum := range enums {
		slices.SortFunc(enum.Variants, func(a, b *Variant) int {
			if a.Pos() < b.Pos() {
				return -1
			}
			if a.Pos() > b.Pos() {
				return 1
			}
			return 0
		})
	}

	slices.SortFunc(enums, func(a, b *Enum) int {
		if a.Pos() < b.Pos() {
			return -1
		}
		if a.Pos() > b.Pos() {
			return 1
		}
		return 0
	})
}
