package rosetinternal_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"

	rosetinternal "github.com/chikaku/roset/internal/roset"
)

func load(t *testing.T, code string) *packages.Package {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "p.go", code, parser.ParseComments)
	require.NoError(t, err)

	info := &types.Info{
		Types: make(map[ast.Expr]types.TypeAndValue),
		Defs:  make(map[*ast.Ident]types.Object),
		Uses:  make(map[*ast.Ident]types.Object),
	}
	tpkg, err := (&types.Config{}).Check("example.com/p", fset, []*ast.File{file}, info)
	require.NoError(t, err)

	return &packages.Package{
		Name:      "p",
		PkgPath:   "example.com/p",
		Fset:      fset,
		Syntax:    []*ast.File{file},
		Types:     tpkg,
		TypesInfo: info,
	}
}

func TestGenerate(t *testing.T) {
	rs, err := rosetinternal.New(load(t, `
package p

//roset:derive EnumFrom
type Animal interface{ isAnimal() }

//roset:enum_from str="🐱"
type Cat struct{}

//roset:enum_from str="🐶"
type Dog struct{}

func (Cat) isAnimal() {}
func (Dog) isAnimal() {}

//roset:derive EnumFromWrapped, EnumIntoWrapped
type Number interface{ isNumber() }

type Integer struct{ int32 }
type Float struct{ float64 }

func (Integer) isNumber() {}
func (Float) isNumber()   {}
`))
	require.NoError(t, err)
	require.NoError(t, rs.Build())

	code := rs.Generate()
	require.NotNil(t, code)

	out := string(code)
	assert.Contains(t, out, "//go:build !roset")
	assert.Contains(t, out, "DO NOT EDIT")
	assert.Contains(t, out, "package p")
	assert.Contains(t, out, "func ParseAnimal(s string) (Animal, bool) {")
	assert.Contains(t, out, "func NumberFromInt32(v int32) Number {")
	assert.Contains(t, out, "func NumberToFloat64(e Number) (float64, bool) {")

	// The framed output must be a valid Go source file.
	fset := token.NewFileSet()
	_, err = parser.ParseFile(fset, "roset_gen.go", code, parser.ParseComments)
	assert.NoError(t, err)
}

// TestGenerateTypeChecks type-checks the generated file together with its
// source package, so the output is known to compile, not just to parse.
func TestGenerateTypeChecks(t *testing.T) {
	const src = `
package p

//roset:derive EnumFrom
type Animal interface{ isAnimal() }

//roset:enum_from str="🐱"
type Cat struct{}

//roset:enum_from str="🐶"
type Dog struct{}

func (Cat) isAnimal() {}
func (Dog) isAnimal() {}

type Complex struct {
	Real float64
	Imag float64
}

//roset:derive EnumFrom
type Number interface{ isNumber() }

//roset:enum_from inner
type Integer struct{ int64 }

//roset:enum_from inner
type Cmplx struct{ Complex }

func (Integer) isNumber() {}
func (*Cmplx) isNumber()  {}

//roset:derive EnumFromWrapped, EnumIntoWrapped
type Scalar interface{ isScalar() }

type Bool struct{ bool }
type Text struct{ string }

func (Bool) isScalar() {}
func (Text) isScalar() {}
`

	rs, err := rosetinternal.New(load(t, src))
	require.NoError(t, err)
	require.NoError(t, rs.Build())

	code := rs.Generate()
	require.NotNil(t, code)

	fset := token.NewFileSet()
	srcFile, err := parser.ParseFile(fset, "p.go", src, parser.ParseComments)
	require.NoError(t, err)
	genFile, err := parser.ParseFile(fset, "roset_gen.go", code, parser.ParseComments)
	require.NoError(t, err)

	_, err = (&types.Config{}).Check("example.com/p", fset, []*ast.File{srcFile, genFile}, nil)
	assert.NoError(t, err)
}

func TestGenerateDeriveOrder(t *testing.T) {
	rs, err := rosetinternal.New(load(t, `
package p

//roset:derive EnumIntoWrapped, EnumFromWrapped
type Number interface{ isNumber() }

type Integer struct{ int32 }

func (Integer) isNumber() {}
`))
	require.NoError(t, err)
	require.NoError(t, rs.Build())

	out := string(rs.Generate())
	to := "func NumberToInt32"
	from := "func NumberFromInt32"
	assert.Contains(t, out, to)
	assert.Contains(t, out, from)

	// Derives run in directive order.
	assert.Less(t, strings.Index(out, to), strings.Index(out, from))
}

func TestGenerateNothing(t *testing.T) {
	rs, err := rosetinternal.New(load(t, `
package p

type Plain struct{ X int }
`))
	require.NoError(t, err)
	require.NoError(t, rs.Build())
	assert.Nil(t, rs.Generate())
}

func TestBuildCollectsErrors(t *testing.T) {
	rs, err := rosetinternal.New(load(t, `
package p

//roset:derive EnumFromWrapped
type Shape interface{ isShape() }

type Empty struct{}
type Point struct{ X, Y int }

func (Empty) isShape() {}
func (Point) isShape() {}
`))
	require.NoError(t, err)

	err = rs.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "variant Empty has no fields")
	assert.Contains(t, err.Error(), "variant Point has named fields")
}

func TestBuildParseErrors(t *testing.T) {
	rs, err := rosetinternal.New(load(t, `
package p

//roset:derive EnumSideways
type Animal interface{ isAnimal() }

type Cat struct{}

func (Cat) isAnimal() {}
`))
	require.NoError(t, err)

	err = rs.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown generator "EnumSideways"`)
}
