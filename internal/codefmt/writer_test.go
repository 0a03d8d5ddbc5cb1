package codefmt_test

import (
	"bytes"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"

	"github.com/chikaku/roset/internal/codefmt"
)

func newPkg(name, path string) *packages.Package {
	tpkg := types.NewPackage(path, name)
	return &packages.Package{
		Name:    name,
		PkgPath: path,
		Fset:    token.NewFileSet(),
		Types:   tpkg,
	}
}

func namedIn(pkg *types.Package, name string) *types.Named {
	obj := types.NewTypeName(token.NoPos, pkg, name, nil)
	named := types.NewNamed(obj, types.NewStruct(nil, nil), nil)
	pkg.Scope().Insert(obj)
	return named
}

func TestWriterPrintf(t *testing.T) {
	var buf bytes.Buffer
	w := codefmt.NewWriter(&buf, newPkg("a", "example.com/a"))

	_, err := w.Printf("var x int\n")
	require.NoError(t, err)
	assert.Equal(t, "var x int\n", buf.String())
	assert.Empty(t, w.Imports())
}

func TestWriterImportsForeignType(t *testing.T) {
	a := newPkg("a", "example.com/a")
	b := types.NewPackage("example.com/b", "b")
	typ := namedIn(b, "T")

	var buf bytes.Buffer
	w := codefmt.NewWriter(&buf, a)

	w.Printf("var x %t\n", typ)
	assert.Equal(t, "var x b.T\n", buf.String())

	imports := w.Imports()
	require.Len(t, imports, 1)
	assert.Equal(t, "example.com/b", imports["b"].Path())
	assert.False(t, imports["b"].HasAlias)
}

func TestWriterSamePackageNotImported(t *testing.T) {
	a := newPkg("a", "example.com/a")
	typ := namedIn(a.Types, "T")

	var buf bytes.Buffer
	w := codefmt.NewWriter(&buf, a)

	w.Printf("var x %t\n", typ)
	assert.Equal(t, "var x T\n", buf.String())
	assert.Empty(t, w.Imports())
}

func TestWriterImportDedup(t *testing.T) {
	a := newPkg("a", "example.com/a")
	b := types.NewPackage("example.com/b", "b")
	typ := namedIn(b, "T")

	var buf bytes.Buffer
	w := codefmt.NewWriter(&buf, a)

	w.Printf("var x %t\n", typ)
	w.Printf("var y %t\n", typ)
	assert.Len(t, w.Imports(), 1)
}

func TestWriterImportConflict(t *testing.T) {
	a := newPkg("a", "example.com/a")
	// A top-level declaration named b shadows the package name.
	a.Types.Scope().Insert(types.NewVar(token.NoPos, a.Types, "b", types.Typ[types.Int]))

	b := types.NewPackage("example.com/b", "b")
	typ := namedIn(b, "T")

	var buf bytes.Buffer
	w := codefmt.NewWriter(&buf, a)

	w.Printf("var x %t\n", typ)
	assert.Equal(t, "var x b2.T\n", buf.String())

	imports := w.Imports()
	require.Len(t, imports, 1)
	assert.Equal(t, "example.com/b", imports["b2"].Path())
	assert.True(t, imports["b2"].HasAlias)
}

func TestWriterWithNS(t *testing.T) {
	a := newPkg("a", "example.com/a")
	b := types.NewPackage("example.com/b", "b")
	typ := namedIn(b, "T")

	var buf bytes.Buffer
	w := codefmt.NewWriter(&buf, a)

	ns := codefmt.NS{"v": {}}
	fw := w.WithNS(ns)
	assert.NotEqual(t, "v", fw.Name("v"))

	// The clone shares the import set with the original writer.
	fw.Printf("var x %t\n", typ)
	assert.Len(t, w.Imports(), 1)
}
