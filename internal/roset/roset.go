package rosetinternal

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"io"

	"golang.org/x/tools/go/packages"

	"github.com/chikaku/roset/internal/codefmt"
	"github.com/chikaku/roset/internal/roset/gen"
	"github.com/chikaku/roset/internal/roset/parse"
)

// Roset generates conversion code for the target package. Call [Roset.Build]
// and then [Roset.Generate] to get the generated code. All potential errors
// are returned by [Roset.Build]. Once [Roset.Build] succeeds,
// [Roset.Generate] never fails.
type Roset struct {
	p   *parse.Parser
	ns  codefmt.NS
	buf *bytes.Buffer
	w   *codefmt.Writer

	enums []*parse.Enum
}

// New creates a new [Roset] for the given package. If the package does not
// satisfy the requirements, an error is returned. The package must have its
// Syntax, Types and TypesInfo. And it must not have any errors.
func New(pkg *packages.Package) (*Roset, error) {
	parser, err := parse.New(pkg)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	return &Roset{
		p:   parser,
		ns:  codefmt.NewNS(pkg.Types.Scope()),
		buf: &buf,
		w:   codefmt.NewWriter(&buf, pkg),
	}, nil
}

// Build prepares code generation by parsing enums and running their derives
// in directive order. All potential errors are returned by this method; it
// keeps going after an error to collect every diagnostic of the package.
// Either the whole package generates or nothing does. It must be called
// before [Roset.Generate].
func (rs *Roset) Build() error {
	enums, errs := rs.p.ParseEnums()
	rs.enums = enums
	if errs != nil {
		return errs
	}

	for _, enum := range rs.enums {
		for _, derive := range enum.Derives {
			g := gen.New(rs.p, rs.ns, derive)
			if err := g.Generate(rs.w, enum); err != nil {
				errs = errors.Join(errs, err)
			}
		}
	}
	return errs
}

// Generate generates conversion code for the package. It must be called
// after [Roset.Build] succeeds. It returns nil if no enum asked for code.
func (rs *Roset) Generate() []byte {
	if rs.buf.Len() == 0 {
		return nil
	}
	return rs.frameCode()
}

func (rs *Roset) frameCode() []byte {
	// Prepend header code
	versionSuffix := ""
	if Version != "" {
		versionSuffix = "@" + Version
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "//go:build !roset\n")
	fmt.Fprintf(&buf, "// Code generated by github.com/chikaku/roset%s. DO NOT EDIT.\n", versionSuffix)
	fmt.Fprintf(&buf, "package %s\n", rs.p.Pkg().Name)

	if len(rs.w.Imports()) != 0 {
		fmt.Fprintf(&buf, "import (\n")
		for alias, imp := range rs.w.Imports() {
			if imp.HasAlias {
				fmt.Fprintf(&buf, "%s %q\n", alias, imp.Path())
			} else {
				fmt.Fprintf(&buf, "%q\n", imp.Path())
			}
		}
		fmt.Fprintf(&buf, ")\n")
	}

	_, _ = io.Copy(&buf, rs.buf)
	code := buf.Bytes()

	// Apply gofmt if succeeded
	if fmtCode, err := format.Source(code); err == nil {
		code = fmtCode
	}
	return code
}
