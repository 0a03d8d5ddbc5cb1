// Package rosetanalysis adapts roset's generation-time validation to the Go
// analysis protocol. It is useful to surface roset diagnostics in editors
// and linters without writing any file.
package rosetanalysis

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/packages"

	"github.com/chikaku/roset/internal/codefmt"
	rosetinternal "github.com/chikaku/roset/internal/roset"
)

// Analyzer validates the usage of roset directives in the package.
var Analyzer = &analysis.Analyzer{
	Name: "roset",
	Doc:  "linter for roset directive usage",
	Run:  run,
}

func run(pass *analysis.Pass) (any, error) {
	pkg := &packages.Package{
		Name:      pass.Pkg.Name(),
		PkgPath:   pass.Pkg.Path(),
		Types:     pass.Pkg,
		Fset:      pass.Fset,
		Syntax:    pass.Files,
		TypesInfo: pass.TypesInfo,
	}

	rs, err := rosetinternal.New(pkg)
	if err != nil {
		return nil, err
	}

	if err := rs.Build(); err != nil {
		// Unroll all errors and report them
		errs := []error{err}
		for len(errs) != 0 {
			err := errs[0]
			errs = errs[1:]

			if codeErr, ok := err.(*codefmt.CodeError); ok {
				pass.Report(analysis.Diagnostic{
					Pos:     codeErr.Pos(),
					End:     codeErr.End(),
					Message: codeErr.Unwrap().Error(),
				})
				continue
			}

			if u, ok := err.(interface{ Unwrap() []error }); ok {
				errs = append(errs, u.Unwrap()...)
			}
		}
	}

	return nil, nil
}
