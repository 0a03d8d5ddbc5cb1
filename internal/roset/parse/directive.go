package parse

import (
	"go/ast"
	"go/token"
	"go/types"
	"iter"
	"strings"
)

// Prefix is the comment prefix of all roset directives.
const Prefix = "//roset:"

// Directive is one "//roset:NAME ARGS" comment line attached to a type
// declaration.
type Directive struct {
	Name string
	Args string
	pos  token.Pos
}

func (d Directive) Pos() token.Pos { return d.pos }

// directivesOf extracts directives from the given comment groups, in order.
func directivesOf(groups ...*ast.CommentGroup) []Directive {
	var dirs []Directive
	for _, group := range groups {
		if group == nil {
			continue
		}
		for _, c := range group.List {
			if !strings.HasPrefix(c.Text, Prefix) {
				continue
			}

			rest := strings.TrimPrefix(c.Text, Prefix)
			name, args, _ := strings.Cut(rest, " ")
			dirs = append(dirs, Directive{
				Name: name,
				Args: strings.TrimSpace(args),
				pos:  c.Pos(),
			})
		}
	}
	return dirs
}

// splitList yields the non-empty, space-trimmed items of a comma-separated
// directive argument.
func splitList(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, item := range strings.Split(s, ",") {
			item = strings.TrimSpace(item)
			if item == "" {
				continue
			}
			if !yield(item) {
				return
			}
		}
	}
}

// typeDirectives is a type declaration together with its directives.
type typeDirectives struct {
	obj  *types.TypeName
	dirs []Directive
}

// scanDirectives collects every type declaration of the package that carries
// at least one roset directive, in declaration order. Directives may be
// written in the doc comment of the type or of its enclosing declaration
// group.
func (p *Parser) scanDirectives() []typeDirectives {
	var decls []typeDirectives
	for _, file := range p.pkg.Syntax {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}

			for _, spec := range gen.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}

				dirs := directivesOf(gen.Doc, ts.Doc)
				if len(dirs) == 0 {
					continue
				}

				obj, ok := p.pkg.TypesInfo.Defs[ts.Name].(*types.TypeName)
				if !ok {
					continue
				}

				decls = append(decls, typeDirectives{obj: obj, dirs: dirs})
			}
		}
	}
	return decls
}
