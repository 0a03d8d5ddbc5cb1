package codefmt

import (
	"fmt"
	"go/token"
	"go/types"
	"io"

	"golang.org/x/tools/go/packages"
)

type (
	Pkger    interface{ Pkg() *packages.Package }
	Poser    interface{ Pos() token.Pos }
	Ender    interface{ End() token.Pos }
	Objecter interface{ Object() types.Object }
	Typer    interface{ Type() types.Type }
)

func (f Formatter) wrapPrintfArgs(args []any) []any {
	for i, arg := range args {
		switch arg := arg.(type) {
		case token.Pos, token.Position:
			args[i] = formatArg{arg, f}
		case types.Object, types.Type:
			args[i] = formatArg{arg, f}
		case Poser, Objecter, Typer:
			args[i] = formatArg{arg, f}
		}
	}
	return args
}

type formatArg struct {
	x   any
	fmt Formatter
}

func (f formatArg) Object() types.Object {
	switch x := f.x.(type) {
	case types.Object:
		return x
	case Objecter:
		return x.Object()
	case types.Type:
		if named, ok := x.(*types.Named); ok {
			return named.Obj()
		}
	case Typer:
		if named, ok := x.Type().(*types.Named); ok {
			return named.Obj()
		}
	}
	return nil
}

func (f formatArg) Type() types.Type {
	switch x := f.x.(type) {
	case types.Type:
		return x
	case Typer:
		return x.Type()
	}
	if obj := f.Object(); obj != nil {
		return obj.Type()
	}
	return nil
}

func (f formatArg) Position() *token.Position {
	switch x := f.x.(type) {
	case token.Position:
		return &x
	case token.Pos:
		p := f.fmt.Fset.Position(x)
		return &p
	case Poser:
		p := f.fmt.Fset.Position(x.Pos())
		return &p
	}
	if obj := f.Object(); obj != nil {
		p := f.fmt.Fset.Position(obj.Pos())
		return &p
	}
	return nil
}

// Format implements fmt.Formatter interface.
//
// Supported verbs:
//
//	%o: types.Object (e.g., *types.TypeName, *types.Func) - short form
//	%t: types.Type - short form
//	%b: token.Position - file:line:column form
//
// For other verbs, it falls back to the default formatting of fmt package.
func (f formatArg) Format(s fmt.State, verb rune) {
	obj := f.Object()
	typ := f.Type()
	pos := f.Position()
	switch verb {
	case 'o':
		if obj == nil {
			fmt.Fprintf(s, "[%%o cannot format %T]", f.x)
			return
		}
		_, _ = s.Write([]byte(f.fmt.Obj(obj)))

	case 't':
		if typ == nil {
			fmt.Fprintf(s, "[%%t cannot format %T]", f.x)
			return
		}
		_, _ = s.Write([]byte(f.fmt.Type(typ)))

	case 'b':
		if pos == nil {
			fmt.Fprintf(s, "[%%b cannot format %T]", f.x)
			return
		}
		_, _ = s.Write([]byte(FormatPosition(*pos)))

	default:
		fmt.Fprintf(s, fmt.FormatString(s, verb), f.x)
	}
}

func (f Formatter) Sprintf(format string, args ...any) string {
	args = f.wrapPrintfArgs(args)
	return fmt.Sprintf(format, args...)
}

func (f Formatter) Fprintf(w io.Writer, format string, args ...any) (int, error) {
	args = f.wrapPrintfArgs(args)
	return fmt.Fprintf(w, format, args...)
}
