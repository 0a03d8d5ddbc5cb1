package parse

import (
	"go/types"
	"regexp"
	"strconv"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/chikaku/roset/internal/codefmt"
)

// AnnotationKind discriminates the two enum_from annotation forms.
type AnnotationKind int

const (
	// AnnotStr is the string tag form: enum_from str="...".
	AnnotStr AnnotationKind = iota

	// AnnotInner is the presence-only marker form: enum_from inner.
	AnnotInner
)

// Annotation is one resolved enum_from annotation of a variant.
type Annotation struct {
	Kind AnnotationKind
	Tag  string
}

// Annotations is the resolved annotation table of an enum. At most one
// annotation is recorded per variant, in variant declaration order.
type Annotations struct {
	byVariant *linkedhashmap.Map
	strMode   bool
}

// StrMode reports whether any variant of the enum carries a string tag. In
// that mode every variant carries one; [ParseAnnotations] guarantees it.
func (a *Annotations) StrMode() bool { return a.strMode }

// Of returns the annotation of the variant, if any.
func (a *Annotations) Of(v *Variant) (Annotation, bool) {
	value, ok := a.byVariant.Get(v.Obj)
	if !ok {
		return Annotation{}, false
	}
	return value.(Annotation), true
}

var reStr = regexp.MustCompile(`^str\s*=\s*(".*")$`)

// parseAnnotation resolves one enum_from directive into an annotation.
func parseAnnotation(p *Parser, obj *types.TypeName, dir Directive) (Annotation, error) {
	if dir.Args == "inner" {
		return Annotation{Kind: AnnotInner}, nil
	}

	if m := reStr.FindStringSubmatch(dir.Args); m != nil {
		tag, err := strconv.Unquote(m[1])
		if err == nil {
			return Annotation{Kind: AnnotStr, Tag: tag}, nil
		}
	}

	return Annotation{}, codefmt.Errorf(p, obj, `invalid enum_from annotation %q on %o; expected str="..." or inner`, dir.Args, obj)
}

// ParseAnnotations folds over the variants of the enum in declaration order
// and resolves their enum_from annotations.
//
// Any string tag locks the enum into string-tag mode: every variant, before
// and after, must then carry a string tag too, and the first variant
// breaking the rule is reported. Without any string tag, inner markers are
// independent per variant.
func ParseAnnotations(p *Parser, e *Enum) (*Annotations, error) {
	a := &Annotations{byVariant: linkedhashmap.New()}

	for _, v := range e.Variants {
		seen := false
		for _, dir := range v.annots {
			annot, err := parseAnnotation(p, v.Obj, dir)
			if err != nil {
				return nil, err
			}
			if seen {
				return nil, codefmt.Errorf(p, v, "%o has multiple enum_from annotations; at most one is allowed", v.Obj)
			}
			seen = true

			if annot.Kind == AnnotStr {
				a.strMode = true
			}
			a.byVariant.Put(v.Obj, annot)
		}
	}

	if !a.strMode {
		return a, nil
	}

	for _, v := range e.Variants {
		if annot, ok := a.Of(v); ok && annot.Kind == AnnotStr {
			continue
		}
		return nil, codefmt.Errorf(p, v, "%o must carry enum_from str; string tags must cover every variant of %o once any variant uses one", v.Obj, e.Obj)
	}

	return a, nil
}
