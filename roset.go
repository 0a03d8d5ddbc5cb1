// Package roset documents the directives for deriving conversion code on Go
// sum types.
//
// A sum type ("enum") is a named interface with at least one method, usually
// an unexported marker method. Its variants are struct types in the same
// package that implement the interface. A variant wrapping a single value
// declares that value as its only embedded field:
//
//	//roset:derive EnumFromWrapped
//	//roset:derive EnumIntoWrapped
//	type Number interface{ isNumber() }
//
//	type Integer struct{ int32 }
//	type Float struct{ float64 }
//
//	func (Integer) isNumber() {}
//	func (Float) isNumber()   {}
//
// Running the roset command generates roset_gen.go for the package:
//
//	go run github.com/chikaku/roset/cmd/roset .
//
// # EnumFrom
//
// EnumFrom derives conversions driven by per-variant enum_from annotations.
// The annotation has two forms: a string tag and an inner marker.
//
// With string tags, every variant must carry one. The generator emits a
// parse function trying each tag in declaration order, and a String method
// on every variant returning its tag:
//
//	//roset:derive EnumFrom
//	type Animal interface{ isAnimal() }
//
//	//roset:enum_from str="🐱"
//	type Cat struct{}
//
//	//roset:enum_from str="🐶"
//	type Dog struct{}
//
//	// generated: (simplified)
//	func ParseAnimal(s string) (Animal, bool) {
//		if s == "🐱" {
//			return Cat{}, true
//		}
//		if s == "🐶" {
//			return Dog{}, true
//		}
//		return nil, false
//	}
//	func (Cat) String() string { return "🐱" }
//	func (Dog) String() string { return "🐶" }
//
// Mixing tagged and untagged variants is a generation error: once any
// variant uses str, all of them must.
//
// With inner markers, each marked variant gets a constructor from its
// wrapped type. Unmarked variants get nothing:
//
//	//roset:derive EnumFrom
//	type Number interface{ isNumber() }
//
//	//roset:enum_from inner
//	type Integer struct{ int32 }
//
//	type Float struct{ float64 } // no constructor generated
//
//	// generated: (simplified)
//	func NumberFromInt32(v int32) Number { return Integer{v} }
//
// # EnumFromWrapped
//
// EnumFromWrapped derives a constructor from the wrapped type of every
// variant. Every variant must wrap exactly one embedded field; a variant
// with no fields, named fields, or several embedded fields aborts the
// generation:
//
//	// generated: (simplified)
//	func NumberFromInt32(v int32) Number   { return Integer{v} }
//	func NumberFromFloat64(v float64) Number { return Float{v} }
//
// # EnumIntoWrapped
//
// EnumIntoWrapped derives the reverse, fallible conversion for every
// variant. The conversion succeeds only when the dynamic variant matches,
// and reports failure with a bare false:
//
//	// generated: (simplified)
//	func NumberToInt32(e Number) (int32, bool) {
//		if v, ok := e.(Integer); ok {
//			return v.int32, true
//		}
//		var zero int32
//		return zero, false
//	}
//
// # Failure rules
//
// All validation happens at generation time and any violation aborts the
// package with a positioned message: deriving on a type that is not an
// interface, an interface without methods, a variant whose shape a
// generator does not support, conflicting enum_from annotations, or string
// tags on only some of the variants. Either the whole file for a package is
// generated or nothing is.
//
// Failures of the generated code itself carry no detail on purpose: parse
// functions and To conversions report a plain false and leave the handling
// to the caller.
package roset
