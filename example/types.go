// This example declares three enums and lets roset generate their
// conversion code. Regenerate roset_gen.go with:
//
//	go tool roset
package main

// Animal maps each variant to a string tag. ParseAnimal and the String
// methods in roset_gen.go come from the str annotations.
//
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

// Number opts individual variants into constructors with inner markers.
// Float carries no marker, so no NumberFromFloat64 is generated.
//
//roset:derive EnumFrom
type Number interface{ isNumber() }

//roset:enum_from inner
type Integer struct{ int64 }

type Float struct{ float64 }

//roset:enum_from inner
type Cmplx struct{ Complex }

func (Integer) isNumber() {}
func (Float) isNumber()   {}
func (Cmplx) isNumber()   {}

// Scalar wraps and unwraps every variant.
//
//roset:derive EnumFromWrapped, EnumIntoWrapped
type Scalar interface{ isScalar() }

type Bool struct{ bool }
type Text struct{ string }

func (Bool) isScalar() {}
func (Text) isScalar() {}
