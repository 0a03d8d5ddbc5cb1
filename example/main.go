//go:build !roset

package main

import "fmt"

func main() {
	// Output: 🐱 true
	cat, ok := ParseAnimal("🐱")
	fmt.Println(cat, ok)

	// Output: 🐶
	fmt.Println(Dog{})

	// Output: <nil> false
	lizard, ok := ParseAnimal("🦎")
	fmt.Println(lizard, ok)

	// Output: main.Integer{int64:42}
	n := NumberFromInt64(42)
	fmt.Printf("%#v\n", n)

	// Output: main.Cmplx{Complex:main.Complex{Real:1, Imag:-1}}
	c := NumberFromComplex(Complex{Real: 1, Imag: -1})
	fmt.Printf("%#v\n", c)

	// Output: hello true
	s := ScalarFromString("hello")
	text, ok := ScalarToString(s)
	fmt.Println(text, ok)

	// Output: false false
	b, ok := ScalarToBool(s)
	fmt.Println(b, ok)
}
