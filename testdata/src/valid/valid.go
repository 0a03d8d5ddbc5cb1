package valid

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
