package partialtag

//roset:derive EnumFrom
type Animal interface{ isAnimal() }

//roset:enum_from str="🐱"
type Cat struct{}

type Dog struct{} // want `Dog must carry enum_from str`

func (Cat) isAnimal() {}
func (Dog) isAnimal() {}
