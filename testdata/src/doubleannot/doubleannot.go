package doubleannot

//roset:derive EnumFrom
type Animal interface{ isAnimal() }

//roset:enum_from str="🐱"
//roset:enum_from str="😺"
type Cat struct{} // want `Cat has multiple enum_from annotations; at most one is allowed`

func (Cat) isAnimal() {}
