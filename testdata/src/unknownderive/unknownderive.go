package unknownderive

//roset:derive EnumSideways
type Animal interface{ isAnimal() } // want `unknown generator "EnumSideways" for roset:derive on Animal`

type Cat struct{}

func (Cat) isAnimal() {}
