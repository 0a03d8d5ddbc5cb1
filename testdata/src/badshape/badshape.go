package badshape

//roset:derive EnumFromWrapped
type Shape interface{ isShape() }

type Empty struct{} // want `Shape: cannot use EnumFromWrapped: variant Empty has no fields`

type Point struct{ X, Y int } // want `Shape: cannot use EnumFromWrapped: variant Point has named fields`

type Pair struct { // want `Shape: cannot use EnumFromWrapped: variant Pair has multiple embedded fields`
	int32
	float64
}

func (Empty) isShape() {}
func (Point) isShape() {}
func (Pair) isShape()  {}
