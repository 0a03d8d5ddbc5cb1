package markermode

//roset:derive EnumFrom
type Number interface{ isNumber() }

//roset:enum_from inner
type Integer struct{ int32 }

type Float struct{ float64 }

func (Integer) isNumber() {}
func (Float) isNumber()   {}
