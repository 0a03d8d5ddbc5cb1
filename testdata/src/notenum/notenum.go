package notenum

//roset:derive EnumFrom
type Animal struct{} // want `Animal must be an enum interface to derive EnumFrom`
