package nomethods

//roset:derive EnumFrom
type Animal interface{} // want `Animal has no methods; an enum interface requires at least one`
