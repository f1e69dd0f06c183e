package reloadgen

// Source reads the symbol table of a binary image.
//
// Both queries return records in the order the backend reports them;
// repeated queries against an unchanged image must return identical
// tables, downstream slot and binding assignment rely on it.
type Source interface {
	//Defined reports the externally visible defined symbols of the image.
	Defined(image string) (SymbolTable, error)
	//Undefined reports the undefined (required) symbols of the image.
	Undefined(image string) (SymbolTable, error)
}
