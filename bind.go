package reloadgen

import (
	"fmt"
	"strings"
)

type (
	//Binding fixes a required symbol name to the address the main image
	//exports it at. The address is carried through untransformed.
	Binding struct {
		Name    string
		Address uint64
	}
	//BindResult is the outcome of resolving a module's required symbols
	//against a main image's exported symbols. Bindings keep the order the
	//names first appeared in the required table; Unresolved likewise.
	BindResult struct {
		Bindings   []Binding
		Unresolved []string
	}
)

// Bind resolves every name of required against the addresses of exported.
// Duplicate exported names keep the first occurrence; duplicates are not
// expected given extern-only filtering, but determinism must still hold.
// Unresolved names are never dropped, the caller decides whether they are
// a warning or a failure.
func Bind(required, exported SymbolTable) (r BindResult) {
	addr := make(map[string]uint64, len(exported))
	for _, s := range exported {
		if !s.Defined {
			continue
		}
		if _, ok := addr[s.Name]; !ok {
			addr[s.Name] = s.Address
		}
	}
	seen := make(map[string]bool, len(required))
	for _, s := range required {
		if seen[s.Name] {
			continue
		}
		seen[s.Name] = true
		if a, ok := addr[s.Name]; ok {
			r.Bindings = append(r.Bindings, Binding{Name: s.Name, Address: a})
		} else {
			r.Unresolved = append(r.Unresolved, s.Name)
		}
	}
	return
}

// LdScript renders the bindings as linker script assignments, one
// `name = 0xaddress;` per line in binding order. The downstream linker
// consumes this verbatim, so the format must not vary run to run.
func (r BindResult) LdScript() string {
	b := strings.Builder{}
	for _, v := range r.Bindings {
		b.WriteString(fmt.Sprintf("%s = 0x%x;\n", v.Name, v.Address))
	}
	return b.String()
}
