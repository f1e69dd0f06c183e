package reloadgen

import (
	"errors"
	"fmt"
)

// Arch emits the per-architecture call stub for one indirection table
// slot. Adding a target means adding one implementation, existing ones
// are never edited.
//
// The defining requirement is ABI transparency: from any caller's
// perspective a stub must be indistinguishable from a normal function
// with the original name and signature. Argument registers, return value
// registers and any frame or window state of the calling convention must
// survive the detour through the table.
type Arch interface {
	Name() string
	//WordSize is the size of one table slot in bytes.
	WordSize() int
	//Stub renders one globally visible subroutine named symbol that loads
	//slot*WordSize bytes past tableName and transfers control there.
	Stub(tableName, symbol string, slot int) string
}

// ErrUnsupportedArch occurs when the requested target is not in the
// closed set of supported architectures.
var ErrUnsupportedArch = errors.New("unsupported architecture")

var archs = []Arch{xtensaArch{}, riscvArch{}}

// ArchByName select a supported architecture. Callers must do this
// before any file I/O so an invalid selection never produces partial
// output.
func ArchByName(name string) (Arch, error) {
	for _, a := range archs {
		if a.Name() == name {
			return a, nil
		}
	}
	return nil, fmt.Errorf("%w: %q (supported: %v)", ErrUnsupportedArch, name, ArchNames())
}

// ArchNames dump the supported architecture names.
func ArchNames() (n []string) {
	for _, a := range archs {
		n = append(n, a.Name())
	}
	return
}
