package reloadgen

import (
	"strconv"
	"strings"
)

type (
	//Kind classifies a symbol by the section it lives in.
	Kind int
	//SymbolRecord is one symbol reported by a Source for an image.
	//
	//Address is meaningful only when Defined is true; undefined (required)
	//symbols carry no address. Name is the sole identity, uniqueness within
	//one image's externally visible defined set is assumed.
	SymbolRecord struct {
		Name    string
		Kind    Kind
		Address uint64
		Defined bool
	}
	//SymbolTable is an ordered sequence of SymbolRecord. Order is the order
	//the symbols were reported by the Source; slot and binding assignment
	//downstream depend on it and must be reproducible.
	SymbolTable []SymbolRecord
)

const (
	KindFunction Kind = iota //text symbol, eligible for an indirection slot
	KindData                 //initialized data, never slotted
	KindBss                  //zero-initialized data, never slotted
	KindOther                //anything else nm may report (weak, rodata, absolute)
)

func (k Kind) String() string {
	switch k {
	case KindFunction:
		return "function"
	case KindData:
		return "data"
	case KindBss:
		return "bss"
	default:
		return "other"
	}
}

func kindOf(letter string) Kind {
	switch letter {
	case "T":
		return KindFunction
	case "D":
		return KindData
	case "B":
		return KindBss
	default:
		return KindOther
	}
}

// Names dump the symbol names in table order.
func (t SymbolTable) Names() (n []string) {
	n = make([]string, 0, len(t))
	for _, s := range t {
		n = append(n, s.Name)
	}
	return
}

// parseDefined parses posix format nm output of defined symbols:
// "NAME TYPE ADDRESS [SIZE]". Lines with fewer than three fields are
// skipped; an unparseable address drops the record the same way, this is
// tool output variance, not a build defect.
func parseDefined(out string) (t SymbolTable) {
	for _, line := range strings.Split(out, "\n") {
		parts := strings.Fields(line)
		if len(parts) < 3 {
			continue
		}
		addr, err := strconv.ParseUint(parts[2], 16, 64)
		if err != nil {
			continue
		}
		t = append(t, SymbolRecord{
			Name:    parts[0],
			Kind:    kindOf(parts[1]),
			Address: addr,
			Defined: true,
		})
	}
	return
}

// parseUndefined parses posix format nm output of undefined symbols:
// "NAME U". Lines with fewer than two fields are skipped.
func parseUndefined(out string) (t SymbolTable) {
	for _, line := range strings.Split(out, "\n") {
		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}
		t = append(t, SymbolRecord{Name: parts[0], Kind: KindOther})
	}
	return
}
