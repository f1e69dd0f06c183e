package reloadgen

import (
	"debug/elf"
	"fmt"

	"github.com/ZenLiuCN/fn"
)

// ELFImage is a Source that reads symbol tables directly from the ELF
// file instead of shelling out to nm. Records come back in symtab order,
// so ordering matches the nm backend for images produced by the same
// linker.
type ELFImage struct{}

func (ELFImage) Defined(image string) (SymbolTable, error) {
	return elfSymbols(image, true)
}

func (ELFImage) Undefined(image string) (SymbolTable, error) {
	return elfSymbols(image, false)
}

func elfSymbols(image string, defined bool) (t SymbolTable, err error) {
	f, err := elf.Open(image)
	if err != nil {
		return nil, fmt.Errorf("open elf %s: %w", image, err)
	}
	defer fn.IgnoreClose(f)
	syms, err := f.Symbols()
	if err != nil {
		return nil, fmt.Errorf("read symbols of %s: %w", image, err)
	}
	for _, s := range syms {
		if s.Name == "" {
			continue
		}
		und := s.Section == elf.SHN_UNDEF
		if defined {
			bind := elf.ST_BIND(s.Info)
			if und || (bind != elf.STB_GLOBAL && bind != elf.STB_WEAK) {
				continue
			}
			t = append(t, SymbolRecord{
				Name:    s.Name,
				Kind:    elfKind(f, s),
				Address: s.Value,
				Defined: true,
			})
		} else if und {
			t = append(t, SymbolRecord{Name: s.Name, Kind: KindOther})
		}
	}
	return
}

func elfKind(f *elf.File, s elf.Symbol) Kind {
	switch elf.ST_TYPE(s.Info) {
	case elf.STT_FUNC:
		return KindFunction
	case elf.STT_OBJECT:
		if int(s.Section) < len(f.Sections) && f.Sections[s.Section].Type == elf.SHT_NOBITS {
			return KindBss
		}
		return KindData
	default:
		return KindOther
	}
}
