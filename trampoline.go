package reloadgen

import (
	"fmt"
	"strings"
)

// Fixed identifier names of the generated symbol table source. The
// on-device loader resolves them by linkage, so they must never change.
const (
	TableName = "hotreload_symbol_table"
	NamesName = "hotreload_symbol_names"
	CountName = "hotreload_symbol_count"
)

// SlotPlan assigns indirection table slots to a module's exported
// function symbols. Slot i occupies byte offset i*WordSize in the table.
type SlotPlan struct {
	//Slots holds the symbol name per slot index, in first-seen order.
	Slots []string
	//Excluded holds exported data/bss names, which never get a slot: the
	//main image and the module have independent data layouts, so a data
	//symbol cannot be redirected through an indirect call.
	Excluded []string
}

// PlanSlots classifies the module's exported symbols. Function kind
// records are appended to the table in input order; data and bss records
// are excluded; anything else is ignored.
func PlanSlots(exported SymbolTable) (p SlotPlan) {
	for _, s := range exported {
		switch s.Kind {
		case KindFunction:
			p.Slots = append(p.Slots, s.Name)
		case KindData, KindBss:
			p.Excluded = append(p.Excluded, s.Name)
		}
	}
	return
}

// SymbolTableSource renders the C source holding the indirection table,
// the name list the loader resolves it from, and the slot count. The
// table is left uninitialized: addresses only exist once the module is
// actually loaded, so they are resolved then, never baked in here.
func SymbolTableSource(p SlotPlan) string {
	b := strings.Builder{}
	b.WriteString("#include <stdint.h>\n#include <stddef.h>\n\n")
	b.WriteString("// Symbol table - populated by hotreload_load()\n")
	b.WriteString(fmt.Sprintf("uint32_t %s[%d];\n\n", TableName, len(p.Slots)))
	b.WriteString("// Symbol names list for the loader to populate the table\n")
	b.WriteString(fmt.Sprintf("const char *const %s[] = {\n", NamesName))
	for _, name := range p.Slots {
		b.WriteString(fmt.Sprintf("    %q,\n", name))
	}
	b.WriteString("    NULL  // Sentinel\n};\n\n")
	b.WriteString("// Number of symbols in the table\n")
	b.WriteString(fmt.Sprintf("const size_t %s = %d;\n", CountName, len(p.Slots)))
	return b.String()
}

// Stubs renders one call stub per slot, in slot order.
func Stubs(arch Arch, p SlotPlan) string {
	b := strings.Builder{}
	for i, name := range p.Slots {
		b.WriteString(arch.Stub(TableName, name, i))
	}
	return b.String()
}

// RetainDirectives renders the linker response file that force-retains,
// by name, every symbol the module requires at load time but does not
// reference from its own object code. Without it a garbage-collecting
// linker would strip them from the main image.
func RetainDirectives(required SymbolTable) string {
	b := strings.Builder{}
	for _, s := range required {
		b.WriteString(fmt.Sprintf("-Wl,--undefined=%s\n", s.Name))
	}
	return b.String()
}
