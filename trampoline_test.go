package reloadgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func exportedTable() SymbolTable {
	return SymbolTable{
		{Name: "alpha", Kind: KindFunction, Address: 0x100, Defined: true},
		{Name: "gamma", Kind: KindData, Address: 0x200, Defined: true},
		{Name: "beta", Kind: KindFunction, Address: 0x300, Defined: true},
	}
}

func TestPlanSlots(t *testing.T) {
	p := PlanSlots(exportedTable())
	require.Equal(t, []string{"alpha", "beta"}, p.Slots)
	require.Equal(t, []string{"gamma"}, p.Excluded)
}

func TestPlanSlotsStableAcrossInterleavedData(t *testing.T) {
	funcsOnly := SymbolTable{
		{Name: "alpha", Kind: KindFunction, Defined: true},
		{Name: "beta", Kind: KindFunction, Defined: true},
	}
	require.Equal(t, PlanSlots(funcsOnly).Slots, PlanSlots(exportedTable()).Slots)
}

func TestPlanSlotsIgnoresOtherKinds(t *testing.T) {
	p := PlanSlots(SymbolTable{
		{Name: "rodata_blob", Kind: KindOther, Defined: true},
		{Name: "fn", Kind: KindFunction, Defined: true},
	})
	require.Equal(t, []string{"fn"}, p.Slots)
	require.Empty(t, p.Excluded)
}

func TestSymbolTableSource(t *testing.T) {
	src := SymbolTableSource(PlanSlots(exportedTable()))
	require.Contains(t, src, "uint32_t hotreload_symbol_table[2];")
	require.Contains(t, src, "const char *const hotreload_symbol_names[] = {")
	require.Contains(t, src, "    \"alpha\",\n    \"beta\",\n    NULL  // Sentinel")
	require.Contains(t, src, "const size_t hotreload_symbol_count = 2;")
}

func TestSymbolTableSourceEmptyPlan(t *testing.T) {
	src := SymbolTableSource(SlotPlan{})
	require.Contains(t, src, "uint32_t hotreload_symbol_table[0];")
	require.Contains(t, src, "const size_t hotreload_symbol_count = 0;")
}

func TestStubsOnePerSlot(t *testing.T) {
	for _, name := range ArchNames() {
		arch, err := ArchByName(name)
		require.NoError(t, err)
		out := Stubs(arch, PlanSlots(exportedTable()))
		require.Equal(t, 1, strings.Count(out, ".global alpha\n"), name)
		require.Equal(t, 1, strings.Count(out, ".global beta\n"), name)
		require.NotContains(t, out, "gamma", name)
		require.Contains(t, out, ".type alpha, @function", name)
		require.Contains(t, out, ".size alpha, .-alpha", name)
	}
}

func TestXtensaStubIsWindowed(t *testing.T) {
	arch, err := ArchByName("xtensa")
	require.NoError(t, err)
	s := arch.Stub(TableName, "beta", 1)
	require.Contains(t, s, "entry a1, 48")
	require.Contains(t, s, "movi a8, hotreload_symbol_table")
	require.Contains(t, s, "l32i a8, a8, 4")
	require.Contains(t, s, "callx8 a8")
	require.Contains(t, s, "retw.n")
	require.Contains(t, s, "mov a10, a2")
	require.Contains(t, s, "mov a15, a7")
}

func TestRiscvStubPreservesReturnAddress(t *testing.T) {
	arch, err := ArchByName("riscv")
	require.NoError(t, err)
	s := arch.Stub(TableName, "beta", 3)
	require.Contains(t, s, "sw ra, 12(sp)")
	require.Contains(t, s, "la t0, hotreload_symbol_table")
	require.Contains(t, s, "lw t0, 12(t0)")
	require.Contains(t, s, "jalr ra, t0, 0")
	require.Contains(t, s, "lw ra, 12(sp)")
	require.Contains(t, s, "ret")
}

func TestStubOffsetsFollowWordSize(t *testing.T) {
	for _, name := range ArchNames() {
		arch, err := ArchByName(name)
		require.NoError(t, err)
		require.Equal(t, 4, arch.WordSize(), name)
		require.NotEqual(t, arch.Stub(TableName, "f", 0), arch.Stub(TableName, "f", 1), name)
	}
}

func TestArchByNameRejectsUnknown(t *testing.T) {
	_, err := ArchByName("m68k")
	require.ErrorIs(t, err, ErrUnsupportedArch)
}

func TestRetainDirectives(t *testing.T) {
	out := RetainDirectives(required("esp_rom_printf", "vTaskDelay"))
	require.Equal(t, "-Wl,--undefined=esp_rom_printf\n-Wl,--undefined=vTaskDelay\n", out)
}

func TestRetainDirectivesEmpty(t *testing.T) {
	require.Equal(t, "", RetainDirectives(nil))
}
