package reloadgen

import "fmt"

// riscvArch targets RV32 with the standard link-register convention.
//
// The stub saves the caller's ra to a scratch stack slot, performs a
// normal jalr to the address loaded from the table, then restores ra and
// returns. Argument and return value registers are never touched.
type riscvArch struct{}

func (riscvArch) Name() string  { return "riscv" }
func (riscvArch) WordSize() int { return 4 }

func (a riscvArch) Stub(tableName, symbol string, slot int) string {
	return fmt.Sprintf(`
.section .text
.global %[1]s
.type %[1]s, @function
%[1]s:
    # Trampoline to the actual function in the symbol table.
    # Save ra, load target address, call it, then restore ra and return.
    addi sp, sp, -16
    sw ra, 12(sp)
    la t0, %[2]s
    lw t0, %[3]d(t0)
    jalr ra, t0, 0
    lw ra, 12(sp)
    addi sp, sp, 16
    ret
.size %[1]s, .-%[1]s

`, symbol, tableName, slot*a.WordSize())
}
