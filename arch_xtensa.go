package reloadgen

import "fmt"

// xtensaArch targets the Xtensa windowed ABI.
//
// The stub must be a proper windowed subroutine: it enters its own window
// with entry, invokes the target through callx8 so the target's own
// window prologue behaves normally, and unwinds through retw. A bare
// non-windowed jump would only work for targets that never rely on the
// stub's frame, so it is not offered.
type xtensaArch struct{}

func (xtensaArch) Name() string  { return "xtensa" }
func (xtensaArch) WordSize() int { return 4 }

func (a xtensaArch) Stub(tableName, symbol string, slot int) string {
	return fmt.Sprintf(`
.section .text
.balign 4
.global %[1]s
.type %[1]s, @function
%[1]s:
    # Trampoline to the actual function in the symbol table.
    # Enter our own window, move incoming args (a2-a7) to the outgoing
    # positions (a10-a15), load the target address and callx8 it; retw
    # rotates the return values back into the caller's window.
    entry a1, 48
    mov a10, a2
    mov a11, a3
    mov a12, a4
    mov a13, a5
    mov a14, a6
    mov a15, a7
    movi a8, %[2]s
    l32i a8, a8, %[3]d
    callx8 a8
    retw.n
.size %[1]s, .-%[1]s

`, symbol, tableName, slot*a.WordSize())
}
