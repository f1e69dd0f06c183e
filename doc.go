/*
Package reloadgen is the build-time half of a live code replacement
toolchain for microcontrollers without an operating system loader.

# License

Source codes are under Apache License Version 2.0.

# Underwater

 1. A main firmware image and a separately linked reloadable module call
    each other even though neither knows the other's addresses at compile
    time.
 2. Module to main calls are satisfied by a generated linker script that
    pins the module's required symbols to the addresses the main image
    exports ([GenerateLdScript]).
 3. Main to module calls go through a generated indirection table plus one
    ABI transparent call stub per exported function; the on-device loader
    fills the table by name once the module lands at its runtime address
    ([GenerateStubs]).
 4. Every artifact is written through an idempotent [Writer], so a rerun
    with unchanged inputs touches nothing and triggers no downstream
    rebuilds.

# Notes

 1. Symbol tables come from a [Source]; [NmTool] wraps an external
    binutils nm, [ELFImage] reads the ELF symtab directly. Both report
    symbols in a reproducible order, which slot assignment depends on.
 2. The on-device loader, the transport that ships a module to a running
    device and the rebuild watcher are external collaborators; this
    package only agrees with the loader on the generated identifier names
    [TableName], [NamesName] and [CountName].
 3. Only function symbols get table slots. Exported data symbols cannot
    be redirected through an indirect call and are reported instead.

# Tools

Two command line tools wrap the pipeline and can be installed by:

	go install github.com/embedreload/reloadgen/genld@latest
	go install github.com/embedreload/reloadgen/genstubs@latest

For details see the cli help of each:

	genld -h
	genstubs -h

# Samples

See tests.
*/
package reloadgen
