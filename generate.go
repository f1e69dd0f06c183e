package reloadgen

import (
	"errors"
	"fmt"
	"strings"
)

type (
	//LdScriptOptions configure GenerateLdScript.
	LdScriptOptions struct {
		MainImage   string //main firmware ELF, exporter of addresses
		ModuleImage string //reloadable module ELF, owner of the required set
		Output      string //linker script bindings file
		Source      Source
		//Strict escalate unresolved required symbols from a warning to an
		//error, returned before anything is written.
		Strict bool
	}
	//LdScriptReport is the outcome of one GenerateLdScript run.
	LdScriptReport struct {
		Bind  BindResult
		Wrote bool
	}
	//StubsOptions configure GenerateStubs.
	StubsOptions struct {
		ModuleImage  string //reloadable module ELF
		Arch         Arch   //from ArchByName
		OutputStubs  string //trampoline assembly source
		OutputTable  string //symbol table + name list C source
		OutputRetain string //force-retain linker response file
		Source       Source
	}
	//StubsReport is the outcome of one GenerateStubs run.
	StubsReport struct {
		Plan    SlotPlan
		Written int
	}
)

// ErrUnresolved occurs in strict mode when required symbols are missing
// from the main image's exported set.
var ErrUnresolved = errors.New("unresolved required symbols")

// GenerateLdScript resolves the module's required symbols against the
// main image and writes the bindings linker script. Unresolved names are
// reported, never silently dropped; unless Strict is set they do not stop
// generation, the consequence of an unresolved name surfaces at module
// load time on the device, not here.
func GenerateLdScript(w *Writer, o LdScriptOptions) (r *LdScriptReport, err error) {
	if o.Source == nil || o.MainImage == "" || o.ModuleImage == "" || o.Output == "" {
		return nil, errors.New("incomplete ld script options")
	}
	required, err := o.Source.Undefined(o.ModuleImage)
	if err != nil {
		return nil, err
	}
	exported, err := o.Source.Defined(o.MainImage)
	if err != nil {
		return nil, err
	}
	r = &LdScriptReport{Bind: Bind(required, exported)}
	if o.Strict && len(r.Bind.Unresolved) > 0 {
		return r, fmt.Errorf("%w: %s", ErrUnresolved, strings.Join(r.Bind.Unresolved, ", "))
	}
	r.Wrote, err = w.Write(o.Output, []byte(r.Bind.LdScript()))
	if err != nil {
		return nil, err
	}
	return
}

// GenerateStubs plans the indirection table from the module's exported
// function symbols and writes the stub assembly, the table source and the
// retain response file. The architecture must already be validated, a nil
// Arch is rejected here before any file I/O so partial output is never
// produced.
func GenerateStubs(w *Writer, o StubsOptions) (r *StubsReport, err error) {
	if o.Arch == nil {
		return nil, ErrUnsupportedArch
	}
	if o.Source == nil || o.ModuleImage == "" || o.OutputStubs == "" || o.OutputTable == "" || o.OutputRetain == "" {
		return nil, errors.New("incomplete stub options")
	}
	exported, err := o.Source.Defined(o.ModuleImage)
	if err != nil {
		return nil, err
	}
	required, err := o.Source.Undefined(o.ModuleImage)
	if err != nil {
		return nil, err
	}
	r = &StubsReport{Plan: PlanSlots(exported)}
	for _, out := range []struct {
		path    string
		content string
	}{
		{o.OutputStubs, Stubs(o.Arch, r.Plan)},
		{o.OutputTable, SymbolTableSource(r.Plan)},
		{o.OutputRetain, RetainDirectives(required)},
	} {
		wrote, err := w.Write(out.path, []byte(out.content))
		if err != nil {
			return nil, err
		}
		if wrote {
			r.Written++
		}
	}
	return
}
