package main

import (
	"fmt"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
	. "github.com/embedreload/reloadgen"
	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.NewApp()
	app.Usage = "reloadable module stub generator"
	app.Name = "genstubs"
	app.Description = "emit the indirection table, the loader name list, per-function call stubs and the symbol retention response file for a reloadable module"
	app.Action = action
	app.Flags = []cli.Flag{
		&cli.StringFlag{Name: "input-elf", Usage: "the reloadable ELF file", Required: true},
		&cli.StringFlag{Name: "output-stubs", Usage: "the output ASM stubs file", Required: true},
		&cli.StringFlag{Name: "output-symbol-table", Usage: "the output symbol table file", Required: true},
		&cli.StringFlag{Name: "output-undefined-symbols-rsp-file", Usage: "the output undefined symbols RSP file", Required: true},
		&cli.StringFlag{Name: "arch", Usage: "architecture the program is built for", Required: true},
		&cli.StringFlag{Name: "nm", Usage: "the path to the nm tool"},
		&cli.BoolFlag{Name: "elf", Usage: "read symbol tables directly instead of invoking nm"},
		&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatalf("failure %s", err)
	}
}

func action(ctx *cli.Context) error {
	arch, err := ArchByName(ctx.String("arch"))
	if err != nil {
		return err
	}
	var src Source
	switch {
	case ctx.Bool("elf"):
		src = ELFImage{}
	case ctx.String("nm") != "":
		src = NmTool{Path: ctx.String("nm")}
	default:
		return fmt.Errorf("either --nm or --elf is required")
	}
	w := new(Writer)
	r, err := GenerateStubs(w, StubsOptions{
		ModuleImage:  ctx.String("input-elf"),
		Arch:         arch,
		OutputStubs:  ctx.String("output-stubs"),
		OutputTable:  ctx.String("output-symbol-table"),
		OutputRetain: ctx.String("output-undefined-symbols-rsp-file"),
		Source:       src,
	})
	if err != nil {
		return err
	}
	if ctx.Bool("debug") {
		log.Printf("slot plan:\n%s", spew.Sdump(r.Plan))
	}
	for _, name := range r.Plan.Excluded {
		log.Printf("WARNING: %s in %s is a data symbol, will not be available in the main program", name, ctx.String("input-elf"))
	}
	if n := len(r.Plan.Excluded); n > 0 {
		log.Printf("WARNING: %d data symbols excluded from the symbol table", n)
	}
	if ctx.Bool("debug") {
		log.Printf("written: %v unchanged: %v", w.Written(), w.Unchanged())
	}
	return nil
}
