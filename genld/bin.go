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
	app.Usage = "reloadable module binding generator"
	app.Name = "genld"
	app.Description = "resolve a reloadable module's required symbols against the main firmware image and emit a linker script pinning them"
	app.Action = action
	app.Flags = []cli.Flag{
		&cli.StringFlag{Name: "main-elf", Usage: "the main ELF file", Required: true},
		&cli.StringFlag{Name: "reloadable-elf", Usage: "the reloadable ELF file", Required: true},
		&cli.StringFlag{Name: "output-ld-script", Usage: "the output LD script file", Required: true},
		&cli.StringFlag{Name: "nm", Usage: "the path to the nm tool"},
		&cli.BoolFlag{Name: "elf", Usage: "read symbol tables directly instead of invoking nm"},
		&cli.BoolFlag{Name: "strict", Usage: "fail when required symbols are unresolved"},
		&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatalf("failure %s", err)
	}
}

func action(ctx *cli.Context) error {
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
	r, err := GenerateLdScript(w, LdScriptOptions{
		MainImage:   ctx.String("main-elf"),
		ModuleImage: ctx.String("reloadable-elf"),
		Output:      ctx.String("output-ld-script"),
		Source:      src,
		Strict:      ctx.Bool("strict"),
	})
	if err != nil {
		return err
	}
	if ctx.Bool("debug") {
		log.Printf("bind result:\n%s", spew.Sdump(r.Bind))
	}
	if n := len(r.Bind.Unresolved); n > 0 {
		log.Printf("WARNING: %d symbols are not found in the main ELF file: %v", n, r.Bind.Unresolved)
	}
	if ctx.Bool("debug") {
		log.Printf("written: %v unchanged: %v", w.Written(), w.Unchanged())
	}
	return nil
}
