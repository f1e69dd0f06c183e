package reloadgen

import (
	"fmt"
	"os/exec"
)

// NmTool is a Source backed by an external binutils nm executable.
//
// A missing executable or non-zero exit is fatal for the whole pipeline:
// a flaky toolchain invocation is an environment defect, not a transient
// condition worth masking, so there is no retry.
type NmTool struct {
	Path string //path to the nm executable
}

func (n NmTool) Defined(image string) (SymbolTable, error) {
	out, err := n.run("--defined-only", "--format=posix", "--extern-only", image)
	if err != nil {
		return nil, err
	}
	return parseDefined(out), nil
}

func (n NmTool) Undefined(image string) (SymbolTable, error) {
	out, err := n.run("--undefined-only", "--format=posix", image)
	if err != nil {
		return nil, err
	}
	return parseUndefined(out), nil
}

func (n NmTool) run(args ...string) (string, error) {
	cmd := exec.Command(n.Path, args...)
	out, err := cmd.Output()
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("invoke %v: %w\nerr:%s", cmd.Args, err, ee.Stderr)
		}
		return "", fmt.Errorf("invoke %v: %w", cmd.Args, err)
	}
	return string(out), nil
}
