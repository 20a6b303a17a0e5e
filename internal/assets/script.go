package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"unity2godot/internal/common"
	"unity2godot/internal/diagnostic"
	"unity2godot/internal/inventory"
)

// Script relocates one source script. Translating the script body is
// out of scope: the original text is wrapped verbatim in a comment
// block inside a stub that stays syntactically valid in the target
// scripting environment.
func (c *Converter) Script(sourcePath string) (diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	data, err := os.ReadFile(sourcePath)
	if err != nil {
		return diags, fmt.Errorf("failed to read script %s: %w", sourcePath, err)
	}

	out := c.targetPath(inventory.Script, sourcePath, ".gd")
	stub := ScriptStub(filepath.Base(sourcePath), string(data))

	if err := common.WriteFile(out, []byte(stub)); err != nil {
		return diags, fmt.Errorf("writing script %s: %w", out, err)
	}

	c.Refs.Put(sourcePath, out)

	return diags, nil
}

// ScriptStub builds the generated stub: a minimal base type, a
// translation marker and the untranslated source commented out line by
// line so the file always parses.
func ScriptStub(sourceName, sourceText string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Converted from %s\n\n", sourceName)
	b.WriteString("extends Node\n\n")
	b.WriteString("# TODO: translate the original C# implementation below to GDScript.\n\n")
	b.WriteString("# Original C# source:\n")

	for _, line := range strings.Split(strings.TrimRight(sourceText, "\n"), "\n") {
		if line == "" {
			b.WriteString("#\n")
			continue
		}

		b.WriteString("# " + line + "\n")
	}

	return b.String()
}
