// Package integration provides embedded shell integration snippets.
package integration

import (
	"bytes"
	_ "embed"
	"os/exec"
	"path/filepath"
	"strings"
	"text/template"
)

// ZshFzf contains the zsh shell integration script with fzf support.
//
//go:embed zsh-fzf.sh
var ZshFzf string

// Binary is the command invoked by the integration script.
const Binary = "linkdu"

// Render renders the integration script with the local zsh path.
// The given flags are passed to every invocation of the binary, ahead of the
// arguments given to the shell function.
func Render(flags ...string) (string, error) {
	zsh, err := exec.LookPath("zsh")
	if err != nil {
		return "", err
	}

	return render(filepath.ToSlash(zsh), flags)
}

// render substitutes the zsh path, binary name and default flags into the script.
func render(zsh string, flags []string) (string, error) {
	tmpl, err := template.New("zsh-fzf").Funcs(template.FuncMap{
		"quote": quote,
	}).Parse(ZshFzf)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any{
		"ZSH":    zsh,
		"Binary": Binary,
		"Flags":  flags,
	}); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// quote wraps s in single quotes for the shell.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
