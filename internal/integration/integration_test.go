package integration

import (
	"os/exec"
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	t.Parallel()

	rendered, err := render("/usr/bin/zsh", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(rendered, "#!/usr/bin/zsh\n") {
		t.Errorf("expected zsh shebang, got %q", strings.SplitN(rendered, "\n", 2)[0])
	}

	if !strings.Contains(rendered, "linkdu-fzf()") {
		t.Error("expected the linkdu-fzf function")
	}

	if !strings.Contains(rendered, `command linkdu --list --size-first --full-name "$@"`) {
		t.Error("expected a size-first full-name listing")
	}

	if strings.Contains(rendered, "{{") {
		t.Error("expected all template fields to be substituted")
	}
}

func TestRenderFlags(t *testing.T) {
	t.Parallel()

	rendered, err := render("/bin/zsh", []string{"--duplicates", "--exclude=*.log", "--exclude=it's"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `command linkdu --list --size-first --full-name '--duplicates' '--exclude=*.log' '--exclude=it'\''s' "$@"`
	if !strings.Contains(rendered, want) {
		t.Errorf("expected %q in the script, got %q", want, rendered)
	}
}

func TestQuote(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":          "''",
		"-d":        "'-d'",
		"*.log":     "'*.log'",
		"it's":      `'it'\''s'`,
		"a b $HOME": "'a b $HOME'",
	}

	for in, want := range tests {
		if got := quote(in); got != want {
			t.Errorf("quote(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestRenderLocalZsh(t *testing.T) {
	t.Parallel()

	if _, err := exec.LookPath("zsh"); err != nil {
		t.Skip("zsh not installed")
	}

	rendered, err := Render()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(rendered, "#!") {
		t.Errorf("expected a shebang, got %q", rendered)
	}
}
