package markdown

import (
	"strings"
	"testing"
)

func TestRenderEmphasis(t *testing.T) {
	out, err := Render("writing **clean** code")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), "<strong>clean</strong>") {
		t.Fatalf("expected strong tag, got %q", out)
	}
}

func TestRenderKeepsLineBreaks(t *testing.T) {
	out := MustRender("one\ntwo")
	if !strings.Contains(string(out), "<br") {
		t.Fatalf("expected hard wrap, got %q", out)
	}
}

func TestRenderDropsRawHTML(t *testing.T) {
	out := MustRender("<script>alert(1)</script>")
	if strings.Contains(string(out), "<script>") {
		t.Fatalf("expected raw html to be omitted, got %q", out)
	}
}
