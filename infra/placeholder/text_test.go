package placeholder

import (
	"strings"
	"testing"
)

func TestStripHTML_DecodesEntitiesAndStripsTags(t *testing.T) {
	in := `<p>Hello &lt;world&gt; &amp; crew</p><script>alert(1)</script><br/>line2`
	got := stripHTML(in)
	if strings.Contains(got, "<p>") || strings.Contains(got, "alert") {
		t.Fatalf("expected tags and script content stripped: %q", got)
	}
	if !strings.Contains(got, "<world>") || !strings.Contains(got, "&") {
		t.Fatalf("expected entities decoded: %q", got)
	}
	if !strings.Contains(got, "\nline2") {
		t.Fatalf("expected line break retained: %q", got)
	}
}

func TestStripHTML_PlainTextUntouched(t *testing.T) {
	in := "quia et suscipit\nsuscipit recusandae"
	if got := stripHTML(in); got != in {
		t.Fatalf("plain text changed: %q", got)
	}
}

func TestSanitizeForTerminal_RemovesEscapesAndControls(t *testing.T) {
	in := "ok\x1b[31mred\x1b[0m\x01\x02\x7f done\r\nnext"
	got := sanitizeForTerminal(in)
	if strings.ContainsRune(got, '\x1b') || strings.ContainsRune(got, '\x01') || strings.ContainsRune(got, '\x7f') {
		t.Fatalf("expected escapes and controls removed: %q", got)
	}
	if got != "okred done\nnext" {
		t.Fatalf("unexpected sanitized text: %q", got)
	}
}

func TestSanitizeText_Trims(t *testing.T) {
	if got := sanitizeText("  <b>hi</b>\n"); got != "hi" {
		t.Fatalf("unexpected: %q", got)
	}
}
