package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/matzehuels/graphview/pkg/errors"
)

const page = "<html><head><title>g</title></head><body><div id=\"mynetwork\"></div>\n<script>var network = null;</script>\n</body></html>\n"

func TestInject(t *testing.T) {
	out, err := Inject([]byte(page))
	if err != nil {
		t.Fatalf("Inject: %v", err)
	}
	doc := string(out)

	if n := strings.Count(doc, `id="export-toolbar"`); n != 1 {
		t.Errorf("toolbar count = %d, want 1", n)
	}
	if !strings.Contains(doc, Toolbar+"\n</body>") {
		t.Error("toolbar should sit immediately before </body>")
	}
	if !strings.HasPrefix(doc, page[:strings.Index(page, "</body>")]) {
		t.Error("content before the anchor changed")
	}
	if !strings.HasSuffix(doc, "</body></html>\n") {
		t.Error("content after the anchor changed")
	}
	if !Injected(out) || Injected([]byte(page)) {
		t.Error("Injected() reports wrong state")
	}
}

func TestInjectFirstAnchorOnly(t *testing.T) {
	doc := "<body><script>var s = '</body>';</script></body>"
	out, err := Inject([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(out), `id="export-toolbar"`); n != 1 {
		t.Errorf("toolbar count = %d, want 1", n)
	}
	if !strings.HasPrefix(string(out), "<body><script>var s = '"+Toolbar) {
		t.Error("toolbar not inserted at the first anchor")
	}
}

func TestInjectAnchorVariants(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		anchor string
		ok     bool
	}{
		{"lowercase", "<html><body></body></html>", "</body>", true},
		{"uppercase", "<HTML><BODY></BODY></HTML>", "</BODY>", true},
		{"lowercase preferred", "<BODY></BODY><body></body>", "</body>", true},
		{"mixed case unsupported", "<html><body></Body></html>", "", false},
		{"no anchor", "<html><div></div></html>", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Inject([]byte(tt.doc))
			if !tt.ok {
				if !errors.Is(err, errors.ErrCodeInjection) {
					t.Errorf("got %v, want INJECTION_ERROR", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Inject: %v", err)
			}
			if !bytes.Contains(out, []byte(Toolbar+"\n"+tt.anchor)) {
				t.Errorf("toolbar not placed before %s", tt.anchor)
			}
		})
	}
}

func TestInjectParsesAsHTML(t *testing.T) {
	out, err := Inject([]byte(page))
	if err != nil {
		t.Fatal(err)
	}
	root, err := html.Parse(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("html.Parse: %v", err)
	}

	ids := make(map[string]int)
	var scripts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for _, a := range n.Attr {
				if a.Key == "id" {
					ids[a.Val]++
				}
				if n.Data == "script" && a.Key == "src" {
					scripts = append(scripts, a.Val)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	for _, id := range []string{"export-toolbar", "btn-save-png", "btn-save-svg", "mynetwork"} {
		if ids[id] != 1 {
			t.Errorf("id %q appears %d times, want 1", id, ids[id])
		}
	}
	if len(scripts) != 1 || scripts[0] != Canvas2SVGURL {
		t.Errorf("script sources = %v, want [%s]", scripts, Canvas2SVGURL)
	}
}

func TestToolbarScript(t *testing.T) {
	for _, want := range []string{
		"network.canvas.frame.canvas",
		`toDataURL("image/png")`,
		`"graph.png"`,
		`"graph.svg"`,
		"new C2S(",
		"getSerializedSvg(true)",
		"finally",
		"canvas.getContext = originalGetContext",
		"setBusy(true)",
		"setBusy(false)",
		"alert(",
	} {
		if !strings.Contains(Toolbar, want) {
			t.Errorf("toolbar script missing %q", want)
		}
	}

	// The factory must be restored inside the finally block.
	finally := strings.Index(Toolbar, "finally")
	restore := strings.Index(Toolbar, "canvas.getContext = originalGetContext")
	if restore < finally {
		t.Error("getContext restore should happen in the finally block")
	}
}

func TestInjectFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.html")
	if err := os.WriteFile(path, []byte(page), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := InjectFile(path); err != nil {
		t.Fatalf("InjectFile: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := Inject([]byte(page))
	if !bytes.Equal(got, want) {
		t.Error("file content differs from Inject output")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("mode = %v, want 0600", info.Mode().Perm())
	}
}

func TestInjectFileLeavesUnmodified(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.html")
	orig := []byte("<html><div>no body end</div></html>")
	if err := os.WriteFile(path, orig, 0o644); err != nil {
		t.Fatal(err)
	}

	err := InjectFile(path)
	if !errors.Is(err, errors.ErrCodeInjection) {
		t.Fatalf("got %v, want INJECTION_ERROR", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, orig) {
		t.Error("file was modified after a failed injection")
	}
}

func TestInjectFileMissing(t *testing.T) {
	err := InjectFile(filepath.Join(t.TempDir(), "missing.html"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("got %v, want FILE_NOT_FOUND", err)
	}
}
