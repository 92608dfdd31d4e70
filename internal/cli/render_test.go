package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/figstyle/pkg/errors"
)

const testFigure = `
width = "col"
height_ratio = 0.8
tight_layout = true

[labels]
x = "time (s)"
y = "rate (Hz)"

[[panel]]
[[panel.series]]
x = [0, 1, 2, 3]
y = [0, 1, 4, 9]
`

func TestParseFormats(t *testing.T) {
	fallback := []string{"pdf"}
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty uses fallback", "", []string{"pdf"}},
		{"single format", "svg", []string{"svg"}},
		{"multiple formats", "svg,pdf,png", []string{"svg", "pdf", "png"}},
		{"spaces and case", " SVG , png ,", []string{"svg", "png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input, fallback)
			if len(got) != len(tt.want) {
				t.Fatalf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i, v := range got {
				if v != tt.want[i] {
					t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
				}
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		output, input, want string
	}{
		{"", "figs/fig1.toml", "figs/fig1"},
		{"out/fig.pdf", "fig1.toml", "out/fig"},
		{"out/fig.PNG", "fig1.toml", "out/fig"},
		{"out/fig", "fig1.toml", "out/fig"},
		{"out/fig.v2", "fig1.toml", "out/fig.v2"},
	}

	for _, tt := range tests {
		if got := basePath(tt.output, tt.input); got != tt.want {
			t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
		}
	}
}

func TestOutputPaths(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		formats []string
		want    map[string]string
	}{
		{"derived", "", []string{"svg", "png"}, map[string]string{"svg": "fig.svg", "png": "fig.png"}},
		{"single verbatim", "out.pdf", []string{"pdf"}, map[string]string{"pdf": "out.pdf"}},
		{"single other ext", "out.eps", []string{"pdf"}, map[string]string{"pdf": "out.eps"}},
		{"base path", "out/figure", []string{"svg"}, map[string]string{"svg": "out/figure.svg"}},
		{"multiple stripped", "out.svg", []string{"svg", "pdf"}, map[string]string{"svg": "out.svg", "pdf": "out.pdf"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outputPaths(tt.output, "fig.toml", tt.formats)
			if len(got) != len(tt.want) {
				t.Fatalf("outputPaths = %v, want %v", got, tt.want)
			}
			for f, p := range tt.want {
				if got[f] != p {
					t.Errorf("outputPaths[%s] = %q, want %q", f, got[f], p)
				}
			}
		})
	}
}

func writeTestFigure(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fig.toml")
	if err := os.WriteFile(path, []byte(testFigure), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func testCLI(t *testing.T) (*CLI, context.Context) {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	c := New(io.Discard, LogInfo)
	return c, withLogger(context.Background(), c.Logger)
}

func TestRunRender(t *testing.T) {
	c, ctx := testCLI(t)
	input := writeTestFigure(t)

	opts := renderOpts{formats: []string{"svg", "png"}, dpi: 30}
	if err := c.runRender(ctx, input, opts); err != nil {
		t.Fatalf("runRender() error: %v", err)
	}

	base := basePath("", input)
	svg, err := os.ReadFile(base + ".svg")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(svg, []byte("<?xml")) {
		t.Errorf("svg output starts with %q", svg[:min(8, len(svg))])
	}
	png, err := os.ReadFile(base + ".png")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("png output is not a PNG")
	}

	dir, _ := cacheDir()
	if n, err := clearCache(dir); err != nil || n != 2 {
		t.Errorf("clearCache() = %d, %v; want two cached artifacts", n, err)
	}
}

func TestRunRenderNoCache(t *testing.T) {
	c, ctx := testCLI(t)
	c.Config.PreviewDPI = 30
	input := writeTestFigure(t)
	output := filepath.Join(t.TempDir(), "nested", "figure.pdf")

	opts := renderOpts{formats: []string{"pdf"}, output: output, noCache: true, checkClipping: true}
	if err := c.runRender(ctx, input, opts); err != nil {
		t.Fatalf("runRender() error: %v", err)
	}
	if _, err := os.Stat(output); err != nil {
		t.Errorf("output not written: %v", err)
	}

	dir, _ := cacheDir()
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("--no-cache should not create the cache directory")
	}
}

func TestRunRenderErrors(t *testing.T) {
	c, ctx := testCLI(t)

	err := c.runRender(ctx, filepath.Join(t.TempDir(), "missing.toml"), renderOpts{formats: []string{"svg"}})
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing input: err = %v", err)
	}

	bad := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(bad, []byte("rows = "), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := c.runRender(ctx, bad, renderOpts{formats: []string{"svg"}}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("bad description: err = %v", err)
	}
}

func TestRunPreview(t *testing.T) {
	c, ctx := testCLI(t)
	input := writeTestFigure(t)

	if err := c.runPreview(ctx, input, previewOpts{dpi: 30}); err != nil {
		t.Fatalf("runPreview() error: %v", err)
	}
	data, err := os.ReadFile(basePath("", input) + "_preview.png")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("preview is not a PNG")
	}
}
