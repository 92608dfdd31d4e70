package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestWritePresets(t *testing.T) {
	var buf bytes.Buffer
	if err := writePresets(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"col", "full", "poster", "3.37", "7.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("presets output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteStyles(t *testing.T) {
	var buf bytes.Buffer
	if err := writeStyles(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"paper", "notebook", "slides", "poster"} {
		if !strings.Contains(out, want) {
			t.Errorf("styles output missing %q:\n%s", want, out)
		}
	}
}

func TestRootCommand(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"mathtext", "V_m"}, `$\mathrm{V}_\mathrm{m}$`},
		{[]string{"presets"}, "slide_col"},
		{[]string{"completion", "bash"}, "figstyle"},
	}

	for _, tt := range tests {
		t.Run(tt.args[0], func(t *testing.T) {
			var buf bytes.Buffer
			root := New(&buf, LogInfo).RootCommand()
			root.SetOut(&buf)
			root.SetErr(&buf)
			root.SetArgs(tt.args)
			if err := root.Execute(); err != nil {
				t.Fatalf("Execute(%v) error: %v", tt.args, err)
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output of %v missing %q:\n%s", tt.args, tt.want, buf.String())
			}
		})
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	want := []string{"render", "preview", "presets", "styles", "mathtext", "cache", "completion"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestStatsLine(t *testing.T) {
	tests := []struct {
		panels, formats int
		cached          bool
		want            []string
	}{
		{1, 1, false, []string{"1 panel", "1 format", "fresh"}},
		{4, 2, true, []string{"4 panels", "2 formats", "cached"}},
		{0, 0, false, []string{"fresh"}},
	}

	for _, tt := range tests {
		got := statsLine(tt.panels, tt.formats, tt.cached)
		for _, w := range tt.want {
			if !strings.Contains(got, w) {
				t.Errorf("statsLine(%d, %d, %v) = %q, missing %q", tt.panels, tt.formats, tt.cached, got, w)
			}
		}
	}
}
