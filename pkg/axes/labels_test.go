package axes

import (
	"testing"

	"github.com/matzehuels/figstyle/pkg/style"
	"github.com/matzehuels/figstyle/pkg/surface"
	"github.com/matzehuels/figstyle/pkg/surface/surfacetest"
)

func TestSetLabels(t *testing.T) {
	recs, axs := surfacetest.Sequence(3)
	SetLabels(axs, Labels{
		X:      All("time (s)"),
		Y:      Each("a", "b", "c"),
		Titles: Each("one", "two", "three"),
	})

	wantY := []string{"a", "b", "c"}
	wantT := []string{"one", "two", "three"}
	for i, r := range recs {
		if r.Labels[surface.X] != "time (s)" {
			t.Errorf("%s: x label = %q", r.Name, r.Labels[surface.X])
		}
		if r.Labels[surface.Y] != wantY[i] {
			t.Errorf("%s: y label = %q, want %q", r.Name, r.Labels[surface.Y], wantY[i])
		}
		if r.Title.Text != wantT[i] || r.Title.Left {
			t.Errorf("%s: title = %+v, want centered %q", r.Name, r.Title, wantT[i])
		}
		if r.LeftTitle.Text != "" {
			t.Errorf("%s: unexpected panel number %q", r.Name, r.LeftTitle.Text)
		}
	}
}

func TestSetLabelsUnsetLeavesPanels(t *testing.T) {
	r := surfacetest.New("a")
	r.SetLabel(surface.X, "keep")
	SetLabels(surface.Single(r), Labels{Y: All("y")})
	if r.Labels[surface.X] != "keep" {
		t.Errorf("x label = %q, want keep", r.Labels[surface.X])
	}
}

func TestSetLabelsPanelNums(t *testing.T) {
	t.Run("auto", func(t *testing.T) {
		recs, axs := surfacetest.Grid(2, 2)
		SetLabels(axs, Labels{PanelNums: Auto})

		want := [][]string{{"A", "B"}, {"C", "D"}}
		for i, row := range recs {
			for j, r := range row {
				got := r.LeftTitle
				if got.Text != want[i][j] {
					t.Errorf("%s: panel number = %q, want %q", r.Name, got.Text, want[i][j])
				}
				if !got.Left || !got.Bold || got.HAlign != surface.AlignRight || got.VAlign != surface.AlignBottom {
					t.Errorf("%s: panel number style = %+v", r.Name, got)
				}
			}
		}
	})

	t.Run("shared with spacing", func(t *testing.T) {
		y := 1.05
		recs, axs := surfacetest.Sequence(2)
		SetLabels(axs, Labels{
			PanelNums: All("X"),
			PanelNum:  &PanelNumStyle{Space: 2, VAlign: surface.AlignTop, Pad: 4, Y: &y},
		})
		for _, r := range recs {
			got := r.LeftTitle
			if got.Text != "X  " {
				t.Errorf("%s: panel number = %q, want %q", r.Name, got.Text, "X  ")
			}
			if got.VAlign != surface.AlignTop || got.Pad != 4 || got.Y == nil || *got.Y != 1.05 {
				t.Errorf("%s: panel number style = %+v", r.Name, got)
			}
		}
	})

	t.Run("per panel", func(t *testing.T) {
		recs, axs := surfacetest.Sequence(2)
		SetLabels(axs, Labels{PanelNums: Each("i", "ii")})
		if recs[0].LeftTitle.Text != "i" || recs[1].LeftTitle.Text != "ii" {
			t.Errorf("panel numbers = %q, %q", recs[0].LeftTitle.Text, recs[1].LeftTitle.Text)
		}
	})
}

func TestSetLabelsShortListPanics(t *testing.T) {
	_, axs := surfacetest.Sequence(2)
	defer func() {
		if recover() == nil {
			t.Error("expected panic for a list shorter than the collection")
		}
	}()
	SetLabels(axs, Labels{Y: Each("only one")})
}

func TestRowTitle(t *testing.T) {
	cfg := style.Defaults()
	r := surfacetest.New("a")
	r.LabelPads[surface.Y] = 4

	RowTitle(r, cfg, "Condition 1", nil)

	if len(r.Annotations) != 1 {
		t.Fatalf("annotations = %d, want 1", len(r.Annotations))
	}
	a := r.Annotations[0]
	if a.Text != "Condition 1" {
		t.Errorf("text = %q", a.Text)
	}
	if a.OffsetX != -74 || a.OffsetY != 0 {
		t.Errorf("offset = (%v, %v), want (-74, 0)", a.OffsetX, a.OffsetY)
	}
	if a.Size != cfg.LargeSize() {
		t.Errorf("size = %v, want %v", a.Size, cfg.LargeSize())
	}
	if a.HAlign != surface.AlignLeft || a.VAlign != surface.AlignMiddle {
		t.Errorf("alignment = %v/%v", a.HAlign, a.VAlign)
	}

	RowTitle(r, cfg, "Condition 2", &RowTitleOptions{Pad: 10, Size: 12, HAlign: surface.AlignCenter})
	b := r.Annotations[1]
	if b.OffsetX != -14 || b.Size != 12 || b.HAlign != surface.AlignCenter {
		t.Errorf("custom annotation = %+v", b)
	}
}
