package model

import (
	"testing"

	"github.com/soocke/quad-crop-go/domain/quad"
)

func TestEditorModel_SelectNextCyclesClockwise(t *testing.T) {
	m := NewEditorModel()
	if _, ok := m.Selected(); ok {
		t.Fatalf("fresh model should have no selection")
	}
	want := []quad.Corner{quad.TopLeft, quad.TopRight, quad.BottomRight, quad.BottomLeft, quad.TopLeft}
	for i, w := range want {
		if got := m.SelectNext(); got != w {
			t.Fatalf("step %d: got %v, want %v", i, got, w)
		}
	}
}

func TestEditorModel_SelectIgnoresInvalidCorner(t *testing.T) {
	m := NewEditorModel()
	m.Select(quad.Corner(99))
	if _, ok := m.Selected(); ok {
		t.Fatalf("invalid corner should not select")
	}
	m.Select(quad.BottomRight)
	if c, ok := m.Selected(); !ok || c != quad.BottomRight {
		t.Fatalf("got %v %v", c, ok)
	}
}

func TestEditorModel_DisablingEditClearsSelection(t *testing.T) {
	m := NewEditorModel()
	m.SetEditable(true)
	m.Select(quad.TopRight)
	m.SetEditable(false)
	if _, ok := m.Selected(); ok {
		t.Fatalf("selection should clear when leaving edit mode")
	}
}

func TestEditorModel_NilSafe(t *testing.T) {
	var m *EditorModel
	m.Select(quad.TopLeft)
	m.SetEditable(true)
	m.SetShowMask(true)
	m.ClearSelection()
	if m.Editable() || m.ShowMask() {
		t.Fatalf("nil model should report zero values")
	}
	if got := m.SelectNext(); got != quad.TopLeft {
		t.Fatalf("nil SelectNext should fall back to top-left, got %v", got)
	}
}
