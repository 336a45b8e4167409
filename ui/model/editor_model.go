package model

import (
	"github.com/soocke/quad-crop-go/domain/quad"
)

// EditorModel tracks UI-side editing state: which corner is selected for
// keyboard adjustment and the current mode flags. The zero value is usable.
// No synchronization needed: updates occur on the UI thread.
type EditorModel struct {
	selected    quad.Corner
	hasSelected bool
	editable    bool
	showMask    bool
}

func NewEditorModel() *EditorModel { return &EditorModel{} }

// Selected returns the currently selected corner, if any.
func (m *EditorModel) Selected() (quad.Corner, bool) {
	if m == nil {
		return 0, false
	}
	return m.selected, m.hasSelected
}

// Select picks a corner for subsequent nudge operations. Invalid corners
// are ignored.
func (m *EditorModel) Select(c quad.Corner) {
	if m == nil || !c.Valid() {
		return
	}
	m.selected = c
	m.hasSelected = true
}

// SelectNext advances the selection clockwise from top-left, wrapping
// around. With no prior selection it picks the top-left corner.
func (m *EditorModel) SelectNext() quad.Corner {
	if m == nil {
		return quad.TopLeft
	}
	if !m.hasSelected {
		m.selected = quad.TopLeft
		m.hasSelected = true
		return m.selected
	}
	m.selected = quad.Corner((int(m.selected) + 1) % len(quad.Corners))
	return m.selected
}

// ClearSelection drops the current corner selection.
func (m *EditorModel) ClearSelection() {
	if m == nil {
		return
	}
	m.hasSelected = false
}

// Editable reports whether edit mode is on.
func (m *EditorModel) Editable() bool { return m != nil && m.editable }

// SetEditable stores the edit mode flag.
func (m *EditorModel) SetEditable(b bool) {
	if m == nil {
		return
	}
	m.editable = b
	if !b {
		m.hasSelected = false
	}
}

// ShowMask reports whether the boundary mask flag is on.
func (m *EditorModel) ShowMask() bool { return m != nil && m.showMask }

// SetShowMask stores the boundary mask flag.
func (m *EditorModel) SetShowMask(b bool) {
	if m == nil {
		return
	}
	m.showMask = b
}
