package view

import (
	"image"
	"log/slog"

	"github.com/soocke/quad-crop-go/config"
	"github.com/soocke/quad-crop-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the top-level application layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for presenters.
type RootView struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger

	// Subviews
	StylePanel StylePanel
	Preview    EditorPreview

	// Widgets
	ModeLabel  *LabelWidget
	previewRow int
}

// UI abstracts the subset of view operations needed by presenters, enabling decoupling
// from the concrete RootView implementation.
type UI interface {
	SetModeLabel(text string)
	SetStyleEditable(enabled bool)
	UpdateScene(img image.Image)
	UpdateMagnifier(img image.Image)
	PreviewReset()
}

// Handlers bundles the user action callbacks wired during Build. Nudge
// receives a direction in corner steps, one unit per arrow keypress.
type Handlers struct {
	ToggleEdit   func()
	ToggleMask   func()
	Reset        func()
	Clear        func()
	Capture      func()
	Exit         func()
	NextCorner   func()
	Nudge        func(dx, dy float64)
	Deselect     func()
	StyleApplied func()
}

func NewRootView(cfg *config.Config, cfgPath string, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, cfgPath: cfgPath, logger: logger}
}

// Build constructs the layout and binds the keyboard interactions:
// Tab cycles the selected corner, arrow keys nudge it, Escape deselects.
func (rv *RootView) Build(h Handlers) {
	if rv == nil {
		return
	}
	// Row 0: mode label plus the action buttons frame
	rv.ModeLabel = Label(Txt("Mode: view"), Style(theme.StyleModeLabel))
	Grid(rv.ModeLabel, Row(0), Column(0), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	btnFrame := Frame()
	Grid(btnFrame, Row(0), Column(4), Sticky("ne"), Padx("0.3m"), Pady("0.3m"))
	buttons := []struct {
		label string
		style string
		fn    func()
	}{
		{"Toggle Edit", theme.StylePrimaryButton, h.ToggleEdit},
		{"Toggle Mask", theme.StylePrimaryButton, h.ToggleMask},
		{"Reset Corners", theme.StylePrimaryButton, h.Reset},
		{"Clear Corners", theme.StyleDangerButton, h.Clear},
		{"Capture Screen", theme.StylePrimaryButton, h.Capture},
		{"Exit", theme.StyleDangerButton, h.Exit},
	}
	for i, b := range buttons {
		fn := b.fn
		if fn == nil {
			fn = func() {}
		}
		btn := Button(Txt(b.label), Command(fn), Style(b.style))
		Grid(btn, In(btnFrame), Row(i), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	}

	// Style panel rows
	applied := h.StyleApplied
	if applied == nil {
		applied = func() {}
	}
	rv.StylePanel = NewStylePanel(rv.cfg, rv.cfgPath, rv.logger, applied)
	endRow := rv.StylePanel.Build(1)
	rv.previewRow = endRow

	// Preview placement
	rv.Preview = NewEditorPreview(rv.previewRow)

	// Keyboard interactions bind on the toplevel so they work without
	// focusing a specific widget.
	if h.NextCorner != nil {
		Bind(App, "<Tab>", Command(h.NextCorner))
	}
	if h.Nudge != nil {
		nudge := h.Nudge
		Bind(App, "<Left>", Command(func() { nudge(-1, 0) }))
		Bind(App, "<Right>", Command(func() { nudge(1, 0) }))
		Bind(App, "<Up>", Command(func() { nudge(0, -1) }))
		Bind(App, "<Down>", Command(func() { nudge(0, 1) }))
	}
	if h.Deselect != nil {
		Bind(App, "<Escape>", Command(h.Deselect))
	}
}

// SetModeLabel updates the edit mode label text.
func (rv *RootView) SetModeLabel(text string) {
	if rv != nil && rv.ModeLabel != nil {
		rv.ModeLabel.Configure(Txt(text))
	}
}

// SetStyleEditable toggles style panel editability.
func (rv *RootView) SetStyleEditable(enabled bool) {
	if rv != nil && rv.StylePanel != nil {
		rv.StylePanel.SetEditable(enabled)
	}
}

// UpdateScene proxies to the underlying preview view.
func (rv *RootView) UpdateScene(img image.Image) {
	if rv != nil && rv.Preview != nil {
		rv.Preview.UpdateScene(img)
	}
}

// UpdateMagnifier proxies to the underlying preview view.
func (rv *RootView) UpdateMagnifier(img image.Image) {
	if rv != nil && rv.Preview != nil {
		rv.Preview.UpdateMagnifier(img)
	}
}

// PreviewReset clears the preview labels.
func (rv *RootView) PreviewReset() {
	if rv != nil && rv.Preview != nil {
		rv.Preview.Reset()
	}
}
