package view

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/soocke/quad-crop-go/config"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// StylePanel encapsulates the outline/handle style form widgets and apply logic.
// It owns its widgets and writes back into *config.Config on ApplyChanges.
type StylePanel interface {
	Build(startRow int) (endRow int) // constructs widgets starting at startRow, returns next free row
	SetEditable(enabled bool)
	ApplyChanges() // parses widget text into underlying config, persists and notifies
}

type stylePanel struct {
	cfg       *config.Config
	cfgPath   string
	logger    *slog.Logger
	onApplied func()
	applyBtn  *ButtonWidget
	widgets   map[string]*TextWidget // keyed by internal field id
}

// NewStylePanel creates the view bound to cfg. onApplied fires after a
// successful apply so the presenter can push the new style to the editor.
func NewStylePanel(cfg *config.Config, cfgPath string, logger *slog.Logger, onApplied func()) StylePanel {
	return &stylePanel{cfg: cfg, cfgPath: cfgPath, logger: logger, onApplied: onApplied, widgets: make(map[string]*TextWidget)}
}

func (v *stylePanel) Build(startRow int) (row int) {
	c := v.cfg
	row = startRow
	makeRow := func(id, label, value string) {
		lbl := Label(Txt(label), Anchor("w"))
		Grid(lbl, Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		w := Text(Height(1), Width(16))
		Grid(w, Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		w.Delete("1.0", END)
		w.Insert("1.0", value)
		v.widgets[id] = w
		row++
	}
	makeRow("strokeColor", "Stroke Color (#rrggbb)", c.StrokeColor)
	makeRow("strokeWidth", "Stroke Width", fmt.Sprintf("%.1f", c.StrokeWidth))
	makeRow("handleSizePx", "Handle Size Px", fmt.Sprintf("%.0f", c.HandleSizePx))
	makeRow("highlightedHandleSizePx", "Highlighted Handle Size Px", fmt.Sprintf("%.0f", c.HighlightedHandleSizePx))
	makeRow("magnification", "Magnification", fmt.Sprintf("%.2f", c.Magnification))
	v.applyBtn = Button(Txt("Apply Style"), Command(func() { v.ApplyChanges() }))
	Grid(v.applyBtn, Row(row), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	row++
	return row
}

func (v *stylePanel) SetEditable(enabled bool) {
	state := "disabled"
	if enabled {
		state = "normal"
	}
	for _, w := range v.widgets {
		if w != nil {
			w.Configure(State(state))
		}
	}
	if v.applyBtn != nil {
		v.applyBtn.Configure(State(state))
	}
}

func (v *stylePanel) text(w *TextWidget) string {
	if w == nil {
		return ""
	}
	parts := w.Get("1.0", END)
	return strings.Join(parts, "")
}

func (v *stylePanel) ApplyChanges() {
	if v.cfg == nil {
		return
	}
	cfg := *v.cfg // copy
	assignFloat := func(id string, dst *float64) {
		w := v.widgets[id]
		if w == nil {
			return
		}
		if f, ok := parseFloatField(strings.TrimSpace(v.text(w))); ok {
			*dst = f
		}
	}
	assignFloat("strokeWidth", &cfg.StrokeWidth)
	assignFloat("handleSizePx", &cfg.HandleSizePx)
	assignFloat("highlightedHandleSizePx", &cfg.HighlightedHandleSizePx)
	assignFloat("magnification", &cfg.Magnification)
	if w := v.widgets["strokeColor"]; w != nil {
		val := strings.TrimSpace(v.text(w))
		if val != "" {
			cfg.StrokeColor = val
		}
	}
	if verr := cfg.Validate(); verr != nil {
		return
	}
	*v.cfg = cfg
	if err := v.cfg.Save(v.cfgPath); err != nil {
		if v.logger != nil {
			v.logger.Error("config save failed", "error", err)
		}
	} else {
		if v.logger != nil {
			v.logger.Info("config saved", "path", v.cfgPath)
		}
	}
	if v.onApplied != nil {
		v.onApplied()
	}
}

// parsing helper (unexported)
func parseFloatField(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
