package app

import (
	"fmt"
	"log/slog"
	"time"

	. "modernc.org/tk9.0"

	"github.com/soocke/quad-crop-go/config"
	"github.com/soocke/quad-crop-go/ui/theme"
	"github.com/soocke/quad-crop-go/ui/view"
)

type app struct {
	config    *config.Config
	cfgPath   string
	imagePath string
	logger    *slog.Logger
	width     int
	height    int

	container *AppContainer
}

func NewApp(title string, width, height int, cfg *config.Config, logger *slog.Logger, cfgPath, imagePath string) *app {
	a := &app{config: cfg, cfgPath: cfgPath, imagePath: imagePath, logger: logger, width: width, height: height}

	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", width, height))
	return a
}

// Start builds the widget tree, wires the presenters and enters the Tk
// event loop. It blocks until the window is closed.
func (a *app) Start() {
	theme.InitStyles()

	schedule := func(d time.Duration, fn func()) { TclAfter(d, fn) }
	a.container = BuildContainer(a.config, a.logger, a.cfgPath, a.imagePath, schedule)

	ep := a.container.EditorPresenter
	a.container.RootView.Build(view.Handlers{
		ToggleEdit: ep.ToggleEdit,
		ToggleMask: ep.ToggleMask,
		Reset:      ep.ResetQuad,
		Clear:      ep.ClearQuad,
		Capture:    a.container.SourcePresenter.Capture,
		Exit:       a.exitHandler,
		NextCorner: ep.SelectNext,
		Nudge:      ep.Nudge,
		Deselect:   ep.Deselect,
		StyleApplied: func() {
			a.container.Editor.SetStyle(styleFromConfig(a.config))
			ep.Refresh()
		},
	})

	// First frame after the widgets exist; the style panel starts
	// disabled because the session opens in view mode.
	a.container.RootView.SetStyleEditable(false)
	ep.Refresh()

	App.Wait()
}

// exitHandler persists the session state (quadrilateral and mask flag)
// and tears the window down.
func (a *app) exitHandler() {
	if a.container != nil && a.config != nil {
		persistSession(a.config, a.container)
		if err := a.config.Save(a.cfgPath); err != nil && a.logger != nil {
			a.logger.Error("config save on exit failed", "error", err)
		}
	}
	Destroy(App)
}

// persistSession copies the editing state that survives a restart into cfg.
func persistSession(cfg *config.Config, c *AppContainer) {
	if cfg == nil || c == nil {
		return
	}
	if c.Model != nil {
		cfg.ShowBoundaryMask = c.Model.ShowMask()
	}
	if c.Editor != nil {
		if q, ok := c.Editor.Quadrilateral(); ok {
			quadToConfig(cfg, q, c.Editor.Bounds())
		} else {
			cfg.ClearQuad()
		}
	}
}
