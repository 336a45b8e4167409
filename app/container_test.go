package app

import (
	"log/slog"
	"testing"

	"github.com/soocke/quad-crop-go/config"
	"github.com/soocke/quad-crop-go/domain/quad"
)

func buildTestContainer(t *testing.T, cfg *config.Config) *AppContainer {
	t.Helper()
	return BuildContainer(cfg, slog.New(slog.DiscardHandler), "", "", nil)
}

func TestBuildContainer_AppliesPersistedMaskFlag(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ShowBoundaryMask = true
	c := buildTestContainer(t, cfg)
	if !c.Editor.ShowBoundaryMask() {
		t.Fatalf("editor should start with the persisted mask flag")
	}
	if !c.Model.ShowMask() {
		t.Fatalf("model should start with the persisted mask flag")
	}

	c = buildTestContainer(t, config.DefaultConfig())
	if c.Editor.ShowBoundaryMask() || c.Model.ShowMask() {
		t.Fatalf("mask flag should default to off")
	}
}

func TestBuildContainer_RestoresPersistedQuad(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.QuadTLX, cfg.QuadTLY = 0.25, 0.25
	cfg.QuadTRX, cfg.QuadTRY = 0.75, 0.25
	cfg.QuadBRX, cfg.QuadBRY = 0.75, 0.75
	cfg.QuadBLX, cfg.QuadBLY = 0.25, 0.75
	c := buildTestContainer(t, cfg)

	q, ok := c.Editor.Quadrilateral()
	if !ok {
		t.Fatalf("persisted quadrilateral not restored")
	}
	bounds := c.Editor.Bounds()
	want := quad.Pt(0.25*bounds.W, 0.25*bounds.H)
	if got := q.Point(quad.TopLeft); got != want {
		t.Fatalf("restored top-left %v, want %v", got, want)
	}
}

func TestPersistSession_SavesMaskAndQuad(t *testing.T) {
	cfg := config.DefaultConfig()
	c := buildTestContainer(t, cfg)
	c.EditorPresenter.ToggleMask()

	persistSession(cfg, c)
	if !cfg.ShowBoundaryMask {
		t.Fatalf("toggled mask flag not persisted")
	}
	if !cfg.HasQuad() {
		t.Fatalf("quadrilateral not persisted")
	}
	// Default inset is a tenth of the smaller dimension, normalized
	// per axis.
	bounds := c.Editor.Bounds()
	margin := bounds.W
	if bounds.H < margin {
		margin = bounds.H
	}
	margin *= 0.1
	if got, want := cfg.QuadTLX, margin/bounds.W; got != want {
		t.Fatalf("normalized top-left x %v, want %v", got, want)
	}
	if got, want := cfg.QuadTLY, margin/bounds.H; got != want {
		t.Fatalf("normalized top-left y %v, want %v", got, want)
	}
}

func TestPersistSession_ClearsRemovedQuad(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.QuadBRX, cfg.QuadBRY = 0.9, 0.9
	c := buildTestContainer(t, cfg)
	c.EditorPresenter.ClearQuad()

	persistSession(cfg, c)
	if cfg.HasQuad() {
		t.Fatalf("removed quadrilateral should clear the persisted corners")
	}
}
