package config

import (
	"encoding/json"
	"os"
	"regexp"
)

// Config holds runtime configuration for the crop editor: presentation
// defaults plus the last confirmed quadrilateral. Fields may be loaded
// from a JSON file and overridden by command-line flags.
type Config struct {
	Debug bool `json:"debug"`

	// Outline / handle presentation
	StrokeColor             string  `json:"stroke_color"` // #rrggbb
	StrokeWidth             float64 `json:"stroke_width"`
	HandleSizePx            float64 `json:"handle_size_px"`
	HighlightedHandleSizePx float64 `json:"highlighted_handle_size_px"`
	Magnification           float64 `json:"magnification"`
	ShowBoundaryMask        bool    `json:"show_boundary_mask"`

	// Last confirmed quadrilateral, in normalized [0,1] surface
	// coordinates so it restores onto any image size. All-zero means
	// no quadrilateral has been persisted.
	QuadTLX float64 `json:"quad_tl_x"`
	QuadTLY float64 `json:"quad_tl_y"`
	QuadTRX float64 `json:"quad_tr_x"`
	QuadTRY float64 `json:"quad_tr_y"`
	QuadBRX float64 `json:"quad_br_x"`
	QuadBRY float64 `json:"quad_br_y"`
	QuadBLX float64 `json:"quad_bl_x"`
	QuadBLY float64 `json:"quad_bl_y"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:                   false,
		StrokeColor:             "#ffffff",
		StrokeWidth:             1,
		HandleSizePx:            75,
		HighlightedHandleSizePx: 175,
		Magnification:           2.5,
		ShowBoundaryMask:        false,
	}
}

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if !hexColorRe.MatchString(c.StrokeColor) {
		c.StrokeColor = "#ffffff"
	}
	if c.StrokeWidth <= 0 || c.StrokeWidth > 20 {
		c.StrokeWidth = 1
	}
	if c.HandleSizePx < 10 || c.HandleSizePx > 300 {
		c.HandleSizePx = 75
	}
	if c.HighlightedHandleSizePx < c.HandleSizePx || c.HighlightedHandleSizePx > 400 {
		c.HighlightedHandleSizePx = 175
	}
	if c.Magnification < 1 || c.Magnification > 10 {
		c.Magnification = 2.5
	}
	clamp01 := func(v *float64) {
		if *v < 0 {
			*v = 0
		}
		if *v > 1 {
			*v = 1
		}
	}
	for _, v := range []*float64{
		&c.QuadTLX, &c.QuadTLY, &c.QuadTRX, &c.QuadTRY,
		&c.QuadBRX, &c.QuadBRY, &c.QuadBLX, &c.QuadBLY,
	} {
		clamp01(v)
	}
	return nil
}

// HasQuad reports whether a persisted quadrilateral is present.
func (c *Config) HasQuad() bool {
	return c.QuadTLX != 0 || c.QuadTLY != 0 || c.QuadTRX != 0 || c.QuadTRY != 0 ||
		c.QuadBRX != 0 || c.QuadBRY != 0 || c.QuadBLX != 0 || c.QuadBLY != 0
}

// ClearQuad resets the persisted quadrilateral to the unset state.
func (c *Config) ClearQuad() {
	c.QuadTLX, c.QuadTLY = 0, 0
	c.QuadTRX, c.QuadTRY = 0, 0
	c.QuadBRX, c.QuadBRY = 0, 0
	c.QuadBLX, c.QuadBLY = 0, 0
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
