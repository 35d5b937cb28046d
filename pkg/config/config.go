// Package config reads the TOML settings that control how caps are
// styled and how finely solids are meshed.
//
// A settings file looks like:
//
//	[cap]
//	solid_fill    = true
//	fill_source   = "material"   # or "explicit"
//	fill_color    = "#999999"
//	outline_color = "#000000"
//	outline_width = 2.0
//	tiled         = false
//
//	[mesh]
//	cells = 200
//
// Keys left out keep their defaults; unknown keys are an error.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chazu/sectioncap/pkg/kernel/sdfx"
	"github.com/chazu/sectioncap/pkg/section"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
)

// Cap holds the [cap] table.
type Cap struct {
	SolidFill    bool    `toml:"solid_fill"`
	FillSource   string  `toml:"fill_source"`
	FillColor    string  `toml:"fill_color"`
	OutlineColor string  `toml:"outline_color"`
	OutlineWidth float64 `toml:"outline_width"`
	Tiled        bool    `toml:"tiled"`
}

// Mesh holds the [mesh] table.
type Mesh struct {
	Cells int `toml:"cells"` // marching cubes resolution
}

// Config is the whole settings file.
type Config struct {
	Cap  Cap  `toml:"cap"`
	Mesh Mesh `toml:"mesh"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	st := section.DefaultStyle()
	return Config{
		Cap: Cap{
			SolidFill:    st.SolidFill,
			FillSource:   st.FillSource.String(),
			FillColor:    st.FillColor.Hex(),
			OutlineColor: st.OutlineColor.Hex(),
			OutlineWidth: st.OutlineWidth,
			Tiled:        st.Tiled,
		},
		Mesh: Mesh{Cells: sdfx.DefaultMeshCells},
	}
}

// Load reads settings from a TOML file on top of the defaults.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads settings from r on top of the defaults and validates them.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("unknown settings: %s", strict.String())
		}
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Encode writes cfg as TOML.
func (c Config) Encode(w io.Writer) error {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// Validate checks every value that Style would otherwise reject.
func (c Config) Validate() error {
	_, err := c.Style()
	if err != nil {
		return err
	}
	if c.Mesh.Cells <= 0 {
		return fmt.Errorf("mesh.cells is %d, must be positive", c.Mesh.Cells)
	}
	return nil
}

// Style converts the [cap] table into the immutable style the section
// engine takes.
func (c Config) Style() (section.Style, error) {
	src, err := section.ParseFillSource(c.Cap.FillSource)
	if err != nil {
		return section.Style{}, fmt.Errorf("cap.fill_source: %w", err)
	}
	fill, err := colorful.Hex(c.Cap.FillColor)
	if err != nil {
		return section.Style{}, fmt.Errorf("cap.fill_color %q: expected #rrggbb", c.Cap.FillColor)
	}
	outline, err := colorful.Hex(c.Cap.OutlineColor)
	if err != nil {
		return section.Style{}, fmt.Errorf("cap.outline_color %q: expected #rrggbb", c.Cap.OutlineColor)
	}
	if c.Cap.OutlineWidth < 0 {
		return section.Style{}, fmt.Errorf("cap.outline_width is %g, must not be negative", c.Cap.OutlineWidth)
	}

	return section.Style{
		SolidFill:    c.Cap.SolidFill,
		FillSource:   src,
		FillColor:    fill,
		OutlineColor: outline,
		OutlineWidth: c.Cap.OutlineWidth,
		Tiled:        c.Cap.Tiled,
	}, nil
}
