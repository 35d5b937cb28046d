package main

import (
	"fmt"
	"log/slog"

	"github.com/chazu/sectioncap/pkg/engine"
	"github.com/chazu/sectioncap/pkg/kernel"
	"github.com/chazu/sectioncap/pkg/kernel/sdfx"
	"github.com/chazu/sectioncap/pkg/scene"
	"github.com/chazu/sectioncap/pkg/section"
	"github.com/chazu/sectioncap/pkg/tessellate"
)

// App runs scene scripts through the full pipeline: evaluate, validate,
// tessellate and cap every part with the scene's cut plane. Items are
// kept between runs so a part's cap generation keeps counting.
type App struct {
	engine *engine.Engine
	kernel kernel.Kernel
	style  section.Style
	log    *slog.Logger
	items  map[string]*section.Item
}

// MessageData is a JSON-serializable error or warning.
type MessageData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// FillData is the JSON form of a cap fill.
type FillData struct {
	Mesh      *kernel.Mesh `json:"mesh"`
	Color     string       `json:"color"`
	Tiled     bool         `json:"tiled"`
	Frequency float64      `json:"frequency,omitempty"` // texture cycles per unit
}

// OutlineData is the JSON form of a cap outline.
type OutlineData struct {
	Lines []float32 `json:"lines"` // 6 floats per line segment
	Loops int       `json:"loops"`
	Width float64   `json:"width"`
	Color string    `json:"color"`
}

// PartCap is the cap of one tessellated part.
type PartCap struct {
	Name       string       `json:"name"`
	Generation uint64       `json:"generation"`
	Fill       *FillData    `json:"fill,omitempty"`
	Outline    *OutlineData `json:"outline,omitempty"`
}

// CapResult is the full result of one run.
type CapResult struct {
	Plane    *section.Plane `json:"plane,omitempty"`
	Parts    []PartCap      `json:"parts"`
	Errors   []MessageData  `json:"errors"`
	Warnings []MessageData  `json:"warnings"`
}

// OK reports whether the run produced caps without errors.
func (r CapResult) OK() bool {
	return len(r.Errors) == 0
}

// NewApp creates an App meshing with the sdfx kernel at the given
// resolution and capping with style.
func NewApp(style section.Style, cells int, log *slog.Logger) *App {
	if log == nil {
		log = section.Logger()
	}
	return &App{
		engine: engine.NewEngine(),
		kernel: sdfx.NewWithCells(cells),
		style:  style,
		log:    log,
		items:  make(map[string]*section.Item),
	}
}

// Check evaluates and validates source without meshing it.
func (a *App) Check(source string) CapResult {
	result := newCapResult()
	res, err := a.engine.Check(source)
	if err != nil {
		a.log.Error("evaluate failed", "err", err)
		result.Errors = append(result.Errors, MessageData{Message: err.Error()})
		return result
	}
	collectMessages(&result, res)
	return result
}

// Cap evaluates source and caps every part with the scene's cut plane.
func (a *App) Cap(source string) CapResult {
	result := newCapResult()

	// Step 1: evaluate and validate the script.
	res, err := a.engine.Check(source)
	if err != nil {
		a.log.Error("evaluate failed", "err", err)
		result.Errors = append(result.Errors, MessageData{Message: err.Error()})
		return result
	}
	collectMessages(&result, res)
	if !res.OK() {
		return result
	}

	sc := res.Scene
	if sc.Cut == nil {
		if len(sc.Nodes) > 0 {
			result.Errors = append(result.Errors, MessageData{
				Message: "nothing to cap: the scene has no (cut ...) plane",
			})
		}
		return result
	}
	pl := planeOf(sc.Cut)
	result.Plane = &pl

	// Step 2: tessellate every placed part.
	meshes, err := tessellate.Tessellate(sc, a.kernel)
	if err != nil {
		a.log.Error("tessellate failed", "err", err)
		result.Errors = append(result.Errors, MessageData{
			Message: "tessellation failed: " + err.Error(),
		})
		return result
	}
	a.log.Debug("tessellated scene", "parts", len(meshes), "version", sc.Version)

	// Step 3: cap each part, reusing the item from the previous run.
	seen := make(map[string]bool, len(meshes))
	for _, m := range meshes {
		seen[m.PartName] = true
		it, ok := a.items[m.PartName]
		if !ok {
			it = section.NewItem(m.PartName, nil)
			a.items[m.PartName] = it
		}
		solid := section.FromMesh(m)
		it.Solid = solid

		c := it.UpdateCap(pl, a.style)
		_, radius := solid.BoundingSphere()
		result.Parts = append(result.Parts, partCap(it, c, radius))
	}
	for name := range a.items {
		if !seen[name] {
			delete(a.items, name)
		}
	}

	return result
}

// Item returns the item held for a part, or nil.
func (a *App) Item(name string) *section.Item {
	return a.items[name]
}

func newCapResult() CapResult {
	return CapResult{
		Parts:    []PartCap{},
		Errors:   []MessageData{},
		Warnings: []MessageData{},
	}
}

func collectMessages(result *CapResult, res engine.EvalResult) {
	for _, e := range res.Errors {
		result.Errors = append(result.Errors, MessageData{
			Line:    e.Line,
			Col:     e.Col,
			Message: e.Message,
		})
	}
	for _, w := range res.Warnings {
		result.Warnings = append(result.Warnings, MessageData{
			Line:    w.Line,
			Col:     w.Col,
			Message: w.Message,
		})
	}
}

func planeOf(c *scene.CutPlane) section.Plane {
	return section.Plane{Point: c.Point.V3(), Normal: c.Normal.V3()}
}

func partCap(it *section.Item, c section.Cap, radius float64) PartCap {
	pc := PartCap{Name: it.Name, Generation: it.Generation}
	if c.Fill != nil {
		fd := &FillData{
			Mesh:  c.Fill.Mesh,
			Color: c.Fill.Color.Hex(),
			Tiled: c.Fill.Tiled,
		}
		if c.Fill.Tiled {
			fd.Frequency = section.TileFrequency(radius)
		}
		pc.Fill = fd
	}
	if c.Outline != nil {
		pc.Outline = &OutlineData{
			Lines: c.Outline.Lines,
			Loops: len(c.Outline.Loops),
			Width: c.Outline.Width,
			Color: c.Outline.Color.Hex(),
		}
	}
	return pc
}

func (pc PartCap) String() string {
	return fmt.Sprintf("%s: %d fill triangles, %d outline loops (generation %d)",
		pc.Name, pc.fillTriangles(), pc.outlineLoops(), pc.Generation)
}

func (pc PartCap) fillTriangles() int {
	if pc.Fill == nil || pc.Fill.Mesh == nil {
		return 0
	}
	return pc.Fill.Mesh.TriangleCount()
}

func (pc PartCap) outlineLoops() int {
	if pc.Outline == nil {
		return 0
	}
	return pc.Outline.Loops
}
