package scene

// ---------------------------------------------------------------------------
// Material
// ---------------------------------------------------------------------------

// Material names a solid's material and the color its caps are filled
// with when the fill follows the material.
type Material struct {
	Name  string `json:"name,omitempty"`
	Color string `json:"color,omitempty"` // "#rrggbb"
}

// ---------------------------------------------------------------------------
// Primitives
// ---------------------------------------------------------------------------

// PrimitiveKind distinguishes between primitive shapes.
type PrimitiveKind int

const (
	PrimBox      PrimitiveKind = iota // axis-aligned box centered on the origin
	PrimCylinder                      // cylinder along Z centered on the origin
	PrimTube                          // hollow cylinder along Z
)

func (k PrimitiveKind) String() string {
	switch k {
	case PrimBox:
		return "box"
	case PrimCylinder:
		return "cylinder"
	case PrimTube:
		return "tube"
	default:
		return "unknown"
	}
}

// BoxData is a rectangular solid.
type BoxData struct {
	Size     Vec3     `json:"size"`
	Material Material `json:"material"`
}

func (BoxData) nodeData() {}

// CylinderData is a solid cylinder.
type CylinderData struct {
	Height   float64  `json:"height"`
	Radius   float64  `json:"radius"`
	Material Material `json:"material"`
}

func (CylinderData) nodeData() {}

// TubeData is a cylinder with a coaxial bore. Its cross-sections across
// the axis are annuli.
type TubeData struct {
	Height   float64  `json:"height"`
	Outer    float64  `json:"outer"` // outer radius
	Inner    float64  `json:"inner"` // bore radius
	Material Material `json:"material"`
}

func (TubeData) nodeData() {}

// PrimitiveOf returns the primitive kind of d, and false when d is not a
// primitive payload.
func PrimitiveOf(d NodeData) (PrimitiveKind, bool) {
	switch d.(type) {
	case BoxData:
		return PrimBox, true
	case CylinderData:
		return PrimCylinder, true
	case TubeData:
		return PrimTube, true
	}
	return 0, false
}

// MaterialOf returns the material carried by a primitive payload.
func MaterialOf(d NodeData) Material {
	switch p := d.(type) {
	case BoxData:
		return p.Material
	case CylinderData:
		return p.Material
	case TubeData:
		return p.Material
	}
	return Material{}
}

// ---------------------------------------------------------------------------
// Transform
// ---------------------------------------------------------------------------

// TransformData is a placement applied to the node's children.
// Created by the (place ...) form.
type TransformData struct {
	Translation *Vec3 `json:"translation,omitempty"`
	Rotation    *Vec3 `json:"rotation,omitempty"` // Euler angles in degrees
}

func (TransformData) nodeData() {}

// ---------------------------------------------------------------------------
// Group
// ---------------------------------------------------------------------------

// GroupData is a logical grouping. Created by the (assembly ...) form.
type GroupData struct {
	Description string `json:"description,omitempty"`
}

func (GroupData) nodeData() {}

// ---------------------------------------------------------------------------
// Cut
// ---------------------------------------------------------------------------

// CutPlane is the plane every part of the scene is capped with. The
// normal need not be unit length.
type CutPlane struct {
	Point  Vec3 `json:"point"`
	Normal Vec3 `json:"normal"`
}
