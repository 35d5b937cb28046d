package section

// Item is a caller-owned geometry item that holds the latest cap
// artifacts for one solid. Each UpdateCap replaces both artifacts; the
// previous ones are invalid from the moment it starts. Item is not safe
// for concurrent use.
type Item struct {
	Name    string
	Solid   Solid
	Fill    *Fill
	Outline *Outline

	// Generation counts cap updates, so a holder of an older result can
	// tell it has been superseded.
	Generation uint64
}

// NewItem returns an item with no cap.
func NewItem(name string, s Solid) *Item {
	return &Item{Name: name, Solid: s}
}

// UpdateCap recomputes the cap for pl using the solid's bounding radius
// as the tolerance radius, stores it on the item and returns it.
func (it *Item) UpdateCap(pl Plane, style Style) Cap {
	it.Generation++
	it.Fill, it.Outline = nil, nil

	_, radius := it.Solid.BoundingSphere()
	c := Generate(pl, it.Solid, radius, style)
	if c.Fill != nil {
		c.Fill.Mesh.PartName = it.Name
	}
	it.Fill, it.Outline = c.Fill, c.Outline
	return c
}

// ClearCap drops both artifacts, as when the cut is switched off.
func (it *Item) ClearCap() {
	it.Generation++
	it.Fill, it.Outline = nil, nil
}

// Cap returns the artifacts currently held.
func (it *Item) Cap() Cap {
	return Cap{Fill: it.Fill, Outline: it.Outline}
}
