// Package tessellate walks a scene and produces triangle meshes using a
// geometry kernel. One mesh is produced per placed part.
package tessellate

import (
	"fmt"

	"github.com/chazu/sectioncap/pkg/kernel"
	"github.com/chazu/sectioncap/pkg/scene"
)

// frame is one placement on the way down from a root.
type frame struct {
	translation scene.Vec3
	rotation    scene.Vec3
}

// transformStack holds the placements enclosing the node being visited,
// outermost first.
type transformStack struct {
	frames []frame
}

func newTransformStack() *transformStack {
	return &transformStack{}
}

func (ts *transformStack) push(f frame) {
	ts.frames = append(ts.frames, f)
}

func (ts *transformStack) pop() {
	if len(ts.frames) > 0 {
		ts.frames = ts.frames[:len(ts.frames)-1]
	}
}

// apply places s by every frame, innermost first. Within a frame the
// rotation is applied before the translation.
func (ts *transformStack) apply(k kernel.Kernel, s kernel.Solid) kernel.Solid {
	for i := len(ts.frames) - 1; i >= 0; i-- {
		f := ts.frames[i]
		if !f.rotation.IsZero() {
			s = k.Rotate(s, f.rotation.X, f.rotation.Y, f.rotation.Z)
		}
		if !f.translation.IsZero() {
			s = k.Translate(s, f.translation.X, f.translation.Y, f.translation.Z)
		}
	}
	return s
}

// walker carries the state of one Tessellate call.
type walker struct {
	sc    *scene.Scene
	k     kernel.Kernel
	ts    *transformStack
	names map[string]int
}

// Tessellate walks the scene from its roots and produces one triangle
// mesh per placed primitive using the provided geometry kernel. A part
// placed more than once yields one mesh per placement; later copies are
// named "name#2", "name#3" and so on. The scene is never mutated.
func Tessellate(sc *scene.Scene, k kernel.Kernel) ([]*kernel.Mesh, error) {
	if sc == nil {
		return nil, nil
	}

	w := &walker{sc: sc, k: k, ts: newTransformStack(), names: make(map[string]int)}
	var meshes []*kernel.Mesh
	for _, rootID := range sc.Roots {
		root := sc.Get(rootID)
		if root == nil {
			continue
		}
		collected, err := w.walk(root)
		if err != nil {
			return nil, fmt.Errorf("tessellate: error walking root %s: %w", rootID.Short(), err)
		}
		meshes = append(meshes, collected...)
	}

	return meshes, nil
}

// walk recursively traverses a node and its children, collecting meshes.
func (w *walker) walk(n *scene.Node) ([]*kernel.Mesh, error) {
	switch n.Kind {
	case scene.NodePrimitive:
		return w.primitive(n)
	case scene.NodeTransform:
		return w.transform(n)
	case scene.NodeGroup:
		return w.children(n)
	default:
		return nil, fmt.Errorf("unknown node kind: %v", n.Kind)
	}
}

// primitive creates geometry for a primitive node.
func (w *walker) primitive(n *scene.Node) ([]*kernel.Mesh, error) {
	var solid kernel.Solid

	switch d := n.Data.(type) {
	case scene.BoxData:
		solid = w.k.Box(d.Size.X, d.Size.Y, d.Size.Z)
	case scene.CylinderData:
		solid = w.k.Cylinder(d.Height, d.Radius)
	case scene.TubeData:
		if d.Inner >= d.Outer {
			return nil, fmt.Errorf("tube node %s has inner radius %g >= outer radius %g", n.ID.Short(), d.Inner, d.Outer)
		}
		solid = w.k.Tube(d.Height, d.Outer, d.Inner)
	default:
		return nil, fmt.Errorf("primitive node %s has unsupported data type %T", n.ID.Short(), n.Data)
	}

	mesh, err := w.k.ToMesh(w.ts.apply(w.k, solid))
	if err != nil {
		return nil, fmt.Errorf("tessellate: ToMesh failed for node %s: %w", n.ID.Short(), err)
	}

	name := n.Name
	if name == "" {
		name = n.ID.Short()
	}
	w.names[name]++
	if c := w.names[name]; c > 1 {
		name = fmt.Sprintf("%s#%d", name, c)
	}
	mesh.PartName = name
	mesh.Color = scene.MaterialOf(n.Data).Color

	return []*kernel.Mesh{mesh}, nil
}

// transform pushes the placement, recurses into children, then pops.
func (w *walker) transform(n *scene.Node) ([]*kernel.Mesh, error) {
	td, ok := n.Data.(scene.TransformData)
	if !ok {
		return nil, fmt.Errorf("transform node %s has unexpected data type %T", n.ID.Short(), n.Data)
	}

	var f frame
	if td.Translation != nil {
		f.translation = *td.Translation
	}
	if td.Rotation != nil {
		f.rotation = *td.Rotation
	}

	w.ts.push(f)
	defer w.ts.pop()
	return w.children(n)
}

// children recurses into the node's children in order.
func (w *walker) children(n *scene.Node) ([]*kernel.Mesh, error) {
	var meshes []*kernel.Mesh
	for _, child := range w.sc.Children(n) {
		collected, err := w.walk(child)
		if err != nil {
			return nil, err
		}
		meshes = append(meshes, collected...)
	}
	return meshes, nil
}
