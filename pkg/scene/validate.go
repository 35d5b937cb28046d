package scene

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ValidationSeverity indicates whether a validation finding blocks
// capping or is merely informational.
type ValidationSeverity int

const (
	SeverityError   ValidationSeverity = iota // blocks capping
	SeverityWarning                           // informational
)

func (s ValidationSeverity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("ValidationSeverity(%d)", int(s))
	}
}

// ValidationError describes a single validation finding.
type ValidationError struct {
	NodeID   NodeID             // which node has the problem (zero if scene-level)
	Message  string             // human-readable description
	Severity ValidationSeverity // error or warning
}

func (e ValidationError) Error() string {
	if e.NodeID.IsZero() {
		return fmt.Sprintf("[%s] %s", e.Severity, e.Message)
	}
	return fmt.Sprintf("[%s] node %s: %s", e.Severity, e.NodeID.Short(), e.Message)
}

// HasErrors reports whether any finding has error severity.
func HasErrors(findings []ValidationError) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Validate runs the structural and geometric checks on the scene and
// returns every finding. An empty slice means the scene is valid. It
// never mutates the scene.
func Validate(s *Scene) []ValidationError {
	var errs []ValidationError
	errs = append(errs, validateDAG(s)...)
	errs = append(errs, validateReferences(s)...)
	errs = append(errs, validateNames(s)...)
	errs = append(errs, validateRoots(s)...)
	errs = append(errs, validateDimensions(s)...)
	errs = append(errs, validateMaterials(s)...)
	errs = append(errs, validateCut(s)...)
	return errs
}

// validateDAG checks for cycles using DFS with 3-color marking.
// White (0) = unvisited, gray (1) = on the current path, black (2) = done.
func validateDAG(s *Scene) []ValidationError {
	const (
		white = iota
		gray
		black
	)

	color := make(map[NodeID]int)
	var errs []ValidationError

	var visit func(id NodeID) bool // true if a cycle was found
	visit = func(id NodeID) bool {
		switch color[id] {
		case black:
			return false
		case gray:
			errs = append(errs, ValidationError{
				NodeID:   id,
				Message:  fmt.Sprintf("cycle detected: node %s is part of a cycle", id.Short()),
				Severity: SeverityError,
			})
			return true
		}

		color[id] = gray
		node, ok := s.Nodes[id]
		if !ok {
			// Dangling; reported by validateReferences.
			color[id] = black
			return false
		}
		for _, childID := range node.Children {
			if visit(childID) {
				return true
			}
		}
		color[id] = black
		return false
	}

	for id := range s.Nodes {
		if color[id] == white && visit(id) {
			break
		}
	}
	return errs
}

// validateReferences checks that every child reference exists.
func validateReferences(s *Scene) []ValidationError {
	var errs []ValidationError
	for _, node := range s.Nodes {
		for _, childID := range node.Children {
			if _, ok := s.Nodes[childID]; !ok {
				errs = append(errs, ValidationError{
					NodeID:   node.ID,
					Message:  fmt.Sprintf("child reference %s does not exist", childID.Short()),
					Severity: SeverityError,
				})
			}
		}
	}
	return errs
}

// validateNames checks that the NameIndex is injective and that every
// entry points to an existing node.
func validateNames(s *Scene) []ValidationError {
	var errs []ValidationError

	for name, id := range s.NameIndex {
		if _, ok := s.Nodes[id]; !ok {
			errs = append(errs, ValidationError{
				Message:  fmt.Sprintf("name index entry %q references non-existent node %s", name, id.Short()),
				Severity: SeverityError,
			})
		}
	}

	nameToNodes := make(map[string][]NodeID)
	for id, node := range s.Nodes {
		if node.Name != "" {
			nameToNodes[node.Name] = append(nameToNodes[node.Name], id)
		}
	}
	for name, ids := range nameToNodes {
		if len(ids) > 1 {
			errs = append(errs, ValidationError{
				Message:  fmt.Sprintf("duplicate name %q assigned to %d nodes", name, len(ids)),
				Severity: SeverityError,
			})
		}
	}
	return errs
}

// validateRoots checks that every root exists and warns about nodes no
// root reaches; those are never tessellated or capped.
func validateRoots(s *Scene) []ValidationError {
	var errs []ValidationError

	for _, rid := range s.Roots {
		if _, ok := s.Nodes[rid]; !ok {
			errs = append(errs, ValidationError{
				Message:  fmt.Sprintf("root reference %s does not exist", rid.Short()),
				Severity: SeverityError,
			})
		}
	}
	if len(s.Nodes) == 0 {
		return errs
	}

	reachable := make(map[NodeID]bool)
	queue := make([]NodeID, 0, len(s.Roots))
	for _, rid := range s.Roots {
		if _, ok := s.Nodes[rid]; ok && !reachable[rid] {
			reachable[rid] = true
			queue = append(queue, rid)
		}
	}
	for len(queue) > 0 {
		node := s.Nodes[queue[0]]
		queue = queue[1:]
		if node == nil {
			continue
		}
		for _, childID := range node.Children {
			if !reachable[childID] {
				reachable[childID] = true
				queue = append(queue, childID)
			}
		}
	}

	for id, node := range s.Nodes {
		if reachable[id] {
			continue
		}
		name := node.Name
		if name == "" {
			name = id.Short()
		}
		errs = append(errs, ValidationError{
			NodeID:   id,
			Message:  fmt.Sprintf("node %q is not reachable from any root (orphan)", name),
			Severity: SeverityWarning,
		})
	}
	return errs
}

// validateDimensions checks that every primitive has positive extents
// and that tube bores are narrower than the tube.
func validateDimensions(s *Scene) []ValidationError {
	var errs []ValidationError
	positive := func(node *Node, what string, v float64) {
		if v <= 0 || math.IsNaN(v) {
			errs = append(errs, ValidationError{
				NodeID:   node.ID,
				Message:  fmt.Sprintf("%s is %.4f, must be positive", what, v),
				Severity: SeverityError,
			})
		}
	}

	for _, node := range s.Nodes {
		switch d := node.Data.(type) {
		case BoxData:
			positive(node, "box size X", d.Size.X)
			positive(node, "box size Y", d.Size.Y)
			positive(node, "box size Z", d.Size.Z)
		case CylinderData:
			positive(node, "cylinder height", d.Height)
			positive(node, "cylinder radius", d.Radius)
		case TubeData:
			positive(node, "tube height", d.Height)
			positive(node, "tube outer radius", d.Outer)
			positive(node, "tube inner radius", d.Inner)
			if d.Inner >= d.Outer {
				errs = append(errs, ValidationError{
					NodeID:   node.ID,
					Message:  fmt.Sprintf("tube inner radius %.4f must be less than outer radius %.4f", d.Inner, d.Outer),
					Severity: SeverityError,
				})
			}
		}
	}
	return errs
}

// validateMaterials warns about material colors that cannot be parsed;
// such parts fall back to the explicit fill color.
func validateMaterials(s *Scene) []ValidationError {
	var errs []ValidationError
	for _, node := range s.Nodes {
		if _, ok := PrimitiveOf(node.Data); !ok {
			continue
		}
		m := MaterialOf(node.Data)
		if m.Color == "" {
			continue
		}
		if _, err := colorful.Hex(m.Color); err != nil {
			errs = append(errs, ValidationError{
				NodeID:   node.ID,
				Message:  fmt.Sprintf("material color %q is not #rrggbb", m.Color),
				Severity: SeverityWarning,
			})
		}
	}
	return errs
}

// validateCut checks the cut plane's normal. A scene without a cut is
// valid but produces no caps.
func validateCut(s *Scene) []ValidationError {
	if s.Cut == nil {
		if len(s.Nodes) == 0 {
			return nil
		}
		return []ValidationError{{
			Message:  "scene has no cut plane",
			Severity: SeverityWarning,
		}}
	}
	n := s.Cut.Normal
	l := math.Sqrt(n.X*n.X + n.Y*n.Y + n.Z*n.Z)
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return []ValidationError{{
			Message:  fmt.Sprintf("cut plane normal (%g, %g, %g) has no direction", n.X, n.Y, n.Z),
			Severity: SeverityError,
		}}
	}
	return nil
}
