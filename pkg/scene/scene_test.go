package scene

import "testing"

func TestNewScene(t *testing.T) {
	s := New()
	if s.Nodes == nil {
		t.Fatal("Nodes map should be initialized")
	}
	if s.NameIndex == nil {
		t.Fatal("NameIndex map should be initialized")
	}
	if s.Cut != nil {
		t.Error("new scene should have no cut plane")
	}
	if s.NodeCount() != 0 {
		t.Errorf("empty scene should have 0 nodes, got %d", s.NodeCount())
	}
}

func TestAddNodeAndLookup(t *testing.T) {
	s := New()

	id := NewNodeID("defpart/pipe")
	s.AddNode(&Node{
		ID:   id,
		Kind: NodePrimitive,
		Name: "pipe",
		Data: TubeData{Height: 40, Outer: 10, Inner: 8, Material: Material{Name: "copper", Color: "#b87333"}},
	})
	s.AddRoot(id)

	if s.NodeCount() != 1 {
		t.Errorf("node count = %d, want 1", s.NodeCount())
	}

	found := s.Lookup("pipe")
	if found == nil {
		t.Fatal("Lookup('pipe') returned nil")
	}
	if found.ID != id {
		t.Errorf("lookup returned wrong node")
	}
	if s.MustLookup("pipe").ID != id {
		t.Errorf("MustLookup returned wrong node")
	}
	if s.Lookup("nonexistent") != nil {
		t.Error("Lookup should return nil for missing name")
	}
	if got := s.Get(id); got == nil || got.Name != "pipe" {
		t.Errorf("Get by ID failed")
	}
	if len(s.Roots) != 1 || s.Roots[0] != id {
		t.Errorf("roots = %v, want [%s]", s.Roots, id.Short())
	}
	if parts := s.Parts(); len(parts) != 1 {
		t.Errorf("parts = %d, want 1", len(parts))
	}
}

func TestMustLookupPanics(t *testing.T) {
	s := New()
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustLookup should panic for a missing name")
		}
	}()
	s.MustLookup("ghost")
}

func TestChildrenSkipsMissing(t *testing.T) {
	s := New()
	a := NewNodeID("defpart/a")
	s.AddNode(&Node{ID: a, Kind: NodePrimitive, Name: "a", Data: BoxData{Size: Vec3{1, 1, 1}}})
	group := &Node{
		ID:       NewNodeID("assembly/g"),
		Kind:     NodeGroup,
		Children: []NodeID{a, NewNodeID("missing")},
		Data:     GroupData{},
	}
	s.AddNode(group)

	children := s.Children(group)
	if len(children) != 1 || children[0].ID != a {
		t.Errorf("children = %v, want only a", children)
	}
}

func TestSetCut(t *testing.T) {
	s := New()
	c := CutPlane{Point: Vec3{0, 0, 5}, Normal: Vec3{0, 0, 1}}
	s.SetCut(c)
	c.Point.Z = 99
	if s.Cut == nil || s.Cut.Point.Z != 5 {
		t.Errorf("cut = %+v, want point z=5", s.Cut)
	}
}
