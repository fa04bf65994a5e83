package tree_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/tbraz/linknet/pkg/tree"
)

// scenario builds the reference topology used across the tests:
//
//	hubA
//	  lhubA
//	    lleafA
//	    lleafB
//	  leafA
//	hubB
//	  leafAA
func scenario() *tree.Tree {
	return tree.Import(
		&tree.Node{Name: "hubA", Children: []*tree.Node{
			{Name: "lhubA", Children: []*tree.Node{
				{Name: "lleafA"},
				{Name: "lleafB"},
			}},
			{Name: "leafA"},
		}},
		&tree.Node{Name: "hubB", Children: []*tree.Node{
			{Name: "leafAA"},
		}},
	)
}

func TestInsert_RootAndNested(t *testing.T) {
	tr := tree.New()

	if _, err := tr.Insert("", "hubA", nil); err != nil {
		t.Fatalf("Insert root failed: %v", err)
	}
	if _, err := tr.Insert("hubA", "leafA", nil); err != nil {
		t.Fatalf("Insert nested failed: %v", err)
	}

	names, ok := tr.Trace("leafA", nil)
	if !ok {
		t.Fatal("Trace('leafA') reported not found")
	}
	want := []string{"hubA", "leafA"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("Trace('leafA') = %v, want %v", names, want)
	}
}

func TestInsert_ReturnsHandle(t *testing.T) {
	tr := tree.New()

	hub, err := tr.Insert("", "hub", nil)
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	// The returned handle must be the live subtree, so building on it is
	// visible through the tree.
	hub.Children = append(hub.Children, &tree.Node{Name: "leaf"})
	if _, ok := tr.Subtree("leaf", nil); !ok {
		t.Error("child added through the returned handle is not reachable")
	}
}

func TestInsert_ParentNotFound(t *testing.T) {
	tr := scenario()

	_, err := tr.Insert("ghost", "leafX", nil)
	if !errors.Is(err, tree.ErrParentNotFound) {
		t.Fatalf("Insert under missing parent: err = %v, want ErrParentNotFound", err)
	}

	// The failed insert must leave the tree unchanged.
	if _, ok := tr.Subtree("leafX", nil); ok {
		t.Error("leafX is reachable after a failed insert")
	}
	if got := len(tr.DescendantNames(nil)); got != 7 {
		t.Errorf("node count = %d, want 7", got)
	}
}

func TestInsert_GraftsSubtree(t *testing.T) {
	tr := scenario()

	sub := &tree.Node{Name: "old", Children: []*tree.Node{{Name: "subleaf"}}}
	if _, err := tr.Insert("hubB", "newhub", sub); err != nil {
		t.Fatalf("Insert with subtree failed: %v", err)
	}

	// The grafted root is renamed; its children come along.
	names, ok := tr.Trace("subleaf", nil)
	if !ok {
		t.Fatal("Trace('subleaf') reported not found")
	}
	want := []string{"hubB", "newhub", "subleaf"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("Trace('subleaf') = %v, want %v", names, want)
	}
}

func TestRemove(t *testing.T) {
	tr := scenario()

	sub, ok := tr.Remove("lhubA", nil)
	if !ok {
		t.Fatal("Remove('lhubA') reported not found")
	}
	if sub.Name != "lhubA" {
		t.Errorf("detached subtree root = %q, want lhubA", sub.Name)
	}
	if got := tr.DescendantNames(sub); !reflect.DeepEqual(got, []string{"lleafA", "lleafB"}) {
		t.Errorf("detached descendants = %v", got)
	}

	// Everything beneath the removed node went with it.
	for _, name := range []string{"lhubA", "lleafA", "lleafB"} {
		if _, ok := tr.Subtree(name, nil); ok {
			t.Errorf("%s still reachable after removal", name)
		}
	}
	// Siblings are untouched.
	if _, ok := tr.Subtree("leafA", nil); !ok {
		t.Error("leafA lost by removal of its sibling")
	}
}

func TestRemove_TopLevel(t *testing.T) {
	tr := scenario()

	if _, ok := tr.Remove("hubA", nil); !ok {
		t.Fatal("Remove('hubA') reported not found")
	}
	want := []string{"hubB", "leafAA"}
	if got := tr.DescendantNames(nil); !reflect.DeepEqual(got, want) {
		t.Errorf("remaining names = %v, want %v", got, want)
	}
}

func TestRemove_NotFound(t *testing.T) {
	tr := scenario()
	if _, ok := tr.Remove("ghost", nil); ok {
		t.Error("Remove('ghost') reported found")
	}
	if got := len(tr.DescendantNames(nil)); got != 7 {
		t.Errorf("node count changed on failed remove: %d", got)
	}
}

func TestClone_Independence(t *testing.T) {
	src := scenario()
	cp := src.Clone()

	if _, err := cp.Insert("hubA", "extra", nil); err != nil {
		t.Fatalf("Insert on clone failed: %v", err)
	}
	cp.Remove("hubB", nil)

	if _, ok := src.Subtree("extra", nil); ok {
		t.Error("mutating the clone leaked into the source")
	}
	if _, ok := src.Subtree("hubB", nil); !ok {
		t.Error("removing from the clone removed from the source")
	}
}

func TestImport_SharesStructure(t *testing.T) {
	raw := &tree.Node{Name: "hub"}
	tr := tree.Import(raw)

	// Import takes ownership without copying; the raw handle stays live.
	raw.Children = append(raw.Children, &tree.Node{Name: "leaf"})
	if _, ok := tr.Subtree("leaf", nil); !ok {
		t.Error("mutation through the imported handle is not visible")
	}
}

func TestDescendantNames(t *testing.T) {
	tr := scenario()

	all := tr.DescendantNames(nil)
	want := []string{"hubA", "lhubA", "lleafA", "lleafB", "leafA", "hubB", "leafAA"}
	if !reflect.DeepEqual(all, want) {
		t.Errorf("DescendantNames(nil) = %v, want %v", all, want)
	}

	seen := map[string]bool{}
	for _, n := range all {
		if seen[n] {
			t.Errorf("duplicate name %q in enumeration", n)
		}
		seen[n] = true
	}

	under, ok := tr.DescendantNamesOf("lhubA")
	if !ok {
		t.Fatal("DescendantNamesOf('lhubA') reported not found")
	}
	if !reflect.DeepEqual(under, []string{"lleafA", "lleafB"}) {
		t.Errorf("DescendantNamesOf('lhubA') = %v", under)
	}

	if _, ok := tr.DescendantNamesOf("ghost"); ok {
		t.Error("DescendantNamesOf('ghost') reported found")
	}
}
