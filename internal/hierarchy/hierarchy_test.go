package hierarchy

import (
	"reflect"
	"testing"

	"github.com/cmshealth/hccraf/internal/tables"
)

func TestSuppressRemovesDominatedChild(t *testing.T) {
	h := tables.NewHierarchyTable(map[tables.CC][]tables.CC{
		18: {19},
	})

	got := Suppress([]tables.CC{18, 19}, h)
	want := []tables.CC{18}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestSuppressKeepsChildWhenParentAbsent(t *testing.T) {
	h := tables.NewHierarchyTable(map[tables.CC][]tables.CC{
		18: {19},
	})

	got := Suppress([]tables.CC{19}, h)
	want := []tables.CC{19}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestSuppressIsOrderIndependent(t *testing.T) {
	h := tables.NewHierarchyTable(map[tables.CC][]tables.CC{
		8: {9, 10},
	})

	a := Suppress([]tables.CC{10, 8, 9}, h)
	b := Suppress([]tables.CC{9, 10, 8}, h)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("expected order-independent result: %v vs %v", a, b)
	}
	want := []tables.CC{8}
	if !reflect.DeepEqual(a, want) {
		t.Errorf("got %v want %v", a, want)
	}
}

func TestSuppressResultIsSubsetOfInput(t *testing.T) {
	h := tables.NewHierarchyTable(map[tables.CC][]tables.CC{
		1: {2, 3},
		2: {3},
	})

	got := Suppress([]tables.CC{1, 2, 3}, h)
	want := []tables.CC{1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestSuppressNoEdgesReturnsSortedInput(t *testing.T) {
	h := tables.NewHierarchyTable(map[tables.CC][]tables.CC{})
	got := Suppress([]tables.CC{5, 1, 3}, h)
	want := []tables.CC{1, 3, 5}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v want %v", got, want)
	}
}
