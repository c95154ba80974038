package bag

import (
	"errors"
	"slices"
	"testing"

	"github.com/sharedcode/dstruct"
)

func TestAddCountRemove(t *testing.T) {
	b, err := New("a", "b", "a", "c", "a")
	if err != nil {
		t.Fatal(err)
	}
	if b.Len() != 5 || b.Count("a") != 3 || b.Count("z") != 0 {
		t.Errorf("unexpected len %d, count(a) %d", b.Len(), b.Count("a"))
	}
	if err := b.Remove("a"); err != nil {
		t.Fatal(err)
	}
	if b.Count("a") != 2 || b.Len() != 4 {
		t.Errorf("expected two a's of four items, got %d of %d", b.Count("a"), b.Len())
	}
	if err := b.Remove("b"); err != nil {
		t.Fatal(err)
	}
	if b.Contains("b") {
		t.Error("b should be gone after removing its only occurrence")
	}
	err = b.Remove("b")
	if !errors.Is(err, dstruct.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if b.Len() != 3 {
		t.Errorf("failed remove changed the size to %d", b.Len())
	}
}

func TestDistinctItems(t *testing.T) {
	b, _ := New(3, 1, 3, 2, 1, 3)
	got := b.DistinctItems()
	slices.Sort(got)
	if !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("expected [1 2 3], got %v", got)
	}
	total := 0
	for _, n := range b.All() {
		total += n
	}
	if total != b.Len() {
		t.Errorf("counts add up to %d, len is %d", total, b.Len())
	}
	b.Clear()
	if b.Len() != 0 || len(b.DistinctItems()) != 0 || b.Contains(3) {
		t.Error("expected empty bag after Clear")
	}
}

func TestUnhashableItems(t *testing.T) {
	if _, err := New[*int](); !errors.Is(err, dstruct.ErrUnhashableKey) {
		t.Errorf("expected ErrUnhashableKey, got %v", err)
	}
}
