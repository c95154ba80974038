package hashmap

import (
	"fmt"
	"testing"

	"golang.org/x/sync/errgroup"
)

func TestSyncMapConcurrentWriters(t *testing.T) {
	sm := NewSynchronized(newMap[string, int](t, 2, 0.75))

	var eg errgroup.Group
	for w := 0; w < 8; w++ {
		eg.Go(func() error {
			for i := 0; i < 200; i++ {
				sm.Set(fmt.Sprintf("w%d-%d", w, i), i)
				sm.Update("total", func(current int, _ bool) int { return current + 1 })
				if !sm.Contains(fmt.Sprintf("w%d-%d", w, i)) {
					return fmt.Errorf("writer %d lost key %d", w, i)
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		t.Fatal(err)
	}

	if sm.Len() != 8*200+1 {
		t.Errorf("expected %d keys, got %d", 8*200+1, sm.Len())
	}
	if total, err := sm.Get("total"); err != nil || total != 8*200 {
		t.Errorf("expected total %d, got %d (%v)", 8*200, total, err)
	}
	if err := sm.Delete("total"); err != nil {
		t.Fatal(err)
	}
	if len(sm.Items()) != 8*200 {
		t.Errorf("expected %d items, got %d", 8*200, len(sm.Items()))
	}
	sm.Clear()
	if sm.Len() != 0 {
		t.Errorf("expected empty map, got %d", sm.Len())
	}
}
