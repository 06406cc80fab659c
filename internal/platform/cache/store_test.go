package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	store := NewStore(time.Minute)

	if _, ok := store.Get(ctx, "card:list"); ok {
		t.Fatalf("expected miss on empty store")
	}

	store.Set(ctx, "card:list", []string{"pikachu"})
	v, ok := store.Get(ctx, "card:list")
	if !ok {
		t.Fatalf("expected hit after set")
	}
	if got := v.([]string); len(got) != 1 || got[0] != "pikachu" {
		t.Fatalf("unexpected value: %v", got)
	}

	store.Delete(ctx, "card:list")
	if _, ok := store.Get(ctx, "card:list"); ok {
		t.Fatalf("expected miss after delete")
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	ctx := context.Background()
	store := NewStore(time.Minute)
	store.Set(ctx, "card:id:1", 1)
	store.Set(ctx, "card:id:2", 2)
	store.Set(ctx, "ability:list", 3)

	store.DeletePrefix(ctx, "card:")

	if _, ok := store.Get(ctx, "card:id:1"); ok {
		t.Fatalf("expected card keys evicted")
	}
	if _, ok := store.Get(ctx, "ability:list"); !ok {
		t.Fatalf("expected unrelated key kept")
	}
}

func TestStore_GetOrLoad_SingleLoad(t *testing.T) {
	ctx := context.Background()
	store := NewStore(time.Minute)

	var loads atomic.Int32
	loader := func(context.Context) (any, error) {
		loads.Add(1)
		return "loaded", nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := store.GetOrLoad(ctx, "k", loader)
			if err != nil || v != "loaded" {
				t.Errorf("get or load: v=%v err=%v", v, err)
			}
		}()
	}
	wg.Wait()

	if got := loads.Load(); got != 1 {
		t.Fatalf("expected exactly 1 load, got %d", got)
	}
}

func TestStore_GetOrLoad_ErrorNotCached(t *testing.T) {
	ctx := context.Background()
	store := NewStore(time.Minute)

	boom := errors.New("boom")
	calls := 0
	_, err := store.GetOrLoad(ctx, "k", func(context.Context) (any, error) {
		calls++
		return nil, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected load error, got %v", err)
	}

	v, err := store.GetOrLoad(ctx, "k", func(context.Context) (any, error) {
		calls++
		return "ok", nil
	})
	if err != nil || v != "ok" {
		t.Fatalf("expected retry to succeed: v=%v err=%v", v, err)
	}
	if calls != 2 {
		t.Fatalf("expected 2 loader calls, got %d", calls)
	}
}
