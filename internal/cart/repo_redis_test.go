package cart

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hollowcoast/hollowcoast-web/pkg/redis"
)

type fakeRedisStore struct {
	data map[string]string
}

func newFakeRedisStore() *fakeRedisStore {
	return &fakeRedisStore{data: make(map[string]string)}
}

func (f *fakeRedisStore) Get(_ context.Context, key string) (string, error) {
	v, ok := f.data[key]
	if !ok {
		return "", redis.Nil
	}
	return v, nil
}

func (f *fakeRedisStore) Set(_ context.Context, key string, value any, _ time.Duration) error {
	f.data[key] = value.(string)
	return nil
}

func (f *fakeRedisStore) Del(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.data, key)
	}
	return nil
}

func (f *fakeRedisStore) CartKey(cartID string) string {
	return "hc:cart:" + cartID
}

func TestRedisRepositoryRoundTrip(t *testing.T) {
	store := newFakeRedisStore()
	repo := NewRedisRepository(store, time.Hour)
	ctx := context.Background()

	variant := 1
	items := []Item{
		{ProductID: "p1", Title: "Shirt", UnitPriceCents: 2500, Currency: "USD", Quantity: 2},
		{ProductID: "p2", Title: "LP", UnitPriceCents: 3200, Currency: "USD", Quantity: 1, Variant: &variant},
	}
	if err := repo.Save(ctx, "v1", items); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := repo.Load(ctx, "v1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 items, got %d", len(loaded))
	}
	if loaded[0].ProductID != "p1" || loaded[1].ProductID != "p2" {
		t.Fatalf("expected order preserved, got %+v", loaded)
	}
	if loaded[1].Variant == nil || *loaded[1].Variant != 1 {
		t.Fatalf("expected variant 1 to survive round trip, got %+v", loaded[1])
	}
}

func TestRedisRepositoryMissingCartIsEmpty(t *testing.T) {
	repo := NewRedisRepository(newFakeRedisStore(), 0)
	items, err := repo.Load(context.Background(), "never-saved")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if items != nil {
		t.Fatalf("expected nil items for absent cart, got %+v", items)
	}
}

func TestRedisRepositoryCorruptBlobReportsErrCorrupt(t *testing.T) {
	store := newFakeRedisStore()
	store.data[store.CartKey("v1")] = "{not json"
	repo := NewRedisRepository(store, 0)

	_, err := repo.Load(context.Background(), "v1")
	if !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
}

func TestRedisRepositoryDelete(t *testing.T) {
	store := newFakeRedisStore()
	repo := NewRedisRepository(store, 0)
	ctx := context.Background()

	if err := repo.Save(ctx, "v1", []Item{{ProductID: "p1", Quantity: 1}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Delete(ctx, "v1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	items, err := repo.Load(ctx, "v1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if items != nil {
		t.Fatalf("expected empty cart after delete, got %+v", items)
	}
}

func TestServiceHydratesEmptyFromCorruptStorage(t *testing.T) {
	store := newFakeRedisStore()
	store.data[store.CartKey(testCartID)] = "][junk"
	svc, err := NewService(NewRedisRepository(store, 0), nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	cart, err := svc.Get(context.Background(), testCartID)
	if err != nil {
		t.Fatalf("expected silent recovery, got %v", err)
	}
	if !cart.IsEmpty() {
		t.Fatalf("expected empty cart from corrupt storage")
	}
}
