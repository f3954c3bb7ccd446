package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"thaki_platform/internal/domain/entities"
)

func TestRecordRepository_Collections(t *testing.T) {
	ctx := context.Background()

	t.Run("missing entry reads as empty", func(t *testing.T) {
		repo := NewRecordRepository(NewMemoryKVStore())

		list, err := repo.Interests(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if list == nil || len(list) != 0 {
			t.Fatalf("expected empty non-nil slice, got %#v", list)
		}
	})

	t.Run("save and reload round trip", func(t *testing.T) {
		repo := NewRecordRepository(NewMemoryKVStore())

		in := []entities.Review{
			{ID: "r2", Name: "B", Rating: 4, Comment: "good", Date: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)},
			{ID: "r1", Name: "A", Rating: 5, Comment: "great", Date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		}
		if err := repo.SaveReviews(ctx, in); err != nil {
			t.Fatalf("save failed: %v", err)
		}

		out, err := repo.Reviews(ctx)
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if len(out) != 2 || out[0].ID != "r2" || out[1].ID != "r1" {
			t.Fatalf("stored order not preserved: %+v", out)
		}
	})

	t.Run("corrupt entry reads as empty", func(t *testing.T) {
		kv := NewMemoryKVStore()
		if err := kv.Set(ctx, "payments", []byte(`{not json`)); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
		repo := NewRecordRepository(kv)

		list, err := repo.Payments(ctx)
		if err != nil {
			t.Fatalf("corrupt entry must not fail the read: %v", err)
		}
		if len(list) != 0 {
			t.Fatalf("expected empty collection, got %+v", list)
		}
	})

	t.Run("saving nil stores an empty array", func(t *testing.T) {
		kv := NewMemoryKVStore()
		repo := NewRecordRepository(kv)

		if err := repo.SaveOrders(ctx, nil); err != nil {
			t.Fatalf("save failed: %v", err)
		}
		raw, err := kv.Get(ctx, "orders")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if string(raw) != "[]" {
			t.Fatalf("expected empty json array, got %q", raw)
		}
	})
}

func TestRecordRepository_VisitorCount(t *testing.T) {
	ctx := context.Background()

	t.Run("unset counter reads as seed", func(t *testing.T) {
		repo := NewRecordRepository(NewMemoryKVStore())

		n, err := repo.VisitorCount(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 12450 {
			t.Fatalf("expected seed 12450, got %d", n)
		}
	})

	t.Run("increment persists from the seed", func(t *testing.T) {
		repo := NewRecordRepository(NewMemoryKVStore())

		n, err := repo.IncrementVisitorCount(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 12451 {
			t.Fatalf("expected 12451, got %d", n)
		}

		n, err = repo.IncrementVisitorCount(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 12452 {
			t.Fatalf("expected 12452, got %d", n)
		}

		stored, err := repo.VisitorCount(ctx)
		if err != nil || stored != 12452 {
			t.Fatalf("expected stored 12452, got %d err=%v", stored, err)
		}
	})

	t.Run("corrupt counter reads as seed", func(t *testing.T) {
		kv := NewMemoryKVStore()
		if err := kv.Set(ctx, "visitor-count", []byte("twelve")); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
		repo := NewRecordRepository(kv)

		n, err := repo.VisitorCount(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 12450 {
			t.Fatalf("expected seed 12450, got %d", n)
		}
	})
}

func TestRecordRepository_HeroImage(t *testing.T) {
	ctx := context.Background()

	day1 := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 6, 2, 0, 30, 0, 0, time.UTC)

	t.Run("cached image is served on the same calendar day", func(t *testing.T) {
		repo := NewRecordRepository(NewMemoryKVStore())
		repo.now = func() time.Time { return day1 }

		if err := repo.SetHeroImage(ctx, "data:image/jpeg;base64,abc"); err != nil {
			t.Fatalf("set failed: %v", err)
		}

		img, err := repo.HeroImage(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if img != "data:image/jpeg;base64,abc" {
			t.Fatalf("unexpected image: %q", img)
		}
	})

	t.Run("cache expires at the day boundary", func(t *testing.T) {
		repo := NewRecordRepository(NewMemoryKVStore())
		repo.now = func() time.Time { return day1 }

		if err := repo.SetHeroImage(ctx, "data:image/jpeg;base64,abc"); err != nil {
			t.Fatalf("set failed: %v", err)
		}

		repo.now = func() time.Time { return day2 }
		img, err := repo.HeroImage(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if img != "" {
			t.Fatalf("expected stale cache to read empty, got %q", img)
		}
	})

	t.Run("no cache reads empty", func(t *testing.T) {
		repo := NewRecordRepository(NewMemoryKVStore())

		img, err := repo.HeroImage(ctx)
		if err != nil || img != "" {
			t.Fatalf("expected empty, got %q err=%v", img, err)
		}
	})
}

func TestSQLiteKVStore(t *testing.T) {
	ctx := context.Background()

	store, err := OpenSQLiteKVStore(filepath.Join(t.TempDir(), "records.db"))
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer store.Close()

	t.Run("missing key reads nil", func(t *testing.T) {
		v, err := store.Get(ctx, "missing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v != nil {
			t.Fatalf("expected nil, got %q", v)
		}
	})

	t.Run("set then get", func(t *testing.T) {
		if err := store.Set(ctx, "k", []byte(`["v"]`)); err != nil {
			t.Fatalf("set failed: %v", err)
		}
		v, err := store.Get(ctx, "k")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if string(v) != `["v"]` {
			t.Fatalf("unexpected value: %q", v)
		}
	})

	t.Run("set replaces the whole entry", func(t *testing.T) {
		if err := store.Set(ctx, "k", []byte(`["v2"]`)); err != nil {
			t.Fatalf("set failed: %v", err)
		}
		v, err := store.Get(ctx, "k")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if string(v) != `["v2"]` {
			t.Fatalf("unexpected value: %q", v)
		}
	})

	t.Run("repository works over sqlite", func(t *testing.T) {
		repo := NewRecordRepository(store)
		if err := repo.SaveMessages(ctx, []entities.ContactMessage{{ID: "m1", Name: "N", Email: "n@x.com", Type: "general", Message: "hi"}}); err != nil {
			t.Fatalf("save failed: %v", err)
		}
		list, err := repo.Messages(ctx)
		if err != nil || len(list) != 1 || list[0].ID != "m1" {
			t.Fatalf("unexpected result err=%v list=%+v", err, list)
		}
	})
}
