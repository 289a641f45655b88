package dataset

import (
	"strings"
	"testing"
)

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	s := NewStore(t.TempDir())
	snap, err := s.Save("demo", "uniform(0, 1) n=3 seed=1", []float64{0.1, 0.2, 0.3})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if snap.ID == "" {
		t.Fatal("Save returned empty ID")
	}
	got, err := s.Load(snap.ID)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Name != "demo" || len(got.Values) != 3 || got.Values[2] != 0.3 {
		t.Fatalf("Load = %+v", got)
	}
}

func TestStoreLoadByPrefix(t *testing.T) {
	s := NewStore(t.TempDir())
	snap, err := s.Save("demo", "inline", []float64{1})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Load(snap.ID[:8])
	if err != nil {
		t.Fatalf("Load by prefix: %v", err)
	}
	if got.ID != snap.ID {
		t.Fatalf("Load by prefix = %s, want %s", got.ID, snap.ID)
	}
}

func TestStoreListNewestFirst(t *testing.T) {
	s := NewStore(t.TempDir())
	if _, err := s.Save("first", "inline", []float64{1}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	second, err := s.Save("second", "inline", []float64{2})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	list, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("List len = %d, want 2", len(list))
	}
	if list[0].ID != second.ID {
		t.Fatalf("List[0] = %s, want newest %s", list[0].ID, second.ID)
	}
}

func TestStoreListEmptyDir(t *testing.T) {
	s := NewStore(t.TempDir() + "/nonexistent")
	list, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("List = %v, want empty", list)
	}
}

func TestStoreDelete(t *testing.T) {
	s := NewStore(t.TempDir())
	snap, err := s.Save("gone", "inline", []float64{1})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Delete(snap.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Load(snap.ID); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("Load after delete: want not-found error, got %v", err)
	}
	if err := s.Delete(snap.ID); err == nil {
		t.Fatal("Delete twice: want error, got nil")
	}
}

func TestStoreRejectsEmptyDataset(t *testing.T) {
	s := NewStore(t.TempDir())
	if _, err := s.Save("empty", "inline", nil); err == nil {
		t.Fatal("Save(nil): want error, got nil")
	}
}
