package storage

import (
	"strings"
	"testing"
)

func TestMemoryStorageSetGet(t *testing.T) {
	s := NewMemoryStorage[string, int]()

	s.Set("a", 1)
	s.Set("b", 2)
	s.Set("a", 3)

	if v, ok := s.Get("a"); !ok || v != 3 {
		t.Errorf("Expected a=3, got %d (ok=%v)", v, ok)
	}
	if _, ok := s.Get("missing"); ok {
		t.Error("Expected miss for unknown key")
	}
	if s.Count() != 2 {
		t.Errorf("Expected 2 objects, got %d", s.Count())
	}
}

func TestMemoryStorageDelete(t *testing.T) {
	s := NewMemoryStorage[string, int]()
	s.Set("a", 1)

	if !s.Delete("a") {
		t.Error("Expected delete of existing key to return true")
	}
	if s.Delete("a") {
		t.Error("Expected delete of missing key to return false")
	}
	if s.Count() != 0 {
		t.Errorf("Expected empty storage, got %d objects", s.Count())
	}
}

func TestMemoryStorageDeleteFunc(t *testing.T) {
	s := NewMemoryStorage[string, int]()
	s.Set("gen1/0/0/0", 1)
	s.Set("gen1/0/0/1", 2)
	s.Set("gen2/0/0/0", 3)

	removed := s.DeleteFunc(func(key string) bool {
		return strings.HasPrefix(key, "gen1/")
	})

	if removed != 2 {
		t.Errorf("Expected 2 removals, got %d", removed)
	}
	if _, ok := s.Get("gen2/0/0/0"); !ok {
		t.Error("Expected non-matching key to survive")
	}
}
