package usecase

import (
	"strings"
	"testing"
)

func TestNewStorageKey(t *testing.T) {
	key := NewStorageKey("song.mp3")
	if !strings.HasSuffix(key, "_song.mp3") {
		t.Errorf("key %q does not end with original filename", key)
	}

	// Empty filenames still produce a usable key.
	if key := NewStorageKey(""); !strings.HasSuffix(key, "_") {
		t.Errorf("key %q for empty filename malformed", key)
	}
}

func TestNewStorageKeyUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		key := NewStorageKey("same.mp3")
		if _, ok := seen[key]; ok {
			t.Fatalf("duplicate key %q", key)
		}
		seen[key] = struct{}{}
	}
}
