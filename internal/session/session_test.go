package session

import (
	"strings"
	"testing"
)

func TestNewSessionIDCarriesThePlayer(t *testing.T) {
	id := NewSessionID("ada")
	if !strings.HasPrefix(string(id), "ada-") {
		t.Errorf("id = %q, want an ada- prefix", id)
	}

	anon := NewSessionID("")
	if !strings.HasPrefix(string(anon), "local-") {
		t.Errorf("id = %q, want a local- prefix for anonymous sittings", anon)
	}
}

func TestNewSessionIDsDiffer(t *testing.T) {
	seen := map[SessionID]bool{}
	for i := 0; i < 100; i++ {
		id := NewSessionID("ada")
		if seen[id] {
			t.Fatalf("duplicate session id %q", id)
		}
		seen[id] = true
	}
}
