package identity

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestRandomID(t *testing.T) {
	var s Strategy = RandomID{}
	a, b := s.NewID(), s.NewID()
	if a == b {
		t.Fatalf("expected distinct ids")
	}
	if _, err := uuid.Parse(a); err != nil {
		t.Fatalf("expected uuid, got %q: %v", a, err)
	}
}

func TestTimestampPrefixedID(t *testing.T) {
	fixed := time.UnixMilli(1760000000000)
	g := NewTimestampPrefixedID(ServiceOrderPrefix)
	g.Now = func() time.Time { return fixed }

	first := g.NewID()
	if first != "OS-1760000000000" {
		t.Fatalf("unexpected id %q", first)
	}

	t.Run("same millisecond stays unique", func(t *testing.T) {
		second := g.NewID()
		if second != "OS-1760000000001" {
			t.Fatalf("expected bumped id, got %q", second)
		}
	})

	t.Run("clock going back stays increasing", func(t *testing.T) {
		g.Now = func() time.Time { return fixed.Add(-time.Second) }
		third := g.NewID()
		if third != "OS-1760000000002" {
			t.Fatalf("expected bumped id, got %q", third)
		}
	})

	t.Run("clock moving forward is followed", func(t *testing.T) {
		g.Now = func() time.Time { return fixed.Add(time.Second) }
		if got := g.NewID(); got != "OS-1760000001000" {
			t.Fatalf("unexpected id %q", got)
		}
	})

	t.Run("default clock", func(t *testing.T) {
		id := NewTimestampPrefixedID("OS-").NewID()
		if !strings.HasPrefix(id, "OS-") || len(id) < len("OS-")+13 {
			t.Fatalf("unexpected id %q", id)
		}
	})
}
