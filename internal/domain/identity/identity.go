// Package identity holds the identifier strategies used by the repositories.
//
// Clients, cars, employees and services get opaque random ids. Service orders
// get human-readable "OS-<unix millis>" numbers that also sort by creation.
package identity

import (
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Strategy produces a fresh identifier.
type Strategy interface {
	NewID() string
}

// RandomID issues random UUIDv4 strings.
type RandomID struct{}

func (RandomID) NewID() string { return uuid.NewString() }

// ServiceOrderPrefix is the fixed prefix of service order numbers.
const ServiceOrderPrefix = "OS-"

// TimestampPrefixedID issues Prefix + millisecond timestamp. Two calls within
// the same millisecond get consecutive values, so ids stay unique and
// increasing inside one process even when the clock stalls or steps back.
type TimestampPrefixedID struct {
	Prefix string
	Now    func() time.Time

	mu   sync.Mutex
	last int64
}

func NewTimestampPrefixedID(prefix string) *TimestampPrefixedID {
	return &TimestampPrefixedID{Prefix: prefix, Now: time.Now}
}

func (g *TimestampPrefixedID) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	ms := now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return g.Prefix + strconv.FormatInt(ms, 10)
}
