// Package id generates collision-resistant identifiers for artifact
// records without any central allocator.
package id

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// New returns a globally unique identifier. It prefers a version 4 UUID;
// if the system's random source is unavailable it falls back to a
// timestamp plus random suffix, which is still unique across concurrent
// callers in one process with overwhelming probability.
func New() string {
	u, err := uuid.NewRandom()
	if err != nil {
		return fallback(time.Now())
	}
	return u.String()
}

// fallback builds an id from epoch milliseconds and a random hex suffix.
func fallback(now time.Time) string {
	return fmt.Sprintf("%d_%x", now.UnixMilli(), rand.Uint64())
}
