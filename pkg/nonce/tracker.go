// Copyright (C) 2025 SAGE-X Project
//
// This file is part of sage-did-go.
//
// sage-did-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sage-did-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with sage-did-go.  If not, see <https://www.gnu.org/licenses/>.

// Package nonce tracks single-use nonces inside a TTL window so payload
// verifiers can reject replays. The signing path never consults it.
package nonce

import (
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// DefaultTTL is the replay window applied when NewTracker is given a
// non-positive duration.
const DefaultTTL = 5 * time.Minute

// Tracker remembers observed nonces until their TTL expires.
type Tracker struct {
	cache *ttlcache.Cache[string, struct{}]
}

// NewTracker creates a tracker whose entries expire after ttl.
func NewTracker(ttl time.Duration) *Tracker {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	cache := ttlcache.New(
		ttlcache.WithTTL[string, struct{}](ttl),
	)
	go cache.Start()
	return &Tracker{cache: cache}
}

// Observe records a nonce. It returns false when the nonce was already
// seen inside the TTL window, true on first sight.
func (t *Tracker) Observe(nonce string) bool {
	if t.cache.Has(nonce) {
		return false
	}
	t.cache.Set(nonce, struct{}{}, ttlcache.DefaultTTL)
	return true
}

// Len returns the number of live entries.
func (t *Tracker) Len() int {
	return t.cache.Len()
}

// Stop halts the background expiration loop.
func (t *Tracker) Stop() {
	t.cache.Stop()
}
