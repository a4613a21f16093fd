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

package nonce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTracker_Observe(t *testing.T) {
	tracker := NewTracker(time.Minute)
	defer tracker.Stop()

	assert.True(t, tracker.Observe("n1"))
	assert.False(t, tracker.Observe("n1"))
	assert.True(t, tracker.Observe("n2"))
	assert.Equal(t, 2, tracker.Len())
}

func TestTracker_Expiry(t *testing.T) {
	tracker := NewTracker(20 * time.Millisecond)
	defer tracker.Stop()

	assert.True(t, tracker.Observe("n1"))
	time.Sleep(60 * time.Millisecond)

	// Expired entries may be observed again.
	assert.True(t, tracker.Observe("n1"))
}

func TestTracker_DefaultTTL(t *testing.T) {
	tracker := NewTracker(0)
	defer tracker.Stop()

	assert.True(t, tracker.Observe("n1"))
	assert.False(t, tracker.Observe("n1"))
}
