package service

import (
	"sync"
	"time"
)

// Cooldowns is a per-organization, per-member map of expiry instants
type Cooldowns struct {
	mu      sync.Mutex
	entries map[string]map[string]time.Time
}

func NewCooldowns() *Cooldowns {
	return &Cooldowns{entries: make(map[string]map[string]time.Time)}
}

// Acquire starts a cooldown for the member unless one is running, in which
// case it returns the time left and false. A zero window never blocks.
func (c *Cooldowns) Acquire(teamID, userID string, window time.Duration, now time.Time) (time.Duration, bool) {
	if window <= 0 {
		return 0, true
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	team := c.entries[teamID]
	if team == nil {
		team = make(map[string]time.Time)
		c.entries[teamID] = team
	}

	for member, expiry := range team {
		if !expiry.After(now) {
			delete(team, member)
		}
	}

	if expiry, ok := team[userID]; ok {
		return expiry.Sub(now), false
	}

	team[userID] = now.Add(window)
	return 0, true
}

// Release drops a member's cooldown, used when the guarded action failed
func (c *Cooldowns) Release(teamID, userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if team := c.entries[teamID]; team != nil {
		delete(team, userID)
	}
}
