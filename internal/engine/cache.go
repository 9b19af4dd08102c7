package engine

import (
	"fmt"
	"sync"
	"time"

	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/models"
	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/types"
)

// StatsCache memoizes Collect so that unrelated requests do not pay
// for a full history scan each time. The fingerprint covers the
// transaction count, the newest update and the local day of now, so a
// mutation or a day rollover invalidates the cached value.
//
// The derivation itself is a single synchronous pass; the mutex only
// exists because HTTP handlers call into the cache concurrently.
type StatsCache struct {
	mu          sync.Mutex
	fingerprint string
	stats       Stats
}

// Collect returns the memoized stats for the snapshot, recomputing
// when the fingerprint changed.
func (c *StatsCache) Collect(transactions []models.Transaction, now time.Time) Stats {
	fingerprint := statsFingerprint(transactions, now)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.fingerprint == fingerprint {
		return c.stats
	}

	c.stats = Collect(transactions, now)
	c.fingerprint = fingerprint

	return c.stats
}

func statsFingerprint(transactions []models.Transaction, now time.Time) string {
	var newest time.Time
	for _, t := range transactions {
		if t.UpdatedAt.After(newest) {
			newest = t.UpdatedAt
		}
	}

	return fmt.Sprintf("%d/%s/%s", len(transactions), newest.Format(time.RFC3339Nano), types.DayOf(now))
}
