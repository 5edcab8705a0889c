package session

import (
	"context"
	"sync"
	"time"

	"coffee-subscription/internal/domain"
	"coffee-subscription/internal/metrics"
	"coffee-subscription/internal/subscription"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// MemoryRepo is the in-process session store. Records untouched for longer
// than the TTL are treated as missing and removed by Sweep.
type MemoryRepo struct {
	mu      sync.Mutex
	records map[string]Record
	ttl     time.Duration
	now     func() time.Time
	logger  zerolog.Logger
}

// NewMemory returns a store whose sessions expire ttl after their last
// update. A zero ttl disables expiry.
func NewMemory(ttl time.Duration, logger zerolog.Logger) *MemoryRepo {
	return &MemoryRepo{
		records: make(map[string]Record),
		ttl:     ttl,
		now:     time.Now,
		logger:  logger,
	}
}

func (r *MemoryRepo) Create(_ context.Context, state subscription.State) (Record, error) {
	now := r.now().UTC()
	rec := Record{
		Session: domain.Session{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now},
		State:   state.Clone(),
	}

	r.mu.Lock()
	r.records[rec.Session.ID] = rec
	metrics.SessionsActive.Set(float64(len(r.records)))
	r.mu.Unlock()

	return rec.clone(), nil
}

func (r *MemoryRepo) Get(_ context.Context, id string) (Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.lookup(id)
	if !ok {
		return Record{}, domain.ErrNotFound
	}
	return rec.clone(), nil
}

func (r *MemoryRepo) Update(_ context.Context, id string, fn UpdateFunc) (Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.lookup(id)
	if !ok {
		return Record{}, domain.ErrNotFound
	}
	next, err := fn(rec.clone())
	if err != nil {
		return Record{}, err
	}
	next.Session = rec.Session
	next.Session.UpdatedAt = r.now().UTC()
	r.records[id] = next.clone()
	return next, nil
}

func (r *MemoryRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.lookup(id); !ok {
		return domain.ErrNotFound
	}
	delete(r.records, id)
	metrics.SessionsActive.Set(float64(len(r.records)))
	return nil
}

// lookup must be called with mu held. Expired records are dropped on access.
func (r *MemoryRepo) lookup(id string) (Record, bool) {
	rec, ok := r.records[id]
	if !ok {
		return Record{}, false
	}
	if r.expired(rec, r.now()) {
		delete(r.records, id)
		metrics.SessionsExpired.Inc()
		metrics.SessionsActive.Set(float64(len(r.records)))
		return Record{}, false
	}
	return rec, true
}

func (r *MemoryRepo) expired(rec Record, now time.Time) bool {
	return r.ttl > 0 && now.Sub(rec.Session.UpdatedAt) > r.ttl
}

// Sweep removes every expired session and returns how many were dropped.
func (r *MemoryRepo) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	removed := 0
	for id, rec := range r.records {
		if r.expired(rec, now) {
			delete(r.records, id)
			removed++
		}
	}
	if removed > 0 {
		metrics.SessionsExpired.Add(float64(removed))
		metrics.SessionsActive.Set(float64(len(r.records)))
	}
	return removed
}

// Len reports the number of stored sessions, expired ones included.
func (r *MemoryRepo) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

// Run sweeps expired sessions every interval until ctx is cancelled.
func (r *MemoryRepo) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				r.logger.Info().Int("removed", n).Msg("expired sessions swept")
			}
		}
	}
}
