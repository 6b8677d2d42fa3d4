package engine

import (
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiterStore manages per-simulator rate limiters: simulator_id -> rate limiter
type RateLimiterStore struct {
	limiters     map[string]*rate.Limiter
	mu           sync.Mutex
	defaultRate  rate.Limit
	defaultBurst int
}

func NewRateLimiterStore(defaultRate rate.Limit, defaultBurst int) *RateLimiterStore {
	return &RateLimiterStore{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  defaultRate,
		defaultBurst: defaultBurst,
	}
}

func (s *RateLimiterStore) GetLimiter(simulatorID string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[simulatorID]
	if !exists {
		limiter = rate.NewLimiter(s.defaultRate, s.defaultBurst)
		s.limiters[simulatorID] = limiter
	}
	return limiter
}

func (s *RateLimiterStore) SetLimiter(simulatorID string, simulatorRate rate.Limit, simulatorBurst int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limiters[simulatorID] = rate.NewLimiter(simulatorRate, simulatorBurst)
}

// Allow reports whether one more request for the simulator fits its budget.
// A nil store never limits, so servers without limiter config stay open.
func (s *RateLimiterStore) Allow(simulatorID string) bool {
	if s == nil {
		return true
	}
	return s.GetLimiter(simulatorID).Allow()
}
