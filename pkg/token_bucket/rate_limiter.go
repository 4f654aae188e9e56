package token_bucket

import (
	"sync"
	"time"
)

// TokenBucket глобальный лимитер запросов: capacity токенов, пополнение refillRate токенов в секунду.
type TokenBucket struct {
	capacity   int
	tokens     int
	refillRate float64
	lastRefill time.Time
	mu         sync.Mutex
}

func NewTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return &TokenBucket{
		capacity:   capacity,
		tokens:     capacity,
		refillRate: refillRate,
		lastRefill: time.Now(),
	}
}

// Allow забирает токен, если он есть.
func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill(time.Now())

	if t.tokens <= 0 {
		return false
	}
	t.tokens--
	return true
}

// refill начисляет целые токены, lastRefill сдвигается только после начисления хотя бы одного.
func (t *TokenBucket) refill(now time.Time) {
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}

	tokensToAdd := int(elapsed * t.refillRate)
	if tokensToAdd <= 0 {
		return
	}

	t.tokens = min(t.tokens+tokensToAdd, t.capacity)
	t.lastRefill = now
}
