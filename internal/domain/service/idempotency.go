package service

import (
	"context"
	"time"
)

// ReservationState is the outcome of reserving an idempotency key.
type ReservationState int

const (
	// ReservationAcquired means the caller owns the key and must Complete or Release it.
	ReservationAcquired ReservationState = iota
	// ReservationInFlight means another request holds the key and has not finished.
	ReservationInFlight
	// ReservationCompleted means a previous request finished; the result reference is returned.
	ReservationCompleted
)

// IdempotencyStore dedupes repeated submissions within a window.
type IdempotencyStore interface {
	Reserve(ctx context.Context, key string, window time.Duration) (ReservationState, string, error)
	Complete(ctx context.Context, key, result string, window time.Duration) error
	Release(ctx context.Context, key string) error
}
