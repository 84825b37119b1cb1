// Package service implements the mutation protocol of the exchange:
// every operation that creates, joins, leaves, promotes, demotes,
// deletes, or pairs runs here, behind one exclusive lock.
package service

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"santa/internal/exchange/metrics"
	"santa/internal/exchange/store"
	dErrors "santa/pkg/domain-errors"
)

// Service owns the entity store and serializes access to it. The mutex
// is store-wide by design: operations cost single-digit microseconds in
// memory, a single lock cannot deadlock, and no operation performs I/O
// while holding it. Reads take the same lock to keep the invariant
// surface simple.
type Service struct {
	mu      sync.Mutex
	store   *store.Memory
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New constructs the exchange service around an owned store.
func New(st *store.Memory, opts ...Option) (*Service, error) {
	if st == nil {
		return nil, fmt.Errorf("entity store is required")
	}

	svc := &Service{
		store:  st,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(svc)
	}

	return svc, nil
}

// track times an operation and records its outcome once the deferred
// callback receives the final error.
func (s *Service) track(operation string) func(err error) {
	start := time.Now()
	return func(err error) {
		result := "ok"
		if err != nil {
			result = string(dErrors.CodeOf(err))
		}
		s.metrics.ObserveOperation(operation, result, time.Since(start))
	}
}
