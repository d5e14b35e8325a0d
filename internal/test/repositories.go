package test

import (
	"context"
	"sync"

	domainErrors "github.com/polkiloo/vegdelivery/internal/domain/errors"
	"github.com/polkiloo/vegdelivery/internal/domain/model"
	"github.com/polkiloo/vegdelivery/internal/domain/repository"
)

// OrderRepositoryStub allows tests to customize behaviour.
// Without overrides it serves and mutates Orders.
type OrderRepositoryStub struct {
	ListFn         func(context.Context) ([]model.Order, error)
	ListByStatusFn func(context.Context, ...model.OrderStatus) ([]model.Order, error)
	GetByIDFn      func(context.Context, string) (*model.Order, error)
	UpdateFn       func(context.Context, string, repository.OrderMutation) (*model.Order, error)

	Orders      []model.Order
	UpdateCalls []string
}

// List returns configured orders.
func (s *OrderRepositoryStub) List(ctx context.Context) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return s.Orders, nil
}

// ListByStatus filters configured orders.
func (s *OrderRepositoryStub) ListByStatus(ctx context.Context, statuses ...model.OrderStatus) ([]model.Order, error) {
	if s.ListByStatusFn != nil {
		return s.ListByStatusFn(ctx, statuses...)
	}
	var out []model.Order
	for _, o := range s.Orders {
		for _, st := range statuses {
			if o.Status == st {
				out = append(out, o)
				break
			}
		}
	}
	return out, nil
}

// GetByID returns matched order either via override or stored slice.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, o := range s.Orders {
		if o.ID == id {
			order := o.Clone()
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Update records invocations and applies mutate to the stored order.
func (s *OrderRepositoryStub) Update(ctx context.Context, id string, mutate repository.OrderMutation) (*model.Order, error) {
	s.UpdateCalls = append(s.UpdateCalls, id)
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, mutate)
	}
	for i := range s.Orders {
		if s.Orders[i].ID != id {
			continue
		}
		working := s.Orders[i].Clone()
		if err := mutate(&working); err != nil {
			return nil, err
		}
		s.Orders[i] = working
		out := working.Clone()
		return &out, nil
	}
	return nil, domainErrors.ErrNotFound
}

// SessionRepositoryStub keeps sessions in a map.
type SessionRepositoryStub struct {
	CreateFn func(context.Context, model.Session) error
	DeleteFn func(context.Context, string) error

	mu       sync.Mutex
	Sessions map[string]model.Session
	Deleted  []string
}

// Create stores session unless override says otherwise.
func (s *SessionRepositoryStub) Create(ctx context.Context, session model.Session) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, session)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Sessions == nil {
		s.Sessions = make(map[string]model.Session)
	}
	s.Sessions[session.ID] = session
	return nil
}

// Get returns stored session or ErrSessionNotFound.
func (s *SessionRepositoryStub) Get(_ context.Context, id string) (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.Sessions[id]
	if !ok {
		return nil, domainErrors.ErrSessionNotFound
	}
	return &session, nil
}

// Delete removes stored session and records the call.
func (s *SessionRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Deleted = append(s.Deleted, id)
	delete(s.Sessions, id)
	return nil
}

var _ repository.OrderRepository = (*OrderRepositoryStub)(nil)
var _ repository.SessionRepository = (*SessionRepositoryStub)(nil)
