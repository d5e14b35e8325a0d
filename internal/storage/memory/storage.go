package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	domainErrors "github.com/polkiloo/vegdelivery/internal/domain/errors"
	"github.com/polkiloo/vegdelivery/internal/domain/model"
	"github.com/polkiloo/vegdelivery/internal/domain/repository"
	pkgAuth "github.com/polkiloo/vegdelivery/internal/pkg/auth"
)

// Storage acts as repository facade over process memory seeded with demo fixtures.
// Callers always receive copies; mutations go through Update closures run under the write lock.
type Storage struct {
	mu          sync.RWMutex
	users       []model.User
	credentials map[string]model.Credential
	sessions    map[string]model.Session
	orders      []model.Order
	vegetables  []model.Vegetable
	drafts      map[string]map[string]model.PriceBandDraft
	logger      *slog.Logger
}

type userRepository struct{ storage *Storage }

type credentialRepository struct{ storage *Storage }

type sessionRepository struct{ storage *Storage }

type orderRepository struct{ storage *Storage }

type vegetableRepository struct{ storage *Storage }

type priceDraftRepository struct{ storage *Storage }

// New creates storage filled with demo fixtures. Credential passwords are hashed with hasher.
func New(hasher pkgAuth.PasswordHasher, logger *slog.Logger) (*Storage, error) {
	s := &Storage{
		users:       demoUsers(),
		credentials: make(map[string]model.Credential, len(demoCredentials)),
		sessions:    make(map[string]model.Session),
		orders:      demoOrders(),
		vegetables:  demoVegetables(),
		drafts:      make(map[string]map[string]model.PriceBandDraft),
		logger:      logger,
	}

	for _, c := range demoCredentials {
		hash, err := hasher.Hash(c.password)
		if err != nil {
			return nil, fmt.Errorf("hash credential %s: %w", c.email, err)
		}
		s.credentials[c.email] = model.Credential{Email: c.email, PasswordHash: hash, Role: c.role}
	}

	logger.Info("memory storage seeded",
		slog.Int("users", len(s.users)),
		slog.Int("orders", len(s.orders)),
		slog.Int("vegetables", len(s.vegetables)),
	)
	return s, nil
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Credentials() repository.CredentialRepository {
	return &credentialRepository{storage: s}
}

func (s *Storage) Sessions() repository.SessionRepository {
	return &sessionRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Vegetables() repository.VegetableRepository {
	return &vegetableRepository{storage: s}
}

func (s *Storage) PriceDrafts() repository.PriceDraftRepository {
	return &priceDraftRepository{storage: s}
}

var _ repository.Factory = (*Storage)(nil)

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	r.storage.mu.RLock()
	defer r.storage.mu.RUnlock()
	return append([]model.User(nil), r.storage.users...), nil
}

func (r *userRepository) ListByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	r.storage.mu.RLock()
	defer r.storage.mu.RUnlock()
	var result []model.User
	for _, u := range r.storage.users {
		if u.Role == role {
			result = append(result, u)
		}
	}
	return result, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	r.storage.mu.RLock()
	defer r.storage.mu.RUnlock()
	for _, u := range r.storage.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	r.storage.mu.RLock()
	defer r.storage.mu.RUnlock()
	for _, u := range r.storage.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (r *userRepository) Update(ctx context.Context, id string, mutate repository.UserMutation) (*model.User, error) {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()
	for i := range r.storage.users {
		if r.storage.users[i].ID != id {
			continue
		}
		working := r.storage.users[i]
		if err := mutate(&working); err != nil {
			return nil, err
		}
		r.storage.users[i] = working
		return &working, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (r *credentialRepository) GetByEmail(ctx context.Context, email string) (*model.Credential, error) {
	r.storage.mu.RLock()
	defer r.storage.mu.RUnlock()
	c, ok := r.storage.credentials[email]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &c, nil
}

func (r *sessionRepository) Create(ctx context.Context, session model.Session) error {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()
	r.storage.sessions[session.ID] = session
	return nil
}

func (r *sessionRepository) Get(ctx context.Context, id string) (*model.Session, error) {
	r.storage.mu.RLock()
	defer r.storage.mu.RUnlock()
	session, ok := r.storage.sessions[id]
	if !ok {
		return nil, domainErrors.ErrSessionNotFound
	}
	return &session, nil
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()
	delete(r.storage.sessions, id)
	return nil
}

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	r.storage.mu.RLock()
	defer r.storage.mu.RUnlock()
	result := make([]model.Order, 0, len(r.storage.orders))
	for _, o := range r.storage.orders {
		result = append(result, o.Clone())
	}
	return result, nil
}

func (r *orderRepository) ListByStatus(ctx context.Context, statuses ...model.OrderStatus) ([]model.Order, error) {
	r.storage.mu.RLock()
	defer r.storage.mu.RUnlock()
	var result []model.Order
	for _, o := range r.storage.orders {
		for _, status := range statuses {
			if o.Status == status {
				result = append(result, o.Clone())
				break
			}
		}
	}
	return result, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	r.storage.mu.RLock()
	defer r.storage.mu.RUnlock()
	for _, o := range r.storage.orders {
		if o.ID == id {
			clone := o.Clone()
			return &clone, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (r *orderRepository) Update(ctx context.Context, id string, mutate repository.OrderMutation) (*model.Order, error) {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()
	for i := range r.storage.orders {
		if r.storage.orders[i].ID != id {
			continue
		}
		working := r.storage.orders[i].Clone()
		if err := mutate(&working); err != nil {
			return nil, err
		}
		r.storage.orders[i] = working
		result := working.Clone()
		return &result, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (r *vegetableRepository) List(ctx context.Context) ([]model.Vegetable, error) {
	r.storage.mu.RLock()
	defer r.storage.mu.RUnlock()
	result := make([]model.Vegetable, 0, len(r.storage.vegetables))
	for _, v := range r.storage.vegetables {
		result = append(result, v.Clone())
	}
	return result, nil
}

func (r *vegetableRepository) GetByID(ctx context.Context, id string) (*model.Vegetable, error) {
	r.storage.mu.RLock()
	defer r.storage.mu.RUnlock()
	for _, v := range r.storage.vegetables {
		if v.ID == id {
			clone := v.Clone()
			return &clone, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (r *vegetableRepository) Update(ctx context.Context, id string, mutate repository.VegetableMutation) (*model.Vegetable, error) {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()
	for i := range r.storage.vegetables {
		if r.storage.vegetables[i].ID != id {
			continue
		}
		working := r.storage.vegetables[i].Clone()
		if err := mutate(&working); err != nil {
			return nil, err
		}
		r.storage.vegetables[i] = working
		result := working.Clone()
		return &result, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Stage merges the set fields of draft into the manager's pending draft.
func (r *priceDraftRepository) Stage(ctx context.Context, managerID string, draft model.PriceBandDraft) (model.PriceBandDraft, error) {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()
	byVeg, ok := r.storage.drafts[managerID]
	if !ok {
		byVeg = make(map[string]model.PriceBandDraft)
		r.storage.drafts[managerID] = byVeg
	}
	merged := byVeg[draft.VegetableID]
	merged.VegetableID = draft.VegetableID
	if draft.MinPrice != nil {
		v := *draft.MinPrice
		merged.MinPrice = &v
	}
	if draft.MaxPrice != nil {
		v := *draft.MaxPrice
		merged.MaxPrice = &v
	}
	byVeg[draft.VegetableID] = merged
	return merged, nil
}

func (r *priceDraftRepository) Get(ctx context.Context, managerID, vegetableID string) (*model.PriceBandDraft, error) {
	r.storage.mu.RLock()
	defer r.storage.mu.RUnlock()
	draft, ok := r.storage.drafts[managerID][vegetableID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &draft, nil
}

func (r *priceDraftRepository) List(ctx context.Context, managerID string) ([]model.PriceBandDraft, error) {
	r.storage.mu.RLock()
	defer r.storage.mu.RUnlock()
	byVeg := r.storage.drafts[managerID]
	result := make([]model.PriceBandDraft, 0, len(byVeg))
	for _, d := range byVeg {
		result = append(result, d)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].VegetableID < result[j].VegetableID })
	return result, nil
}

func (r *priceDraftRepository) Discard(ctx context.Context, managerID, vegetableID string) error {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()
	if byVeg, ok := r.storage.drafts[managerID]; ok {
		delete(byVeg, vegetableID)
		if len(byVeg) == 0 {
			delete(r.storage.drafts, managerID)
		}
	}
	return nil
}
