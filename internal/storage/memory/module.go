package memory

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/vegdelivery/internal/domain/repository"
	pkgAuth "github.com/polkiloo/vegdelivery/internal/pkg/auth"
)

// Module wires the in-memory storage and its repository adapters.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage) repository.UserRepository { return s.Users() },
		func(s *Storage) repository.CredentialRepository { return s.Credentials() },
		func(s *Storage) repository.SessionRepository { return s.Sessions() },
		func(s *Storage) repository.OrderRepository { return s.Orders() },
		func(s *Storage) repository.VegetableRepository { return s.Vegetables() },
		func(s *Storage) repository.PriceDraftRepository { return s.PriceDrafts() },
	),
)

type storageParams struct {
	fx.In

	Hasher pkgAuth.PasswordHasher
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	return New(p.Hasher, p.Logger)
}
