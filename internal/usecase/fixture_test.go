package usecase

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/polkiloo/vegdelivery/internal/domain/model"
	"github.com/polkiloo/vegdelivery/internal/storage/memory"
	testhelpers "github.com/polkiloo/vegdelivery/internal/test"
)

var fixedNow = time.Date(2024, 8, 21, 12, 0, 0, 0, time.UTC)

func newSeededStorage(t *testing.T) *memory.Storage {
	t.Helper()
	s, err := memory.New(testhelpers.HasherStub{}, slog.New(slog.NewJSONHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("new storage: %v", err)
	}
	return s
}

func staff(userID string, role model.Role) model.Identity {
	return model.Identity{SessionID: "sid-" + userID, UserID: userID, Role: role}
}
