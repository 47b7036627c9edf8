package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/domain/service"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRandomUserID() uuid.UUID {
	return uuid.New()
}

// fakeUserRepo is an in-memory UserRepository. It enforces the phone
// uniqueness constraint the same way the persistence layer does and can
// be told to fail to exercise the server-fault paths.
type fakeUserRepo struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]*entity.User
	byPhone map[string]uuid.UUID
	failAll bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[uuid.UUID]*entity.User),
		byPhone: make(map[string]uuid.UUID),
	}
}

var errFakeRepo = errors.New("storage backend unavailable")

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failAll {
		return errFakeRepo
	}
	if _, exists := r.byPhone[user.Phone]; exists {
		return domainerrors.ErrPhoneAlreadyRegistered
	}

	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	clone := *user
	r.byID[user.ID] = &clone
	r.byPhone[user.Phone] = user.ID

	return nil
}

func (r *fakeUserRepo) FindByPhone(_ context.Context, phone string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failAll {
		return nil, errFakeRepo
	}
	id, ok := r.byPhone[phone]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	clone := *r.byID[id]

	return &clone, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failAll {
		return nil, errFakeRepo
	}
	user, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	clone := *user

	return &clone, nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failAll {
		return errFakeRepo
	}
	user, ok := r.byID[id]
	if !ok {
		return repository.ErrUserNotFound
	}

	user.PasswordHash = passwordHash
	user.UpdatedAt = time.Now()

	return nil
}

// fakeTxManager runs the callback against the same in-memory repository.
type fakeTxManager struct {
	repo *fakeUserRepo
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(&fakeRepoFactory{repo: m.repo})
}

type fakeRepoFactory struct {
	repo *fakeUserRepo
}

func (f *fakeRepoFactory) UserRepo() repository.UserRepository {
	return f.repo
}

// testHasher is a real bcrypt hasher at minimum cost so the scenario
// tests stay fast while still exercising salted hashing.
type testHasher struct{}

func (testHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)

	return string(bytes), err
}

func (testHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// countingHasher records how many comparisons ran.
type countingHasher struct {
	checks int
}

func (h *countingHasher) Hash(password string) (string, error) {
	return testHasher{}.Hash(password)
}

func (h *countingHasher) Check(password, hash string) bool {
	h.checks++

	return testHasher{}.Check(password, hash)
}

// stubTokenService mints predictable tokens and can be told to fail.
type stubTokenService struct {
	fail bool
}

func (s *stubTokenService) Issue(userID uuid.UUID, phone string) (string, time.Time, error) {
	if s.fail {
		return "", time.Time{}, errors.New("signing key unavailable")
	}

	return "token-" + userID.String() + "-" + phone, time.Now().Add(10 * time.Minute), nil
}

func (s *stubTokenService) ValidateToken(string) (*service.SessionClaims, error) {
	return nil, errors.New("not implemented")
}

// credentialServiceFixtures holds all test dependencies for credential service tests.
type credentialServiceFixtures struct {
	service      usecase.CredentialUsecase
	userRepo     *fakeUserRepo
	tokenService *stubTokenService
}

func createTestCredentialService(t *testing.T) credentialServiceFixtures {
	t.Helper()

	userRepo := newFakeUserRepo()
	tokenService := &stubTokenService{}

	svc := NewCredentialService(CredentialServiceParams{
		TxManager:    &fakeTxManager{repo: userRepo},
		UserRepo:     userRepo,
		Hasher:       testHasher{},
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return credentialServiceFixtures{
		service:      svc,
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}
