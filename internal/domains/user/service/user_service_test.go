package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"idealink-backend/internal/domains/user"
)

// mockUserRepo is an in-memory user.Repository.
type mockUserRepo struct {
	byID    map[uuid.UUID]*user.User
	byEmail map[string]*user.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		byID:    make(map[uuid.UUID]*user.User),
		byEmail: make(map[string]*user.User),
	}
}

func (m *mockUserRepo) Create(_ context.Context, u *user.User) error {
	if _, ok := m.byEmail[u.Email]; ok {
		return user.ErrEmailAlreadyExists
	}
	cp := *u
	m.byID[u.ID] = &cp
	m.byEmail[u.Email] = &cp
	return nil
}

func (m *mockUserRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *mockUserRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *mockUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := m.byEmail[email]
	return ok, nil
}

func validRegisterRequest() user.RegisterRequest {
	return user.RegisterRequest{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "correct-horse",
	}
}

func TestRegister_Success(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(repo)

	dto, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, dto.ID)
	assert.Equal(t, "Ada Lovelace", dto.Name)
	assert.Equal(t, "ada@example.com", dto.Email)
	assert.False(t, dto.CreatedAt.IsZero())
}

func TestRegister_StoresHashedPassword(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(repo)

	dto, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	stored, err := repo.FindByID(context.Background(), dto.ID)
	require.NoError(t, err)

	assert.NotEqual(t, "correct-horse", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correct-horse")))
}

func TestRegister_NormalizesEmail(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(repo)

	req := validRegisterRequest()
	req.Email = "  Ada@Example.COM "

	dto, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", dto.Email)
}

func TestRegister_DuplicateEmailCaseInsensitive(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(repo)

	_, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	dup := validRegisterRequest()
	dup.Email = "ADA@Example.com"
	dup.Name = "Someone Else"

	_, err = svc.Register(context.Background(), dup)
	assert.ErrorIs(t, err, user.ErrEmailAlreadyExists)
}

func TestRegister_ValidationFailures(t *testing.T) {
	svc := NewUserService(newMockUserRepo())

	tests := []struct {
		name   string
		mutate func(*user.RegisterRequest)
	}{
		{"missing name", func(r *user.RegisterRequest) { r.Name = "" }},
		{"missing email", func(r *user.RegisterRequest) { r.Email = "" }},
		{"bad email", func(r *user.RegisterRequest) { r.Email = "not-an-email" }},
		{"short password", func(r *user.RegisterRequest) { r.Password = "abc" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegisterRequest()
			tt.mutate(&req)

			_, err := svc.Register(context.Background(), req)
			assert.Error(t, err)
		})
	}
}

func TestLogin_Success(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(repo)

	registered, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	dto, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "Ada@example.com", // mixed case still matches
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, dto.ID)
}

func TestLogin_SameErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(repo)

	_, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	_, unknownErr := svc.Login(context.Background(), user.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	_, wrongPassErr := svc.Login(context.Background(), user.LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong-password",
	})

	// Both failure modes must be indistinguishable to the caller.
	assert.ErrorIs(t, unknownErr, user.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPassErr, user.ErrInvalidCredentials)
	assert.Equal(t, unknownErr, wrongPassErr)
}

func TestGetProfile(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(repo)

	registered, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	dto, err := svc.GetProfile(context.Background(), registered.ID)
	require.NoError(t, err)
	assert.Equal(t, registered.Email, dto.Email)

	_, err = svc.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
