package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/modastore/modastore-backend/internal/users"
	"github.com/modastore/modastore-backend/pkg/config"
	"github.com/modastore/modastore-backend/pkg/db/models"
	"github.com/modastore/modastore-backend/pkg/enums"
	pkgerrors "github.com/modastore/modastore-backend/pkg/errors"
)

func testServiceParams(repo userRepository) ServiceParams {
	return ServiceParams{
		UserRepo: repo,
		JWTConfig: config.JWTConfig{
			Secret:            "test-secret",
			Issuer:            "modastore-test",
			ExpirationMinutes: 15,
		},
	}
}

func TestRegisterDefaultsToCustomer(t *testing.T) {
	t.Parallel()

	repo := newStubUserRepo()
	svc, err := NewService(testServiceParams(repo))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	resp, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "  Shopper@Example.com ",
		Password: "hunter2hunter2",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if resp.AccessToken == "" {
		t.Fatal("expected access token")
	}
	if resp.User.Email != "shopper@example.com" {
		t.Fatalf("expected normalized email, got %s", resp.User.Email)
	}
	if resp.User.Role != enums.UserRoleCustomer {
		t.Fatalf("expected customer role, got %s", resp.User.Role)
	}
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	t.Parallel()

	svc, _ := NewService(testServiceParams(newStubUserRepo()))
	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "shopper@example.com",
		Password: "hunter2hunter2",
		Role:     "admin",
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	t.Parallel()

	repo := newStubUserRepo()
	svc, _ := NewService(testServiceParams(repo))
	ctx := context.Background()

	req := RegisterRequest{Email: "dup@example.com", Password: "hunter2hunter2"}
	if _, err := svc.Register(ctx, req); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := svc.Register(ctx, req)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestLoginVerifiesPassword(t *testing.T) {
	t.Parallel()

	repo := newStubUserRepo()
	svc, _ := NewService(testServiceParams(repo))
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterRequest{
		Email:    "vendor@example.com",
		Password: "correct-horse-battery",
		Role:     "vendor",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	resp, err := svc.Login(ctx, LoginRequest{Email: "vendor@example.com", Password: "correct-horse-battery"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.User.Role != enums.UserRoleVendor {
		t.Fatalf("expected vendor role, got %s", resp.User.Role)
	}

	_, err = svc.Login(ctx, LoginRequest{Email: "vendor@example.com", Password: "wrong"})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestLoginUnknownEmailUnauthorized(t *testing.T) {
	t.Parallel()

	svc, _ := NewService(testServiceParams(newStubUserRepo()))
	_, err := svc.Login(context.Background(), LoginRequest{Email: "ghost@example.com", Password: "whatever"})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

type stubUserRepo struct {
	byEmail map[string]*models.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byEmail: map[string]*models.User{}}
}

func (s *stubUserRepo) Create(ctx context.Context, dto users.CreateUserDTO) (*models.User, error) {
	if _, exists := s.byEmail[dto.Email]; exists {
		return nil, errDuplicateEmail{}
	}
	user := dto.ToModel()
	user.ID = uuid.New()
	s.byEmail[dto.Email] = user
	return user, nil
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user, ok := s.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

type errDuplicateEmail struct{}

func (errDuplicateEmail) Error() string {
	return `duplicate key value violates unique constraint "idx_users_email"`
}
