package auth_test

import (
	"context"
	"errors"
	"testing"

	"sharda-hr/internal/auth"
	autherrors "sharda-hr/internal/auth/errors"
	authMock "sharda-hr/internal/auth/mock"
	rbacMock "sharda-hr/internal/rbac/mock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func parseClaims(t *testing.T, raw string) jwt.MapClaims {
	t.Helper()
	tok, err := jwt.Parse(raw, func(*jwt.Token) (interface{}, error) { return []byte("test-secret"), nil })
	require.NoError(t, err)
	return tok.Claims.(jwt.MapClaims)
}

func TestService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	ctrl := gomock.NewController(t)

	mockRepo := authMock.NewMockRepository(ctrl)
	mockRBAC := rbacMock.NewMockService(ctrl)

	service := auth.NewService(mockRepo, mockRBAC)
	ctx := context.Background()

	password := "password123"
	pw, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)

	userID := uuid.New()
	companyID := uuid.New()
	employeeID := uuid.New()
	mockUser := &auth.User{
		ID:         userID,
		EmployeeID: employeeID,
		CompanyID:  companyID,
		Email:      "admin@example.com",
		Password:   string(pw),
		IsActive:   true,
	}

	t.Run("Success Login", func(t *testing.T) {
		mockRepo.EXPECT().GetByEmail(ctx, mockUser.Email).Return(mockUser, nil)
		mockRBAC.EXPECT().RoleOf(companyID.String(), employeeID.String()).Return("HR", nil)
		mockRepo.EXPECT().TouchLastLogin(ctx, userID, gomock.Any()).Return(nil)

		tokens, resp, err := service.Login(ctx, mockUser.Email, password)

		require.NoError(t, err)
		assert.Equal(t, "HR", resp.Role)
		assert.Equal(t, companyID.String(), resp.CompanyID)

		access := parseClaims(t, tokens.AccessToken)
		assert.Equal(t, "access", access["typ"])
		assert.Equal(t, employeeID.String(), access["employee_id"])
		assert.Equal(t, "HR", access["role"])
		assert.Equal(t, "refresh", parseClaims(t, tokens.RefreshToken)["typ"])
	})

	t.Run("Wrong Password", func(t *testing.T) {
		mockRepo.EXPECT().GetByEmail(ctx, mockUser.Email).Return(mockUser, nil)

		_, _, err := service.Login(ctx, mockUser.Email, "wrongpass")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		mockRepo.EXPECT().GetByEmail(ctx, "ghost@example.com").Return(nil, errors.New("record not found"))

		_, _, err := service.Login(ctx, "ghost@example.com", password)
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("Inactive User", func(t *testing.T) {
		inactive := *mockUser
		inactive.IsActive = false
		mockRepo.EXPECT().GetByEmail(ctx, mockUser.Email).Return(&inactive, nil)

		_, _, err := service.Login(ctx, mockUser.Email, password)
		assert.ErrorIs(t, err, autherrors.ErrUserInactive)
	})
}

func TestService_RefreshToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	ctrl := gomock.NewController(t)

	mockRepo := authMock.NewMockRepository(ctrl)
	mockRBAC := rbacMock.NewMockService(ctrl)
	service := auth.NewService(mockRepo, mockRBAC)
	ctx := context.Background()

	pw, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	user := &auth.User{
		ID: uuid.New(), EmployeeID: uuid.New(), CompanyID: uuid.New(),
		Email: "e@example.com", Password: string(pw), IsActive: true,
	}

	mockRepo.EXPECT().GetByEmail(ctx, user.Email).Return(user, nil)
	mockRBAC.EXPECT().RoleOf(gomock.Any(), gomock.Any()).Return("EMPLOYEE", nil).Times(2)
	mockRepo.EXPECT().TouchLastLogin(ctx, user.ID, gomock.Any()).Return(nil)

	tokens, _, err := service.Login(ctx, user.Email, "password123")
	require.NoError(t, err)

	t.Run("refresh token issues new pair", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(ctx, user.ID).Return(user, nil)

		next, resp, err := service.RefreshToken(ctx, tokens.RefreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, next.AccessToken)
		assert.Equal(t, user.ID.String(), resp.ID)
	})

	t.Run("access token cannot refresh", func(t *testing.T) {
		_, _, err := service.RefreshToken(ctx, tokens.AccessToken)
		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, _, err := service.RefreshToken(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})
}

func TestService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := authMock.NewMockRepository(ctrl)
	mockRBAC := rbacMock.NewMockService(ctrl)
	service := auth.NewService(mockRepo, mockRBAC)
	ctx := context.Background()

	t.Run("Success Register", func(t *testing.T) {
		cID := uuid.New()
		eID := uuid.New()

		req := auth.RegisterRequest{
			CompanyID:  cID.String(),
			EmployeeID: eID.String(),
			Email:      "User@Example.com",
			Name:       "Asha Rao",
			Password:   "password123",
		}

		mockRepo.EXPECT().EmployeeInCompany(ctx, req.CompanyID, req.EmployeeID).Return(true, nil)
		mockRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *auth.User) error {
			assert.NotEqual(t, "password123", u.Password)
			assert.Equal(t, eID, u.EmployeeID)
			return nil
		})
		mockRBAC.EXPECT().RoleOf(req.CompanyID, req.EmployeeID).Return("EMPLOYEE", nil)

		resp, err := service.Register(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, "user@example.com", resp.Email)
		assert.Equal(t, "EMPLOYEE", resp.Role)
		assert.Equal(t, cID.String(), resp.CompanyID)
	})

	t.Run("Employee Not In Company", func(t *testing.T) {
		req := auth.RegisterRequest{
			CompanyID:  uuid.NewString(),
			EmployeeID: uuid.NewString(),
			Password:   "password123",
		}

		mockRepo.EXPECT().EmployeeInCompany(ctx, req.CompanyID, req.EmployeeID).Return(false, nil)

		_, err := service.Register(ctx, req)
		assert.Equal(t, autherrors.ErrEmployeeNotInCompany, err)
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		req := auth.RegisterRequest{
			CompanyID:  uuid.NewString(),
			EmployeeID: uuid.NewString(),
			Email:      "duplicate@example.com",
			Password:   "password123",
		}

		mockRepo.EXPECT().EmployeeInCompany(ctx, req.CompanyID, req.EmployeeID).Return(true, nil)
		mockRepo.EXPECT().Create(ctx, gomock.Any()).Return(&pgconn.PgError{Code: "23505"})

		_, err := service.Register(ctx, req)
		assert.Equal(t, autherrors.ErrEmailAlreadyRegistered, err)
	})
}

func TestService_GetMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := authMock.NewMockRepository(ctrl)
	mockRBAC := rbacMock.NewMockService(ctrl)
	service := auth.NewService(mockRepo, mockRBAC)
	ctx := context.Background()

	user := &auth.User{ID: uuid.New(), EmployeeID: uuid.New(), CompanyID: uuid.New(), Email: "me@example.com"}
	mockRepo.EXPECT().GetByID(ctx, user.ID).Return(user, nil)
	mockRBAC.EXPECT().RoleOf(user.CompanyID.String(), user.EmployeeID.String()).Return("MANAGER", nil)

	resp, err := service.GetMe(ctx, user.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "MANAGER", resp.Role)

	_, err = service.GetMe(ctx, "bad-id")
	assert.Equal(t, autherrors.ErrInvalidUserID, err)
}
