package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	autherrors "sharda-hr/internal/auth/errors"
	"sharda-hr/internal/rbac"
	"sharda-hr/internal/shared/authtoken"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (TokenPair, AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (TokenPair, AuthResponse, error)
	GetMe(ctx context.Context, userID string) (*AuthResponse, error)
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
}

type service struct {
	repo   Repository
	rbac   rbac.Service
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, rbacService rbac.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, rbac: rbacService, now: time.Now, logger: l}
}

func (s *service) Login(ctx context.Context, email, password string) (TokenPair, AuthResponse, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return TokenPair{}, AuthResponse{}, autherrors.ErrUserInactive
	}

	tokens, resp, err := s.issue(user)
	if err != nil {
		return TokenPair{}, AuthResponse{}, err
	}

	if err := s.repo.TouchLastLogin(ctx, user.ID, s.now().UTC()); err != nil {
		s.logger.Warn("update last login failed", zap.String("user_id", user.ID.String()), zap.Error(err))
	}

	s.logger.Info("login success",
		zap.String("user_id", user.ID.String()),
		zap.String("company_id", user.CompanyID.String()),
		zap.String("role", resp.Role),
	)
	return tokens, resp, nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (TokenPair, AuthResponse, error) {
	claims, err := authtoken.Parse(refreshToken)
	if err != nil || claims.Type != authtoken.TypeRefresh {
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidUserID
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return TokenPair{}, AuthResponse{}, autherrors.ErrUserNotFound
	}
	if !user.IsActive {
		return TokenPair{}, AuthResponse{}, autherrors.ErrUserInactive
	}

	// Role is re-read so a demotion applies at the next refresh.
	return s.issue(user)
}

func (s *service) GetMe(ctx context.Context, userID string) (*AuthResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, autherrors.ErrInvalidUserID
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, autherrors.ErrUserNotFound
	}

	role, err := s.rbac.RoleOf(u.CompanyID.String(), u.EmployeeID.String())
	if err != nil {
		return nil, err
	}

	resp := mapToResponse(u, role)
	return &resp, nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	eID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return AuthResponse{}, autherrors.ErrEmployeeNotInCompany
	}
	cID, err := uuid.Parse(req.CompanyID)
	if err != nil {
		return AuthResponse{}, autherrors.ErrEmployeeNotInCompany
	}

	ok, err := s.repo.EmployeeInCompany(ctx, req.CompanyID, req.EmployeeID)
	if err != nil {
		return AuthResponse{}, err
	}
	if !ok {
		return AuthResponse{}, autherrors.ErrEmployeeNotInCompany
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResponse{}, err
	}

	user := &User{
		ID:         uuid.New(),
		EmployeeID: eID,
		CompanyID:  cID,
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Name:       req.Name,
		Password:   string(hashed),
		IsActive:   true,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		var pgErr *pgconn.PgError
		if errors.Is(err, gorm.ErrDuplicatedKey) || (errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation) {
			return AuthResponse{}, autherrors.ErrEmailAlreadyRegistered
		}
		return AuthResponse{}, err
	}

	role, err := s.rbac.RoleOf(req.CompanyID, req.EmployeeID)
	if err != nil {
		return AuthResponse{}, err
	}

	s.logger.Info("user registered",
		zap.String("user_id", user.ID.String()),
		zap.String("employee_id", req.EmployeeID),
	)
	return mapToResponse(user, role), nil
}

func (s *service) issue(user *User) (TokenPair, AuthResponse, error) {
	role, err := s.rbac.RoleOf(user.CompanyID.String(), user.EmployeeID.String())
	if err != nil {
		return TokenPair{}, AuthResponse{}, err
	}

	access, err := s.generateToken(user, role, authtoken.TypeAccess, AccessTokenTTL)
	if err != nil {
		return TokenPair{}, AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	refresh, err := s.generateToken(user, role, authtoken.TypeRefresh, RefreshTokenTTL)
	if err != nil {
		return TokenPair{}, AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return TokenPair{AccessToken: access, RefreshToken: refresh}, mapToResponse(user, role), nil
}

func (s *service) generateToken(user *User, role, typ string, ttl time.Duration) (string, error) {
	return authtoken.Sign(authtoken.Claims{
		UserID:     user.ID.String(),
		EmployeeID: user.EmployeeID.String(),
		CompanyID:  user.CompanyID.String(),
		Role:       role,
		Type:       typ,
	}, s.now(), ttl)
}

func mapToResponse(u *User, role string) AuthResponse {
	return AuthResponse{
		ID:         u.ID.String(),
		CompanyID:  u.CompanyID.String(),
		EmployeeID: u.EmployeeID.String(),
		Email:      u.Email,
		Name:       u.Name,
		Role:       role,
	}
}
