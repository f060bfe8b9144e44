package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/sharearahammed/mega-earning-server/internal/cache"
	apperrors "github.com/sharearahammed/mega-earning-server/internal/errors"
	"github.com/sharearahammed/mega-earning-server/internal/model"
	"github.com/sharearahammed/mega-earning-server/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UserService handles identity and role operations.
type UserService interface {
	// Upsert creates the user on first login with the role's signup coin
	// bonus, or returns the stored record on later logins.
	Upsert(ctx context.Context, email, name, photoURL string, role model.Role) (*model.User, error)
	Get(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	UpdateRole(ctx context.Context, email string, role model.Role) (*model.User, error)
	Delete(ctx context.Context, email string) error
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService creates a new user service.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

// UserCacheKey is the cache key for a user profile. Ledger operations use it
// to invalidate the entry of any user whose balance they touch.
func UserCacheKey(email string) string {
	return fmt.Sprintf("user:%s", email)
}

func (s *userService) Upsert(ctx context.Context, email, name, photoURL string, role model.Role) (*model.User, error) {
	existing, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	if !role.Valid() {
		return nil, apperrors.ErrInvalidRole
	}

	user := &model.User{
		Name:     name,
		Email:    email,
		PhotoURL: photoURL,
		Role:     role,
		Coins:    role.SignupCoins(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		// Lost a first-login race for the same email; the winner's record is
		// authoritative.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return s.repo.FindByEmail(ctx, email)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	_ = s.cache.Delete(ctx, UserCacheKey(email))
	return user, nil
}

func (s *userService) Get(ctx context.Context, email string) (*model.User, error) {
	var cached model.User
	if s.cache.GetJSON(ctx, UserCacheKey(email), &cached) {
		return &cached, nil
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	s.cache.SetJSON(ctx, UserCacheKey(email), user, userCacheTTL)
	return user, nil
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) UpdateRole(ctx context.Context, email string, role model.Role) (*model.User, error) {
	if !role.Valid() {
		return nil, apperrors.ErrInvalidRole
	}

	if err := s.repo.UpdateRole(ctx, email, role); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	_ = s.cache.Delete(ctx, UserCacheKey(email))
	return s.repo.FindByEmail(ctx, email)
}

func (s *userService) Delete(ctx context.Context, email string) error {
	if err := s.repo.Delete(ctx, email); err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrUserNotFound
		}
		return err
	}
	return s.cache.Delete(ctx, UserCacheKey(email))
}
