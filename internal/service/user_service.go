package service

import (
	"strings"

	"github.com/flipzokart/api/internal/constants"
	"github.com/flipzokart/api/internal/logger"
	"github.com/flipzokart/api/internal/models"
	"github.com/flipzokart/api/internal/repository"
)

// UserService owns the admin-side account management.
type UserService struct {
	userRepo repository.UserRepository
	auth     *AuthService
}

// NewUserService creates the user management service.
func NewUserService(userRepo repository.UserRepository, auth *AuthService) *UserService {
	return &UserService{userRepo: userRepo, auth: auth}
}

// List returns accounts matching the filter.
func (s *UserService) List(filter repository.UserListFilter) ([]models.User, int64, error) {
	return s.userRepo.List(filter)
}

// Get loads one account.
func (s *UserService) Get(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// CreateStaffInput is the admin create-account form.
type CreateStaffInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string
}

// CreateStaff creates a staff account with the role's default permission
// set. Individual flags can be adjusted afterwards.
func (s *UserService) CreateStaff(input CreateStaffInput) (*models.User, error) {
	role := input.Role
	switch role {
	case constants.RoleAdmin, constants.RoleManager, constants.RoleSupport:
	default:
		role = constants.RoleSupport
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	existing, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailExists
	}
	if err := s.auth.ValidatePassword(input.Password); err != nil {
		return nil, err
	}
	hash, err := s.auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Permissions:  DefaultPermissions(role),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	logger.Infow("staff account created", "user_id", user.ID, "role", role)
	return user, nil
}

// SetBlocked blocks or unblocks an account.
func (s *UserService) SetBlocked(id uint, blocked bool) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	user.IsBlocked = blocked
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	logger.Warnw("account block flag changed", "user_id", id, "blocked", blocked)
	return user, nil
}

// SetRole changes an account's role and resets its permissions to the
// role's default mapping.
func (s *UserService) SetRole(id uint, role string) (*models.User, error) {
	switch role {
	case constants.RoleCustomer, constants.RoleAdmin, constants.RoleManager, constants.RoleSupport:
	default:
		return nil, ErrInvalidRole
	}
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	user.Role = role
	user.Permissions = DefaultPermissions(role)
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// SetPermissions overrides an account's individual permission flags.
func (s *UserService) SetPermissions(id uint, permissions models.Permissions) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	user.Permissions = permissions
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
