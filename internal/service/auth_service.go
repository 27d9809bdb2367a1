package service

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"github.com/flipzokart/api/internal/config"
	"github.com/flipzokart/api/internal/constants"
	"github.com/flipzokart/api/internal/logger"
	"github.com/flipzokart/api/internal/models"
	"github.com/flipzokart/api/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles account registration, login with lockout, password
// recovery and profile updates.
type AuthService struct {
	cfg      *config.Config
	userRepo repository.UserRepository
	now      func() time.Time
}

// NewAuthService creates the auth service.
func NewAuthService(cfg *config.Config, userRepo repository.UserRepository) *AuthService {
	return &AuthService{
		cfg:      cfg,
		userRepo: userRepo,
		now:      time.Now,
	}
}

// HashPassword hashes a password with the configured bcrypt cost.
func (s *AuthService) HashPassword(password string) (string, error) {
	cost := s.cfg.Security.Lockout.BcryptRounds
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compares a hash against a candidate password.
func (s *AuthService) VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// ValidatePassword enforces the minimum length policy.
func (s *AuthService) ValidatePassword(password string) error {
	min := s.cfg.Security.MinPasswordLen
	if min <= 0 {
		min = 6
	}
	if len(password) < min {
		return ErrPasswordTooShort
	}
	return nil
}

// JWTClaims is the session token payload.
type JWTClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateJWT signs a session token for the user.
func (s *AuthService) GenerateJWT(user *models.User) (string, time.Time, error) {
	expireHours := s.cfg.JWT.ExpireHours
	if expireHours <= 0 {
		expireHours = 24
	}
	now := s.now()
	expiresAt := now.Add(time.Duration(expireHours) * time.Hour)

	claims := JWTClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseJWT validates a session token and returns its claims.
func (s *AuthService) ParseJWT(tokenString string) (*JWTClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	claims := &JWTClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWT.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidToken
}

// RegisterInput holds the registration form fields.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
}

// Register creates a customer account.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	email := normalizeEmail(input.Email)
	if err := s.ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	hash, err := s.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Email:        email,
		PasswordHash: hash,
		Phone:        strings.TrimSpace(input.Phone),
		Role:         constants.RoleCustomer,
		Permissions:  DefaultPermissions(constants.RoleCustomer),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	logger.Infow("user registered", "user_id", user.ID, "email", user.Email)
	return user, nil
}

// Login verifies credentials with lockout accounting. Five consecutive
// failures lock the account for the configured window; until it passes,
// even a correct password is rejected.
func (s *AuthService) Login(email, password string) (*models.User, string, time.Time, error) {
	user, err := s.userRepo.GetByEmail(normalizeEmail(email))
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if user == nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	if user.IsBlocked {
		return nil, "", time.Time{}, ErrAccountBlocked
	}

	now := s.now()
	if user.IsLocked(now) {
		return nil, "", time.Time{}, ErrAccountLocked
	}

	if err := s.VerifyPassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, s.recordFailedAttempt(user, now)
	}

	user.LoginAttempts = 0
	user.LockUntil = nil
	user.LastLoginAt = &now
	if err := s.userRepo.Update(user); err != nil {
		return nil, "", time.Time{}, err
	}

	token, expiresAt, err := s.GenerateJWT(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, expiresAt, nil
}

func (s *AuthService) recordFailedAttempt(user *models.User, now time.Time) error {
	maxAttempts := s.cfg.Security.Lockout.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	lockHours := s.cfg.Security.Lockout.LockHours
	if lockHours <= 0 {
		lockHours = 2
	}

	user.LoginAttempts++
	result := ErrInvalidCredentials
	if user.LoginAttempts >= maxAttempts {
		lockUntil := now.Add(time.Duration(lockHours) * time.Hour)
		user.LockUntil = &lockUntil
		user.LoginAttempts = 0
		result = ErrAccountLocked
		logger.Warnw("account locked after repeated failures",
			"user_id", user.ID, "lock_until", lockUntil)
	}
	if err := s.userRepo.Update(user); err != nil {
		return err
	}
	return result
}

// ForgotPassword issues a reset token. The token is logged rather than
// mailed; there is no outbound email channel in this service.
func (s *AuthService) ForgotPassword(email string) error {
	user, err := s.userRepo.GetByEmail(normalizeEmail(email))
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}

	token, err := generateResetToken()
	if err != nil {
		return err
	}
	ttl := s.cfg.Security.ResetTokenTTL
	if ttl <= 0 {
		ttl = 10
	}
	expires := s.now().Add(time.Duration(ttl) * time.Minute)
	user.PasswordResetToken = token
	user.PasswordResetExpires = &expires
	if err := s.userRepo.Update(user); err != nil {
		return err
	}
	logger.Infow("password reset token issued", "user_id", user.ID, "token", token)
	return nil
}

// ResetPassword consumes a reset token and sets a new password.
func (s *AuthService) ResetPassword(token, newPassword string) error {
	if strings.TrimSpace(token) == "" {
		return ErrInvalidResetToken
	}
	if err := s.ValidatePassword(newPassword); err != nil {
		return err
	}

	user, err := s.userRepo.GetByResetToken(token)
	if err != nil {
		return err
	}
	if user == nil || user.PasswordResetExpires == nil || user.PasswordResetExpires.Before(s.now()) {
		return ErrInvalidResetToken
	}

	hash, err := s.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	user.PasswordResetToken = ""
	user.PasswordResetExpires = nil
	user.LoginAttempts = 0
	user.LockUntil = nil
	return s.userRepo.Update(user)
}

// ChangePassword verifies the current password and swaps in a new one.
func (s *AuthService) ChangePassword(userID uint, currentPassword, newPassword string) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}
	if err := s.VerifyPassword(user.PasswordHash, currentPassword); err != nil {
		return ErrWrongPassword
	}
	if err := s.ValidatePassword(newPassword); err != nil {
		return err
	}

	hash, err := s.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.userRepo.Update(user)
}

// ProfileInput holds the editable profile fields.
type ProfileInput struct {
	FirstName string
	LastName  string
	Phone     string
	Avatar    string
}

// UpdateProfile edits the caller's own profile.
func (s *AuthService) UpdateProfile(userID uint, input ProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	if v := strings.TrimSpace(input.FirstName); v != "" {
		user.FirstName = v
	}
	if v := strings.TrimSpace(input.LastName); v != "" {
		user.LastName = v
	}
	if v := strings.TrimSpace(input.Phone); v != "" {
		user.Phone = v
	}
	if v := strings.TrimSpace(input.Avatar); v != "" {
		user.Avatar = v
	}
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUser loads a user by id.
func (s *AuthService) GetUser(userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func generateResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
