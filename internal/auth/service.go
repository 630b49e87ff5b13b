package auth

import (
	"errors"
	"strings"
	"time"

	"gamestore/backend/internal/models"
	"gamestore/backend/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials is returned for an unknown email or a password
	// mismatch. The two cases are indistinguishable on purpose.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountDisabled is returned when the account's active flag is off.
	ErrAccountDisabled = errors.New("account is disabled")

	// ErrInvalidRefreshToken is returned for unknown, expired, or already
	// rotated refresh tokens.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)

// RefreshTokenTTL is how long a refresh token can be exchanged for a new
// session.
const RefreshTokenTTL = 7 * 24 * time.Hour

// DefaultRole is assigned to every newly registered user.
const DefaultRole = "User"

// Service handles the credential lifecycle and session minting.
type Service struct {
	db     *gorm.DB
	tokens *jwt.Manager
}

// NewService creates a Service on top of the given database handle and token
// manager.
func NewService(db *gorm.DB, tokens *jwt.Manager) *Service {
	return &Service{db: db, tokens: tokens}
}

// UserInfo is the identity block returned with every session.
type UserInfo struct {
	ID        uint     `json:"id"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	Roles     []string `json:"roles"`
}

// Session is a freshly minted token pair.
type Session struct {
	Token        string    `json:"token"`
	RefreshToken string    `json:"refreshToken"`
	Expiration   time.Time `json:"expiration"`
	User         UserInfo  `json:"user"`
}

// Register creates a new credential record with the default role and mints a
// session for it. Email uniqueness is case-insensitive.
func (s *Service) Register(email, password, firstName, lastName string) (*Session, error) {
	email = strings.TrimSpace(email)

	var count int64
	if err := s.db.Model(&models.User{}).Where("LOWER(email) = LOWER(?)", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var role models.Role
	if err := s.db.Where(models.Role{Name: DefaultRole}).FirstOrCreate(&role).Error; err != nil {
		return nil, err
	}

	user := models.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: string(hash),
		IsActive:     true,
		Roles:        []*models.Role{&role},
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}

	return s.issueSession(&user)
}

// Login validates the credentials and mints a fresh session.
func (s *Service) Login(email, password string) (*Session, error) {
	var user models.User
	err := s.db.Preload("Roles").Where("LOWER(email) = LOWER(?)", strings.TrimSpace(email)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	return s.issueSession(&user)
}

// Refresh exchanges a persisted refresh token for a new session. The token
// is rotated: the old one is deleted and the new session carries a fresh one.
func (s *Service) Refresh(refreshToken string) (*Session, error) {
	var stored models.RefreshToken
	err := s.db.Where("token = ?", refreshToken).First(&stored).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}

	if err := s.db.Delete(&stored).Error; err != nil {
		return nil, err
	}

	if time.Now().After(stored.ExpiresAt) {
		return nil, ErrInvalidRefreshToken
	}

	var user models.User
	if err := s.db.Preload("Roles").First(&user, stored.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	return s.issueSession(&user)
}

func (s *Service) issueSession(user *models.User) (*Session, error) {
	roles := user.RoleNames()

	token, expiration, err := s.tokens.GenerateToken(jwt.Claims{
		UserID:    user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Roles:     roles,
	})
	if err != nil {
		return nil, err
	}

	refresh := models.RefreshToken{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(RefreshTokenTTL),
	}
	if err := s.db.Create(&refresh).Error; err != nil {
		return nil, err
	}

	return &Session{
		Token:        token,
		RefreshToken: refresh.Token,
		Expiration:   expiration,
		User: UserInfo{
			ID:        user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
			Roles:     roles,
		},
	}, nil
}
