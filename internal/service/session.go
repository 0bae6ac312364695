package service

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mmcdole/bookvibe/internal/config"
	"github.com/mmcdole/bookvibe/internal/domain"
	"github.com/mmcdole/bookvibe/internal/store"
)

// adminMarker is stored under the admin key while logged in; presence is what counts
const adminMarker = "true"

// AdminUser describes the logged in admin
type AdminUser struct {
	Username   string    `json:"username"`
	LoggedInAt time.Time `json:"loggedInAt"`
}

// SessionService manages the admin login marker in local storage
type SessionService struct {
	storage      domain.Storage
	username     string
	passwordHash string
	now          func() time.Time
}

// NewSessionService creates a session service
func NewSessionService(storage domain.Storage, cfg config.AdminConfig) *SessionService {
	return &SessionService{
		storage:      storage,
		username:     cfg.Username,
		passwordHash: cfg.PasswordHash,
		now:          time.Now,
	}
}

// IsLoggedIn reports whether the admin marker is present
func (s *SessionService) IsLoggedIn() (bool, error) {
	_, ok, err := s.storage.GetItem(store.KeyAdmin)
	return ok, err
}

// Login checks credentials and stores the admin marker and user.
// Without a configured hash any non-empty password is accepted.
func (s *SessionService) Login(username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return domain.ErrInvalidCredentials
	}
	if s.username != "" && username != s.username {
		return domain.ErrInvalidCredentials
	}
	if s.passwordHash != "" && !VerifyPassword(s.passwordHash, password) {
		return domain.ErrInvalidCredentials
	}

	if err := s.storage.SetItem(store.KeyAdmin, adminMarker); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	user := AdminUser{Username: username, LoggedInAt: s.now().UTC()}
	if err := store.SetJSON(s.storage, store.KeyAdminUser, user); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// Logout removes the admin marker and user
func (s *SessionService) Logout() error {
	if err := s.storage.RemoveItem(store.KeyAdmin); err != nil {
		return err
	}
	return s.storage.RemoveItem(store.KeyAdminUser)
}

// CurrentUser returns the logged in admin, or ErrNotLoggedIn
func (s *SessionService) CurrentUser() (*AdminUser, error) {
	ok, err := s.IsLoggedIn()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotLoggedIn
	}

	var user AdminUser
	if _, err := store.GetJSON(s.storage, store.KeyAdminUser, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// HashPassword returns a bcrypt hash suitable for admin.password_hash
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword reports whether plain matches hash
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
