package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/kofidarko/gyidie-backend/internal/models"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type credentialRecord struct {
	PasswordHash string      `json:"password_hash"`
	User         models.User `json:"user"`
}

// CredentialFile is a JSON-file-backed credential table keyed by email,
// used only when the identity database is unreachable. It persists
// across restarts but offers none of the database's guarantees.
type CredentialFile struct {
	mu    sync.Mutex
	path  string
	users map[string]credentialRecord
}

// NewCredentialFile loads (or seeds) the credential file at path. An
// empty path keeps the table purely in-memory.
func NewCredentialFile(path string) (*CredentialFile, error) {
	c := &CredentialFile{path: path, users: make(map[string]credentialRecord)}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := json.Unmarshal(data, &c.users); err != nil {
				return nil, fmt.Errorf("failed to parse credential file: %w", err)
			}
			return c, nil
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read credential file: %w", err)
		}
	}

	c.seedDefaults()
	if err := c.save(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *CredentialFile) seedDefaults() {
	seed := func(email, password, role string, id string) {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return
		}
		c.users[email] = credentialRecord{
			PasswordHash: string(hash),
			User: models.User{
				ID:        uuid.MustParse(id),
				Email:     email,
				Role:      role,
				CreatedAt: time.Now().UTC(),
			},
		}
	}
	seed("admin@gyidie.com", "admin123", "admin", "d3a0c001-0000-4000-8000-000000000000")
	seed("user@demo.com", "user123", "user", "d3a0c001-0000-4000-8000-000000000001")
}

func (c *CredentialFile) save() error {
	if c.path == "" {
		return nil
	}
	data, err := json.MarshalIndent(c.users, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write credential file: %w", err)
	}
	return nil
}

func (c *CredentialFile) Register(email, password string) (*models.User, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.users[email]; exists {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:        uuid.New(),
		Email:     email,
		Role:      "user",
		CreatedAt: time.Now().UTC(),
	}
	c.users[email] = credentialRecord{PasswordHash: string(hash), User: user}

	if err := c.save(); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *CredentialFile) Authenticate(email, password string) (*models.User, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	record, ok := c.users[email]
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(record.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	user := record.User
	return &user, nil
}
