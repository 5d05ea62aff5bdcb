// file: client/store.go

package client

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/OndrejKutil/budgeting-dashboard-sub000/logger"
)

// Storage keys for the credential triple. No other component touches these
// directly; all access goes through an ICredentialStore.
const (
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
	keyUserID       = "user_id"
)

// ICredentialStore defines the contract for durable credential storage.
// Implementations must be safe for concurrent use from independent call
// sites; tokens are only ever replaced wholesale, never partially mutated.
type ICredentialStore interface {
	GetAccessToken() string
	GetRefreshToken() string
	GetUserID() string
	// SetTokens overwrites the access and refresh tokens. The user id is
	// written only when non-empty, since a refresh response may omit it.
	SetTokens(access, refresh, userID string) error
	ClearTokens() error
	// IsAuthenticated is a presence check only. It does not validate the
	// token's expiry or signature.
	IsAuthenticated() bool
}

// FileStore persists the credential triple as a JSON document on disk,
// readable only by the owning user. Writes replace the whole file via a
// temp file and rename so concurrent readers never observe a torn write.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates the storage directory if needed and returns a store
// backed by a credentials.json file inside it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create credential dir: %w", err)
	}
	return &FileStore{path: filepath.Join(dir, "credentials.json")}, nil
}

func (s *FileStore) load() map[string]string {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return map[string]string{}
	}
	creds := map[string]string{}
	if err := json.Unmarshal(raw, &creds); err != nil {
		logger.Log.WithError(err).Warn("Credential file is corrupt, treating as empty")
		return map[string]string{}
	}
	return creds
}

func (s *FileStore) save(creds map[string]string) error {
	raw, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace credentials: %w", err)
	}
	return nil
}

func (s *FileStore) get(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()[key]
}

func (s *FileStore) GetAccessToken() string  { return s.get(keyAccessToken) }
func (s *FileStore) GetRefreshToken() string { return s.get(keyRefreshToken) }
func (s *FileStore) GetUserID() string       { return s.get(keyUserID) }

func (s *FileStore) SetTokens(access, refresh, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	creds := s.load()
	creds[keyAccessToken] = access
	creds[keyRefreshToken] = refresh
	if userID != "" {
		creds[keyUserID] = userID
	}
	return s.save(creds)
}

func (s *FileStore) ClearTokens() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear credentials: %w", err)
	}
	return nil
}

func (s *FileStore) IsAuthenticated() bool {
	return s.GetAccessToken() != ""
}

// MemoryStore keeps the credential triple in memory. It is used by tests
// and by embedders that manage persistence themselves.
type MemoryStore struct {
	mu    sync.Mutex
	creds map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{creds: map[string]string{}}
}

func (s *MemoryStore) get(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creds[key]
}

func (s *MemoryStore) GetAccessToken() string  { return s.get(keyAccessToken) }
func (s *MemoryStore) GetRefreshToken() string { return s.get(keyRefreshToken) }
func (s *MemoryStore) GetUserID() string       { return s.get(keyUserID) }

func (s *MemoryStore) SetTokens(access, refresh, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.creds[keyAccessToken] = access
	s.creds[keyRefreshToken] = refresh
	if userID != "" {
		s.creds[keyUserID] = userID
	}
	return nil
}

func (s *MemoryStore) ClearTokens() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.creds = map[string]string{}
	return nil
}

func (s *MemoryStore) IsAuthenticated() bool {
	return s.GetAccessToken() != ""
}
