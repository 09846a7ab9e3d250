// Package directory supplies account credentials by name. The core
// only ever reads from it; adding and removing accounts is a CLI
// concern.
package directory

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/kelseyhightower/envconfig"

	"github.com/jmhjr316-Git/twilio-manager/internal/types"
)

// Store resolves an account name to its credential.
type Store interface {
	Get(name string) (types.Credential, bool)
}

// ------------------------------
// Environment store
// ------------------------------

type envSpec struct {
	AccountSID string `envconfig:"ACCOUNT_SID"`
	AuthToken  string `envconfig:"AUTH_TOKEN"`
}

// EnvStore serves the single ambient credential from TWILIO_ACCOUNT_SID
// and TWILIO_AUTH_TOKEN, whatever name is asked for.
type EnvStore struct {
	cred types.Credential
	ok   bool
}

// NewEnvStore reads the environment once, at construction.
func NewEnvStore() (*EnvStore, error) {
	var spec envSpec
	if err := envconfig.Process("twilio", &spec); err != nil {
		return nil, fmt.Errorf("reading credential env: %w", err)
	}
	return &EnvStore{
		cred: types.Credential{AccountSID: spec.AccountSID, AuthToken: spec.AuthToken},
		ok:   spec.AccountSID != "" && spec.AuthToken != "",
	}, nil
}

// Get ignores name; the environment holds at most one credential.
func (s *EnvStore) Get(string) (types.Credential, bool) {
	return s.cred, s.ok
}

// ------------------------------
// File store
// ------------------------------

type fileAccount struct {
	AccountSID string `json:"account_sid"`
	// AuthToken is base64-encoded at rest. Not secrecy, just keeps
	// tokens out of casual grepping and shoulder-surfing.
	AuthToken string `json:"auth_token"`
}

// FileStore persists named accounts as a JSON document.
type FileStore struct {
	path     string
	accounts map[string]fileAccount
}

// DefaultPath is where the CLI keeps its account file.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".twilio-manager", "accounts.json"), nil
}

// OpenFileStore loads the account file at path. A missing file is an
// empty store, not an error.
func OpenFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path, accounts: map[string]fileAccount{}}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading account file: %w", err)
	}
	if err := json.Unmarshal(data, &s.accounts); err != nil {
		return nil, fmt.Errorf("parsing account file %s: %w", path, err)
	}
	return s, nil
}

// Get resolves name to a decoded credential. A token that fails to
// decode is treated as absent.
func (s *FileStore) Get(name string) (types.Credential, bool) {
	acc, ok := s.accounts[name]
	if !ok {
		return types.Credential{}, false
	}
	token, err := base64.StdEncoding.DecodeString(acc.AuthToken)
	if err != nil {
		return types.Credential{}, false
	}
	return types.Credential{AccountSID: acc.AccountSID, AuthToken: string(token)}, true
}

// Add stores or replaces an account and writes the file.
func (s *FileStore) Add(name string, cred types.Credential) error {
	s.accounts[name] = fileAccount{
		AccountSID: cred.AccountSID,
		AuthToken:  base64.StdEncoding.EncodeToString([]byte(cred.AuthToken)),
	}
	return s.save()
}

// Delete removes an account and writes the file. Deleting an unknown
// name is a no-op.
func (s *FileStore) Delete(name string) error {
	if _, ok := s.accounts[name]; !ok {
		return nil
	}
	delete(s.accounts, name)
	return s.save()
}

// Names lists stored account names, sorted.
func (s *FileStore) Names() []string {
	names := make([]string, 0, len(s.accounts))
	for name := range s.accounts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *FileStore) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating account dir: %w", err)
	}
	data, err := json.MarshalIndent(s.accounts, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing account file: %w", err)
	}
	return nil
}
