package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"lbtui/internal/modules/auth/domain"
	authout "lbtui/internal/modules/auth/port/out"
	apperrors "lbtui/internal/platform/errors"
)

// FileCredentialStore keeps one credential in a JSON file under the data
// dir. Writes go through a temp file and rename so a reader never sees a
// half-written pair.
type FileCredentialStore struct {
	path string
}

// NewFileCredentialStore takes the file name so the user and admin sessions
// can live in separate files under the same data dir.
func NewFileCredentialStore(dataDir, name string) authout.CredentialStore {
	return &FileCredentialStore{path: filepath.Join(dataDir, name)}
}

func (s *FileCredentialStore) Save(_ context.Context, cred domain.Credential) error {
	if !cred.Present() {
		return apperrors.ErrInvalidInput
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create credential dir: %w", err)
	}
	payload, err := json.MarshalIndent(cred, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal credential: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o600); err != nil {
		return fmt.Errorf("write credential: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("commit credential: %w", err)
	}
	return nil
}

func (s *FileCredentialStore) Load(_ context.Context) (domain.Credential, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Credential{}, apperrors.ErrNoCredential
		}
		return domain.Credential{}, fmt.Errorf("read credential: %w", err)
	}
	cred := domain.Credential{}
	if err := json.Unmarshal(payload, &cred); err != nil {
		return domain.Credential{}, fmt.Errorf("decode credential: %w", err)
	}
	if !cred.Present() {
		return domain.Credential{}, apperrors.ErrNoCredential
	}
	return cred, nil
}

func (s *FileCredentialStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("clear credential: %w", err)
	}
	return nil
}
