package auth

import (
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
)

// Store persists a credential between runs. The stored format belongs to
// the implementation; callers treat the cache as an opaque blob.
type Store interface {
	Load() (*oauth2.Token, error)
	Save(*oauth2.Token) error
}

// FileStore keeps the token as JSON in a single file.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore writing to path.
func NewFileStore(path string) FileStore {
	return FileStore{path: path}
}

// Load reads and decodes the cached token.
func (s FileStore) Load() (*oauth2.Token, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tok := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(tok); err != nil {
		return nil, fmt.Errorf("decoding token file %s: %w", s.path, err)
	}
	return tok, nil
}

// Save writes the token, overwriting any previous contents.
func (s FileStore) Save(tok *oauth2.Token) error {
	f, err := os.OpenFile(s.path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("opening token file %s: %w", s.path, err)
	}
	defer f.Close()
	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("encoding token to %s: %w", s.path, err)
	}
	return nil
}
