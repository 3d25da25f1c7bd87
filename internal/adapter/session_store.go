package adapter

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/linemark/internal/model"
)

const (
	sessionFileSuffix  = ".linemark.yaml"
	sessionDigestBytes = 6
)

// SessionStore persists and retrieves annotation sessions.
type SessionStore interface {
	Save(path m.Path, session m.Session) error
	// Load returns an error wrapping fs.ErrNotExist when no session exists.
	Load(path m.Path) (m.Session, error)
}

// LocalSessionStore keeps one YAML file per session on the local disk.
type LocalSessionStore struct{}

// NewSessionStore constructs a SessionStore implementation.
func NewSessionStore() SessionStore {
	return &LocalSessionStore{}
}

// SessionPath returns where the session for source lives inside dir. The
// name carries the base name for readability and a digest of the absolute
// path, so files sharing a base name in different directories stay apart.
func SessionPath(dir m.Path, source m.Path) m.Path {
	abs, err := filepath.Abs(string(source))
	if err != nil {
		abs = filepath.Clean(string(source))
	}

	sum := sha256.Sum256([]byte(abs))
	name := fmt.Sprintf("%s.%x%s", filepath.Base(abs), sum[:sessionDigestBytes], sessionFileSuffix)

	return m.Path(filepath.Join(string(dir), name))
}

// Save writes session to path, creating parent directories as needed.
func (s *LocalSessionStore) Save(path m.Path, session m.Session) error {
	data, err := yaml.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if dir := filepath.Dir(string(path)); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create session directory: %w", err)
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(string(path)), filepath.Base(string(path))+".*.tmp")
	if err != nil {
		return fmt.Errorf("write session: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())

		return fmt.Errorf("write session: %w", err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write session: %w", err)
	}

	if err := os.Rename(tmp.Name(), string(path)); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write session: %w", err)
	}

	return nil
}

// Load reads the session stored at path.
func (s *LocalSessionStore) Load(path m.Path) (m.Session, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Session{}, fmt.Errorf("read session: %w", err)
	}

	var session m.Session
	if err := yaml.Unmarshal(data, &session); err != nil {
		return m.Session{}, fmt.Errorf("decode session %s: %w", path, err)
	}

	return session, nil
}
