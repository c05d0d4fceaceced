// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tenantflow/tenantflow/pkg/bootstrap"
)

const sessionFileName = "session.json"

// DefaultPath is the session file under the user config directory
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate the config directory: %w", err)
	}

	return filepath.Join(dir, "tenantflow", sessionFileName), nil
}

// FileStore keeps the session of the local user in a JSON file only readable
// by its owner
type FileStore struct {
	path string
}

func (s *FileStore) Path() string {
	return s.path
}

// Load returns nil without error when there is no stored session
func (s *FileStore) Load() (*bootstrap.Session, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	if len(raw) == 0 {
		return nil, nil
	}

	session := new(bootstrap.Session)
	if err := json.Unmarshal(raw, session); err != nil {
		return nil, fmt.Errorf("failed to decode session file: %w", err)
	}

	if session.UserID == "" || session.Token == "" {
		return nil, nil
	}

	return session, nil
}

// Save replaces the stored session with a rename, so readers never observe a
// partially written file
func (s *FileStore) Save(session *bootstrap.Session) error {
	if session == nil {
		return s.Clear()
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".session-*")
	if err != nil {
		return fmt.Errorf("failed to create session file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write session file: %w", err)
	}

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to restrict session file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to store session file: %w", err)
	}

	return nil
}

func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}

	return nil
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: filepath.Clean(path)}
}
