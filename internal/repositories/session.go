package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"interview-ai/backend/internal/models"
)

// ErrSessionNotFound is returned when no record exists for a session id.
var ErrSessionNotFound = errors.New("session not found")

type SessionRepository interface {
	Create(session *models.Session) error
	Find(id string) (*models.Session, error)
	AppendResult(id string, result models.QuestionResult) (*models.Session, error)
}

// sessionRepository stores one indented JSON document per session under dir.
// Writes go through a temp file and rename so a crash never leaves a
// half-written record, and AppendResult serializes per session id so
// overlapping appends cannot lose entries.
type sessionRepository struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewSessionRepository(dir string) (SessionRepository, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create sessions directory: %w", err)
	}

	return &sessionRepository{
		dir:   dir,
		locks: make(map[string]*sync.Mutex),
	}, nil
}

// Create implements SessionRepository.
func (r *sessionRepository) Create(session *models.Session) error {
	if err := r.write(session); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// Find implements SessionRepository.
func (r *sessionRepository) Find(id string) (*models.Session, error) {
	data, err := os.ReadFile(r.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session %s: %w", id, err)
	}

	return &session, nil
}

// AppendResult implements SessionRepository. The read-modify-write runs under
// a per-session lock for the lifetime of the process.
func (r *sessionRepository) AppendResult(id string, result models.QuestionResult) (*models.Session, error) {
	lock := r.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	session, err := r.Find(id)
	if err != nil {
		return nil, err
	}

	session.Questions = append(session.Questions, result)

	if err := r.write(session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return session, nil
}

func (r *sessionRepository) lockFor(id string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()

	lock, ok := r.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		r.locks[id] = lock
	}
	return lock
}

func (r *sessionRepository) path(id string) string {
	return filepath.Join(r.dir, id+".json")
}

func (r *sessionRepository) write(session *models.Session) error {
	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	tmp := r.path(session.SessionID) + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	if err := os.Rename(tmp, r.path(session.SessionID)); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace session file: %w", err)
	}

	return nil
}
