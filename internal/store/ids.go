package store

import (
	"strings"

	"github.com/google/uuid"
)

const taskIDPrefix = "task"

// newRandomID returns prefix-<suffix> where suffix is the first 8 hex chars of a random UUID.
// 8 hex chars ~= 32 bits; callers re-draw on collision.
func newRandomID(prefix string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return prefix + "-" + suffix
}

func (s *TaskStore) idExistsLocked(id string) bool {
	for _, t := range s.tasks {
		if t.ID == id {
			return true
		}
	}
	return false
}

func (s *TaskStore) nextIDLocked() string {
	for {
		id := s.newID()
		if !s.idExistsLocked(id) {
			return id
		}
	}
}
