package service

import (
	"sync"

	"github.com/google/uuid"
)

// LessonLocks hands out one mutex per lesson id. Enrollment, lifecycle
// transitions and rating all run their check-then-write sequence while
// holding the lesson's mutex, so two concurrent enrollments can never both
// pass the capacity check, and two concurrent ratings can never both pass
// the uniqueness check. The map grows with the number of distinct lessons
// touched by this process, which is bounded and small.
type LessonLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func NewLessonLocks() *LessonLocks {
	return &LessonLocks{locks: make(map[uuid.UUID]*sync.Mutex)}
}

// Lock acquires the mutex for the lesson and returns it so the caller can
// defer the unlock.
func (l *LessonLocks) Lock(lessonID uuid.UUID) *sync.Mutex {
	l.mu.Lock()
	m, ok := l.locks[lessonID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[lessonID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m
}
