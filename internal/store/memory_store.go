package store

import (
	"sync"

	"github.com/preston-bernstein/youth-soccer-scout/internal/domain/teams"
)

// MemoryStore keeps a thread-safe copy of the current rankings board in memory.
type MemoryStore struct {
	mu     sync.RWMutex
	board  teams.Board
	loaded bool
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Board returns a copy of the current board.
func (s *MemoryStore) Board() teams.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyBoard(s.board)
}

// SetBoard replaces the existing board with a new snapshot.
func (s *MemoryStore) SetBoard(board teams.Board) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.board = copyBoard(board)
	s.loaded = true
}

// Ready reports whether SetBoard has been called at least once.
func (s *MemoryStore) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

func copyBoard(b teams.Board) teams.Board {
	out := b
	out.Rankings = make([]teams.Ranking, len(b.Rankings))
	copy(out.Rankings, b.Rankings)
	out.Applied = append([]teams.Link(nil), b.Applied...)
	out.Review = append([]teams.Link(nil), b.Review...)
	out.Untracked = append([]teams.Record(nil), b.Untracked...)
	return out
}
