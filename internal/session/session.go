// Package session owns the per-passenger mutable state: the last billed
// amount. Everything else about a passenger is an immutable snapshot.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mohinik7/Metro-Route-Optimization/internal/model"
)

var ErrNotFound = errors.New("session not found")

type Session struct {
	ID        uuid.UUID
	Passenger model.Passenger
	Created   time.Time

	mu     sync.Mutex
	billed float64
}

func New(p model.Passenger) *Session {
	return &Session{
		ID:        uuid.New(),
		Passenger: p,
		Created:   time.Now().UTC(),
	}
}

// SetBill replaces the billed amount.
func (s *Session) SetBill(amount float64) {
	s.mu.Lock()
	s.billed = amount
	s.mu.Unlock()
}

func (s *Session) Bill() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.billed
}

type Snapshot struct {
	ID        uuid.UUID       `json:"id"`
	Passenger model.Passenger `json:"passenger"`
	Billed    float64         `json:"billed"`
	Created   time.Time       `json:"created"`
}

func (s *Session) Snapshot() Snapshot {
	return Snapshot{ID: s.ID, Passenger: s.Passenger, Billed: s.Bill(), Created: s.Created}
}

// Store keeps the sessions of one running process. Nothing is persisted.
type Store struct {
	mu sync.RWMutex
	m  map[uuid.UUID]*Session
}

func NewStore() *Store {
	return &Store{m: make(map[uuid.UUID]*Session)}
}

func (st *Store) Create(p model.Passenger) *Session {
	s := New(p)
	st.mu.Lock()
	st.m[s.ID] = s
	st.mu.Unlock()
	return s
}

func (st *Store) Get(id uuid.UUID) (*Session, error) {
	st.mu.RLock()
	s, ok := st.m[id]
	st.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// Lookup parses id and returns the session.
func (st *Store) Lookup(id string) (*Session, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return st.Get(u)
}

func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.m)
}
