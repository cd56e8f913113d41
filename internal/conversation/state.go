// Package conversation tracks which multi-step input each chat identity is
// expected to send next and turns that input into typed submissions.
package conversation

import (
	"sync"
	"time"

	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/domain"
)

type Kind string

const (
	Idle                        Kind = "idle"
	AwaitingProfile             Kind = "awaiting_profile"
	AwaitingNewEvent            Kind = "awaiting_new_event"
	AwaitingEventFieldValue     Kind = "awaiting_event_field_value"
	AwaitingRegistrationComment Kind = "awaiting_registration_comment"
)

// State is the awaited input kind plus the flow context it needs.
// EventID is set for field edits and registration comments, Field only
// for field edits.
type State struct {
	Kind    Kind
	EventID int64
	Field   domain.EventField
}

func (s State) Idle() bool {
	return s.Kind == "" || s.Kind == Idle
}

func ProfileState() State { return State{Kind: AwaitingProfile} }

func NewEventState() State { return State{Kind: AwaitingNewEvent} }

func FieldValueState(eventID int64, f domain.EventField) State {
	return State{Kind: AwaitingEventFieldValue, EventID: eventID, Field: f}
}

func CommentState(eventID int64) State {
	return State{Kind: AwaitingRegistrationComment, EventID: eventID}
}

type Session struct {
	State     State
	UpdatedAt time.Time
}

// Store keeps one session per identity in memory. Sessions idle for longer
// than the TTL read as Idle and are dropped by Sweep. Nothing survives a
// restart.
type Store struct {
	mu       sync.Mutex
	sessions map[int64]Session
	ttl      time.Duration
	now      func() time.Time
}

func NewStore(ttl time.Duration, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		sessions: make(map[int64]Session),
		ttl:      ttl,
		now:      now,
	}
}

func (s *Store) Get(id int64) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return State{Kind: Idle}
	}
	if s.expired(sess) {
		delete(s.sessions, id)
		return State{Kind: Idle}
	}
	return sess.State
}

// новый сценарий вытесняет текущий
func (s *Store) Start(id int64, st State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st.Idle() {
		delete(s.sessions, id)
		return
	}
	s.sessions[id] = Session{State: st, UpdatedAt: s.now()}
}

func (s *Store) Touch(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[id]; ok {
		sess.UpdatedAt = s.now()
		s.sessions[id] = sess
	}
}

func (s *Store) Clear(id int64) (State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return State{Kind: Idle}, false
	}
	delete(s.sessions, id)
	if s.expired(sess) {
		return State{Kind: Idle}, false
	}
	return sess.State, true
}

func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if s.expired(sess) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Store) expired(sess Session) bool {
	return s.ttl > 0 && s.now().Sub(sess.UpdatedAt) > s.ttl
}
