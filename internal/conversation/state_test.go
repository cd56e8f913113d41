package conversation

import (
	"testing"
	"time"

	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/domain"
	"github.com/stretchr/testify/assert"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newTestStore(ttl time.Duration) (*Store, *fakeClock) {
	c := &fakeClock{t: time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)}
	return NewStore(ttl, c.now), c
}

func TestStore_StartGetClear(t *testing.T) {
	s, _ := newTestStore(time.Hour)

	assert.Equal(t, Idle, s.Get(1).Kind)

	s.Start(1, FieldValueState(7, domain.FieldDate))
	assert.Equal(t, State{Kind: AwaitingEventFieldValue, EventID: 7, Field: domain.FieldDate}, s.Get(1))
	assert.Equal(t, Idle, s.Get(2).Kind)

	prev, ok := s.Clear(1)
	assert.True(t, ok)
	assert.Equal(t, AwaitingEventFieldValue, prev.Kind)
	assert.Equal(t, Idle, s.Get(1).Kind)

	_, ok = s.Clear(1)
	assert.False(t, ok)
}

func TestStore_StartReplacesFlow(t *testing.T) {
	s, _ := newTestStore(time.Hour)

	s.Start(1, CommentState(3))
	s.Start(1, ProfileState())

	assert.Equal(t, ProfileState(), s.Get(1))
	assert.Equal(t, 1, s.Len())

	s.Start(1, State{Kind: Idle})
	assert.Zero(t, s.Len())
}

func TestStore_IdleTTL(t *testing.T) {
	s, clock := newTestStore(10 * time.Minute)

	s.Start(1, NewEventState())
	s.Start(2, ProfileState())

	clock.t = clock.t.Add(8 * time.Minute)
	s.Touch(2)
	clock.t = clock.t.Add(5 * time.Minute)

	assert.Equal(t, Idle, s.Get(1).Kind)
	assert.Equal(t, AwaitingProfile, s.Get(2).Kind)

	clock.t = clock.t.Add(11 * time.Minute)
	_, ok := s.Clear(2)
	assert.False(t, ok)
}

func TestStore_Sweep(t *testing.T) {
	s, clock := newTestStore(time.Minute)

	s.Start(1, ProfileState())
	s.Start(2, ProfileState())
	clock.t = clock.t.Add(2 * time.Minute)
	s.Start(3, ProfileState())

	assert.Equal(t, 2, s.Sweep())
	assert.Equal(t, 1, s.Len())
	assert.Zero(t, s.Sweep())
}
