package conversation

import (
	"strings"
	"testing"

	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/domain"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireFieldError(t *testing.T, err error, field string) {
	t.Helper()
	var fe *validation.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, field, fe.Field)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestParseProfile(t *testing.T) {
	in, err := ParseProfile("Anna Petrova, IT-21, 01.02.2003, +7 999 000-11-22, @anna")

	require.NoError(t, err)
	assert.Equal(t, domain.ProfileInput{
		FullName:  "Anna Petrova",
		Group:     "IT-21",
		BirthDate: "01.02.2003",
		Phone:     "+7 999 000-11-22",
		Handle:    "@anna",
	}, in)
}

func TestParseProfile_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		field string
	}{
		{name: "too few fields", text: "Anna, IT-21, 01.02.2003, +79990001122", field: "profile"},
		{name: "too many fields", text: "Anna, IT-21, 01.02.2003, +79990001122, @anna, extra", field: "profile"},
		{name: "iso birth date", text: "Anna, IT-21, 2003-02-01, +79990001122, @anna", field: "birth_date"},
		{name: "year before 1900", text: "Anna, IT-21, 01.02.1850, +79990001122, @anna", field: "birth_date"},
		{name: "phone letters", text: "Anna, IT-21, 01.02.2003, phone, @anna", field: "phone"},
		{name: "handle without at", text: "Anna, IT-21, 01.02.2003, +79990001122, anna", field: "handle"},
		{name: "empty group", text: "Anna, , 01.02.2003, +79990001122, @anna", field: "group"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseProfile(tt.text)
			requireFieldError(t, err, tt.field)
		})
	}
}

func TestParseNewEvent(t *testing.T) {
	text := `title: Park Cleanup
date: 2025-04-10
time: 9:00
location: Central Park, north gate
capacity: 30
description: Bring gloves`

	in, err := ParseNewEvent(text)

	require.NoError(t, err)
	assert.Equal(t, domain.EventInput{
		Title:       "Park Cleanup",
		Description: "Bring gloves",
		Date:        "2025-04-10",
		Time:        "09:00",
		Location:    "Central Park, north gate",
		Capacity:    30,
	}, in)
}

func TestParseNewEvent_RussianKeysAnyOrder(t *testing.T) {
	text := `Мест: 0
Место: Центральный парк
Время: 14:00
Дата: 2025-04-10
Название: Уборка парка`

	in, err := ParseNewEvent(text)

	require.NoError(t, err)
	assert.Equal(t, "Уборка парка", in.Title)
	assert.Zero(t, in.Capacity)
	assert.Nil(t, in.CapacityPtr())
	assert.Empty(t, in.Description)
}

func TestParseNewEvent_Invalid(t *testing.T) {
	valid := map[string]string{
		"title":    "Park Cleanup",
		"date":     "2025-04-10",
		"time":     "14:00",
		"location": "Central Park",
		"capacity": "10",
	}
	build := func(override map[string]string, drop string) string {
		var lines []string
		for _, k := range []string{"title", "date", "time", "location", "capacity"} {
			if k == drop {
				continue
			}
			v := valid[k]
			if o, ok := override[k]; ok {
				v = o
			}
			lines = append(lines, k+": "+v)
		}
		return strings.Join(lines, "\n")
	}

	tests := []struct {
		name  string
		text  string
		field string
	}{
		{name: "day-first date", text: build(map[string]string{"date": "10.04.2025"}, ""), field: "date"},
		{name: "bad time", text: build(map[string]string{"time": "25:00"}, ""), field: "time"},
		{name: "negative capacity", text: build(map[string]string{"capacity": "-1"}, ""), field: "capacity"},
		{name: "text capacity", text: build(map[string]string{"capacity": "many"}, ""), field: "capacity"},
		{name: "missing title", text: build(nil, "title"), field: "title"},
		{name: "missing capacity", text: build(nil, "capacity"), field: "capacity"},
		{name: "unknown key", text: build(nil, "") + "\ncolor: red", field: "color"},
		{name: "positional line", text: "Park Cleanup, 2025-04-10, Central Park, 10", field: "event"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseNewEvent(tt.text)
			requireFieldError(t, err, tt.field)
		})
	}
}

func TestParseComment(t *testing.T) {
	c, err := ParseComment("  after lunch ")
	require.NoError(t, err)
	assert.Equal(t, "after lunch", c)

	for _, skip := range []string{"-", "/skip", " /SKIP "} {
		c, err = ParseComment(skip)
		require.NoError(t, err)
		assert.Empty(t, c)
	}

	_, err = ParseComment(strings.Repeat("a", 501))
	requireFieldError(t, err, "comment")
}

func TestParse_DispatchesOnState(t *testing.T) {
	sub, err := Parse(FieldValueState(4, domain.FieldCapacity), " 0 ")
	require.NoError(t, err)
	fv, ok := sub.(FieldValueSubmission)
	require.True(t, ok)
	assert.Equal(t, int64(4), fv.EventID)
	assert.Equal(t, "0", fv.Raw)
	assert.Nil(t, fv.Value)

	sub, err = Parse(CommentState(4), "-")
	require.NoError(t, err)
	assert.Equal(t, CommentSubmission{EventID: 4}, sub)

	_, err = Parse(FieldValueState(4, domain.FieldTime), "noon")
	requireFieldError(t, err, "time")

	_, err = Parse(State{Kind: Idle}, "hello")
	assert.ErrorIs(t, err, ErrNotAwaiting)
}
