package exportledger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedger(t *testing.T) *CSVLedger {
	t.Helper()
	l, err := New(filepath.Join(t.TempDir(), "export", "registrations.csv"), time.UTC)
	require.NoError(t, err)
	return l
}

func row(regID int64) domain.ExportRow {
	return domain.ExportRow{
		RegistrationID: regID,
		ExportedAt:     time.Date(2025, 4, 1, 10, 30, 0, 0, time.UTC),
		VolunteerID:    100 + regID,
		FullName:       "Иванов Иван",
		Group:          "ИТ-21",
		BirthDate:      "01.02.2003",
		Phone:          "+79990001122",
		Handle:         "@ivan",
		EventID:        7,
		EventTitle:     "Park Cleanup, spring",
		EventDate:      "2025-04-10",
		EventTime:      "14:00",
		Location:       "Central Park",
		Comment:        "after \"lunch\"",
	}
}

func TestNew_WritesHeader(t *testing.T) {
	l := newTestLedger(t)

	data, err := os.ReadFile(l.Path())
	require.NoError(t, err)
	assert.Equal(t, strings.Join(header, ",")+"\n", string(data))

	n, err := l.CountRows()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestNew_ReopensExisting(t *testing.T) {
	l := newTestLedger(t)
	require.NoError(t, l.AppendCreated(row(1)))

	again, err := New(l.Path(), time.UTC)
	require.NoError(t, err)

	n, err := again.CountRows()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestNew_RejectsForeignHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "other.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b,c\n"), 0o644))

	_, err := New(path, time.UTC)
	assert.Error(t, err)
}

func TestAppendAndSnapshot(t *testing.T) {
	l := newTestLedger(t)

	require.NoError(t, l.AppendCreated(row(1)))
	require.NoError(t, l.AppendCreated(row(2)))
	require.NoError(t, l.AppendCancelled(row(1)))

	rows, err := l.Snapshot()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, domain.ExportStatusCreated, rows[0].Status)
	assert.Equal(t, domain.ExportStatusCancelled, rows[2].Status)
	assert.Equal(t, int64(1), rows[2].RegistrationID)

	want := row(2)
	want.Status = domain.ExportStatusCreated
	assert.Equal(t, want, rows[1])
}

func TestPatchStatus_LatestRowOnly(t *testing.T) {
	l := newTestLedger(t)

	require.NoError(t, l.AppendCreated(row(1)))
	require.NoError(t, l.AppendCancelled(row(1)))

	require.NoError(t, l.PatchStatusByRegistrationID(1, domain.ExportStatusCreated))

	rows, err := l.Snapshot()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, domain.ExportStatusCreated, rows[0].Status)
	assert.Equal(t, domain.ExportStatusCreated, rows[1].Status)

	err = l.PatchStatusByRegistrationID(42, domain.ExportStatusCancelled)
	assert.ErrorIs(t, err, domain.ErrExportRowNotFound)
}

func TestRemoveByRegistrationID(t *testing.T) {
	l := newTestLedger(t)

	for _, id := range []int64{1, 2, 3} {
		require.NoError(t, l.AppendCreated(row(id)))
	}
	require.NoError(t, l.AppendCancelled(row(2)))

	removed, err := l.RemoveByRegistrationID([]int64{2, 3, 99})
	require.NoError(t, err)
	assert.Equal(t, 3, removed)

	rows, err := l.Snapshot()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(1), rows[0].RegistrationID)

	removed, err = l.RemoveByRegistrationID([]int64{99})
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestReplaceAndWriteTo(t *testing.T) {
	l := newTestLedger(t)
	require.NoError(t, l.AppendCreated(row(1)))

	require.NoError(t, l.Replace([]domain.ExportRow{
		{RegistrationID: 5, ExportedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Status: domain.ExportStatusCreated},
	}))

	var buf bytes.Buffer
	_, err := l.WriteTo(&buf)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "5,2025-01-01,00:00:00,"))
	assert.True(t, strings.HasSuffix(lines[1], ",created"))
}

func TestExportTimestampUsesLocation(t *testing.T) {
	moscow := time.FixedZone("MSK", 3*60*60)
	l, err := New(filepath.Join(t.TempDir(), "r.csv"), moscow)
	require.NoError(t, err)

	require.NoError(t, l.AppendCreated(row(1)))

	var buf bytes.Buffer
	_, err = l.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "1,2025-04-01,13:30:00,")
}

func TestConcurrentAppends(t *testing.T) {
	l := newTestLedger(t)

	var wg sync.WaitGroup
	for i := 1; i <= 40; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			assert.NoError(t, l.AppendCreated(row(id)))
		}(int64(i))
	}
	wg.Wait()

	n, err := l.CountRows()
	require.NoError(t, err)
	assert.Equal(t, 40, n)

	rows, err := l.Snapshot()
	require.NoError(t, err)
	assert.Len(t, rows, 40)
}
