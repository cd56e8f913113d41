// Package exportledger keeps the CSV copy of registration history used for
// offline reporting. The relational store stays authoritative; every row
// here can be derived from it.
package exportledger

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/domain"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

var header = []string{
	"registration_id", "export_date", "export_time",
	"volunteer_id", "full_name", "group", "birth_date", "phone", "handle",
	"event_id", "event_title", "event_date", "event_time", "location",
	"comment", "status",
}

// CSVLedger is safe for concurrent use within one process. Appends write to
// the end of the file; patch, remove and replace rewrite it through a temp
// file and rename.
type CSVLedger struct {
	mu   sync.Mutex
	path string
	loc  *time.Location
}

// New opens the ledger at path, creating it with a header when missing.
// Export timestamps are written in loc.
func New(path string, loc *time.Location) (*CSVLedger, error) {
	if loc == nil {
		loc = time.UTC
	}
	l := &CSVLedger{path: path, loc: loc}
	if err := l.init(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *CSVLedger) Path() string {
	return l.path
}

func (l *CSVLedger) init() error {
	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export dir: %w", err)
		}
	}

	f, err := os.Open(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return l.rewrite(nil)
	}
	if err != nil {
		return fmt.Errorf("open export file: %w", err)
	}
	defer f.Close()

	got, err := csv.NewReader(f).Read()
	if errors.Is(err, io.EOF) {
		return l.rewrite(nil)
	}
	if err != nil {
		return fmt.Errorf("read export header: %w", err)
	}
	if !slices.Equal(got, header) {
		return fmt.Errorf("unexpected export header in %s: %v", l.path, got)
	}

	return nil
}

func (l *CSVLedger) AppendCreated(row domain.ExportRow) error {
	row.Status = domain.ExportStatusCreated
	return l.append(row)
}

func (l *CSVLedger) AppendCancelled(row domain.ExportRow) error {
	row.Status = domain.ExportStatusCancelled
	return l.append(row)
}

func (l *CSVLedger) append(row domain.ExportRow) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open export file: %w", err)
	}

	w := csv.NewWriter(f)
	if err = w.Write(l.encode(row)); err != nil {
		_ = f.Close()
		return fmt.Errorf("write export row: %w", err)
	}
	w.Flush()
	if err = w.Error(); err != nil {
		_ = f.Close()
		return fmt.Errorf("flush export row: %w", err)
	}

	return f.Close()
}

// PatchStatusByRegistrationID rewrites the status of the latest row for id.
func (l *CSVLedger) PatchStatusByRegistrationID(id int64, status domain.ExportStatus) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	rows, err := l.readAll()
	if err != nil {
		return err
	}

	for i := len(rows) - 1; i >= 0; i-- {
		if rows[i].RegistrationID == id {
			rows[i].Status = status
			return l.rewrite(rows)
		}
	}

	return fmt.Errorf("%w: registration %d", domain.ErrExportRowNotFound, id)
}

// RemoveByRegistrationID deletes every row belonging to ids and reports how
// many rows were dropped.
func (l *CSVLedger) RemoveByRegistrationID(ids []int64) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	rows, err := l.readAll()
	if err != nil {
		return 0, err
	}

	drop := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	kept := rows[:0]
	for _, r := range rows {
		if _, ok := drop[r.RegistrationID]; !ok {
			kept = append(kept, r)
		}
	}

	removed := len(rows) - len(kept)
	if removed == 0 {
		return 0, nil
	}

	return removed, l.rewrite(kept)
}

func (l *CSVLedger) CountRows() (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.path)
	if err != nil {
		return 0, fmt.Errorf("open export file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.ReuseRecord = true
	n := -1 // заголовок
	for {
		_, err = r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("read export file: %w", err)
		}
		n++
	}

	return max(n, 0), nil
}

func (l *CSVLedger) Snapshot() ([]domain.ExportRow, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.readAll()
}

// Replace swaps the whole ledger content for rows.
func (l *CSVLedger) Replace(rows []domain.ExportRow) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.rewrite(rows)
}

// WriteTo copies the raw CSV file, header included, to w.
func (l *CSVLedger) WriteTo(w io.Writer) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.path)
	if err != nil {
		return 0, fmt.Errorf("open export file: %w", err)
	}
	defer f.Close()

	n, err := io.Copy(w, f)
	if err != nil {
		return n, fmt.Errorf("copy export file: %w", err)
	}
	return n, nil
}

func (l *CSVLedger) readAll() ([]domain.ExportRow, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open export file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(header)

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read export file: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	rows := make([]domain.ExportRow, 0, len(records)-1)
	for i, rec := range records[1:] {
		row, err := l.decode(rec)
		if err != nil {
			return nil, fmt.Errorf("export line %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func (l *CSVLedger) rewrite(rows []domain.ExportRow) error {
	tmp, err := os.CreateTemp(filepath.Dir(l.path), filepath.Base(l.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp export file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err = w.Write(header); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write export header: %w", err)
	}
	for _, r := range rows {
		if err = w.Write(l.encode(r)); err != nil {
			_ = tmp.Close()
			return fmt.Errorf("write export row: %w", err)
		}
	}
	w.Flush()
	if err = w.Error(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("flush export file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync export file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp export file: %w", err)
	}

	if err = os.Rename(tmp.Name(), l.path); err != nil {
		return fmt.Errorf("replace export file: %w", err)
	}
	return nil
}

func (l *CSVLedger) encode(r domain.ExportRow) []string {
	at := r.ExportedAt.In(l.loc)
	return []string{
		strconv.FormatInt(r.RegistrationID, 10),
		at.Format(dateLayout),
		at.Format(timeLayout),
		strconv.FormatInt(r.VolunteerID, 10),
		r.FullName,
		r.Group,
		r.BirthDate,
		r.Phone,
		r.Handle,
		strconv.FormatInt(r.EventID, 10),
		r.EventTitle,
		r.EventDate,
		r.EventTime,
		r.Location,
		r.Comment,
		string(r.Status),
	}
}

func (l *CSVLedger) decode(rec []string) (domain.ExportRow, error) {
	var (
		row domain.ExportRow
		err error
	)
	if row.RegistrationID, err = strconv.ParseInt(rec[0], 10, 64); err != nil {
		return row, fmt.Errorf("registration_id: %w", err)
	}
	if row.ExportedAt, err = time.ParseInLocation(dateLayout+" "+timeLayout, rec[1]+" "+rec[2], l.loc); err != nil {
		return row, fmt.Errorf("export timestamp: %w", err)
	}
	if row.VolunteerID, err = strconv.ParseInt(rec[3], 10, 64); err != nil {
		return row, fmt.Errorf("volunteer_id: %w", err)
	}
	if row.EventID, err = strconv.ParseInt(rec[9], 10, 64); err != nil {
		return row, fmt.Errorf("event_id: %w", err)
	}

	row.FullName = rec[4]
	row.Group = rec[5]
	row.BirthDate = rec[6]
	row.Phone = rec[7]
	row.Handle = rec[8]
	row.EventTitle = rec[10]
	row.EventDate = rec[11]
	row.EventTime = rec[12]
	row.Location = rec[13]
	row.Comment = rec[14]
	row.Status = domain.ExportStatus(rec[15])

	switch row.Status {
	case domain.ExportStatusCreated, domain.ExportStatusCancelled:
	default:
		return row, fmt.Errorf("unknown status %q", rec[15])
	}

	return row, nil
}
