package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"
	"time"

	goretry "github.com/sethvargo/go-retry"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/domain"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type ExportOptions struct {
	// RetryAttempts is the total number of tries per ledger write.
	RetryAttempts uint64
	RetryDelay    time.Duration
}

// Запись в выгрузку идет после коммита; ошибки ретраятся и уходят операторам, волонтер их не видит.
type ExportSync struct {
	// запись регистраций держит RLock от коммита до строки выгрузки, сверка берет Lock
	gate sync.RWMutex

	ledger        ports.ExportLedger
	regRepo       ports.RegistrationRepo
	volunteerRepo ports.VolunteerRepo
	eventRepo     ports.EventRepo
	notifier      ports.OperatorNotifier
	opts          ExportOptions
	now           Clock
	logger        logger.Logger
}

func NewExportSync(
	ledger ports.ExportLedger,
	regRepo ports.RegistrationRepo,
	volunteerRepo ports.VolunteerRepo,
	eventRepo ports.EventRepo,
	notifier ports.OperatorNotifier,
	opts ExportOptions,
	now Clock,
	logger logger.Logger,
) *ExportSync {
	if opts.RetryAttempts == 0 {
		opts.RetryAttempts = 1
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = 100 * time.Millisecond
	}
	return &ExportSync{
		ledger:        ledger,
		regRepo:       regRepo,
		volunteerRepo: volunteerRepo,
		eventRepo:     eventRepo,
		notifier:      notifier,
		opts:          opts,
		now:           now,
		logger:        logger,
	}
}

// Hold keeps Check, Reconcile and Rebuild waiting until the returned func
// is called. Take it before the relational write that will be recorded.
func (s *ExportSync) Hold() func() {
	s.gate.RLock()
	return s.gate.RUnlock
}

func (s *ExportSync) RecordCreated(ctx context.Context, reg domain.Registration) {
	row := s.buildRow(ctx, reg, domain.ExportStatusCreated, nil)
	err := s.withRetry(ctx, func() error { return s.ledger.AppendCreated(row) })
	if err != nil {
		s.fail(ctx, "append_created", []int64{reg.ID}, err)
		return
	}

	s.logger.Debug("export row appended",
		logger.Int64("registration_id", reg.ID),
		logger.String("status", string(domain.ExportStatusCreated)),
	)
}

func (s *ExportSync) RecordCancelled(ctx context.Context, reg domain.Registration) {
	row := s.buildRow(ctx, reg, domain.ExportStatusCancelled, nil)
	err := s.withRetry(ctx, func() error { return s.ledger.AppendCancelled(row) })
	if err != nil {
		s.fail(ctx, "append_cancelled", []int64{reg.ID}, err)
		return
	}

	s.logger.Debug("export row appended",
		logger.Int64("registration_id", reg.ID),
		logger.String("status", string(domain.ExportStatusCancelled)),
	)
}

func (s *ExportSync) Purge(ctx context.Context, registrationIDs []int64) {
	if len(registrationIDs) == 0 {
		return
	}

	var removed int
	err := s.withRetry(ctx, func() error {
		var err error
		removed, err = s.ledger.RemoveByRegistrationID(registrationIDs)
		return err
	})
	if err != nil {
		s.fail(ctx, "purge", registrationIDs, err)
		return
	}

	s.logger.Info("export rows purged",
		logger.Int("registrations", len(registrationIDs)),
		logger.Int("rows", removed),
	)
}

func (s *ExportSync) MarkStatus(ctx context.Context, registrationID int64, status domain.ExportStatus) error {
	switch status {
	case domain.ExportStatusCreated, domain.ExportStatusCancelled:
	default:
		return fmt.Errorf("%w: unknown export status %q", domain.ErrValidation, status)
	}

	err := s.withRetry(ctx, func() error {
		return s.ledger.PatchStatusByRegistrationID(registrationID, status)
	})
	if err != nil {
		return fmt.Errorf("patch export status: %w", err)
	}

	s.logger.Info("export status patched",
		logger.Int64("registration_id", registrationID),
		logger.String("status", string(status)),
	)
	return nil
}

func (s *ExportSync) Check(ctx context.Context) (domain.Divergence, error) {
	s.gate.Lock()
	defer s.gate.Unlock()

	d, _, _, err := s.diverge(ctx)
	return d, err
}

func (s *ExportSync) Reconcile(ctx context.Context) (domain.Divergence, error) {
	s.gate.Lock()
	defer s.gate.Unlock()

	d, live, latest, err := s.diverge(ctx)
	if err != nil {
		return d, err
	}
	if d.Empty() {
		return d, nil
	}

	s.logger.Warn("export ledger diverged",
		logger.Int("missing_created", len(d.MissingCreated)),
		logger.Int("missing_cancelled", len(d.MissingCancelled)),
	)
	s.notifier.NotifyDivergence(ctx, d)

	var errs []error
	for _, id := range d.MissingCreated {
		row := s.buildRow(ctx, live[id], domain.ExportStatusCreated, nil)
		if err = s.ledger.AppendCreated(row); err != nil {
			errs = append(errs, fmt.Errorf("append created %d: %w", id, err))
		}
	}
	for _, id := range d.MissingCancelled {
		row := latest[id]
		row.ExportedAt = s.now()
		if err = s.ledger.AppendCancelled(row); err != nil {
			errs = append(errs, fmt.Errorf("append cancelled %d: %w", id, err))
		}
	}

	if err = errors.Join(errs...); err != nil {
		s.fail(ctx, "reconcile", append(slices.Clone(d.MissingCreated), d.MissingCancelled...), err)
		return d, err
	}

	s.logger.Info("export ledger reconciled",
		logger.Int("appended", len(d.MissingCreated)+len(d.MissingCancelled)),
	)
	return d, nil
}

// история отмен при пересборке теряется
func (s *ExportSync) Rebuild(ctx context.Context) (int, error) {
	s.gate.Lock()
	defer s.gate.Unlock()

	regs, err := s.regRepo.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("list registrations: %w", err)
	}

	cache := newRowCache()
	rows := make([]domain.ExportRow, 0, len(regs))
	for _, reg := range regs {
		rows = append(rows, s.buildRow(ctx, reg, domain.ExportStatusCreated, cache))
	}

	if err = s.ledger.Replace(rows); err != nil {
		s.fail(ctx, "rebuild", nil, err)
		return 0, fmt.Errorf("replace export: %w", err)
	}

	s.logger.Info("export ledger rebuilt", logger.Int("rows", len(rows)))
	return len(rows), nil
}

func (s *ExportSync) WriteCSV(_ context.Context, w io.Writer) error {
	_, err := s.ledger.WriteTo(w)
	return err
}

func (s *ExportSync) diverge(ctx context.Context) (domain.Divergence, map[int64]domain.Registration, map[int64]domain.ExportRow, error) {
	var d domain.Divergence

	regs, err := s.regRepo.ListAll(ctx)
	if err != nil {
		return d, nil, nil, fmt.Errorf("list registrations: %w", err)
	}
	rows, err := s.ledger.Snapshot()
	if err != nil {
		return d, nil, nil, fmt.Errorf("read export: %w", err)
	}

	live := make(map[int64]domain.Registration, len(regs))
	for _, r := range regs {
		live[r.ID] = r
	}
	latest := make(map[int64]domain.ExportRow, len(rows))
	for _, r := range rows {
		latest[r.RegistrationID] = r
	}

	for id := range live {
		if row, ok := latest[id]; !ok || row.Status != domain.ExportStatusCreated {
			d.MissingCreated = append(d.MissingCreated, id)
		}
	}
	for id, row := range latest {
		if _, ok := live[id]; !ok && row.Status == domain.ExportStatusCreated {
			d.MissingCancelled = append(d.MissingCancelled, id)
		}
	}
	slices.Sort(d.MissingCreated)
	slices.Sort(d.MissingCancelled)

	return d, live, latest, nil
}

// если профиль или мероприятие не нашлись, поля строки остаются пустыми
func (s *ExportSync) buildRow(ctx context.Context, reg domain.Registration, status domain.ExportStatus, cache *rowCache) domain.ExportRow {
	v := domain.Volunteer{ID: reg.VolunteerID}
	e := domain.Event{ID: reg.EventID}

	if found, ok := cache.volunteer(reg.VolunteerID); ok {
		v = found
	} else if got, err := s.volunteerRepo.GetByID(ctx, reg.VolunteerID); err == nil {
		v = *got
		cache.putVolunteer(v)
	} else {
		s.logger.Warn("export row without profile",
			logger.Int64("volunteer_id", reg.VolunteerID),
			logger.String("error", err.Error()),
		)
	}

	if found, ok := cache.event(reg.EventID); ok {
		e = found
	} else if got, err := s.eventRepo.GetByID(ctx, reg.EventID); err == nil {
		e = *got
		cache.putEvent(e)
	} else {
		s.logger.Warn("export row without event",
			logger.Int64("event_id", reg.EventID),
			logger.String("error", err.Error()),
		)
	}

	return domain.NewExportRow(reg, v, e, status, s.now())
}

func (s *ExportSync) withRetry(ctx context.Context, op func() error) error {
	backoff := goretry.WithMaxRetries(s.opts.RetryAttempts-1, goretry.NewExponential(s.opts.RetryDelay))
	return goretry.Do(ctx, backoff, func(_ context.Context) error {
		err := op()
		if err == nil || errors.Is(err, domain.ErrExportRowNotFound) {
			return err
		}
		return goretry.RetryableError(err)
	})
}

func (s *ExportSync) fail(ctx context.Context, op string, ids []int64, err error) {
	s.logger.Error("export ledger write failed",
		logger.String("op", op),
		logger.Any("registration_ids", ids),
		logger.String("error", err.Error()),
	)
	s.notifier.NotifyExportFailure(ctx, op, ids, err)
}

// nil-кэш допустим и ничего не хранит
type rowCache struct {
	volunteers map[int64]domain.Volunteer
	events     map[int64]domain.Event
}

func newRowCache() *rowCache {
	return &rowCache{
		volunteers: make(map[int64]domain.Volunteer),
		events:     make(map[int64]domain.Event),
	}
}

func (c *rowCache) volunteer(id int64) (domain.Volunteer, bool) {
	if c == nil {
		return domain.Volunteer{}, false
	}
	v, ok := c.volunteers[id]
	return v, ok
}

func (c *rowCache) event(id int64) (domain.Event, bool) {
	if c == nil {
		return domain.Event{}, false
	}
	e, ok := c.events[id]
	return e, ok
}

func (c *rowCache) putVolunteer(v domain.Volunteer) {
	if c != nil {
		c.volunteers[v.ID] = v
	}
}

func (c *rowCache) putEvent(e domain.Event) {
	if c != nil {
		c.events[e.ID] = e
	}
}
