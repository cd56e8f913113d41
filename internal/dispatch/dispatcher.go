// Package dispatch maps parsed intents onto core operations and returns
// typed results. It owns the conversation store; transports only render.
package dispatch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/auth"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/conversation"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/domain"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/intent"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/validation"
	"github.com/wb-go/wbf/logger"
)

const exportFileName = "registrations.csv"

type CatalogSvc interface {
	ListOpen(ctx context.Context) ([]domain.EventSummary, error)
	ListAll(ctx context.Context) ([]domain.EventSummary, error)
	ListUpcoming(ctx context.Context) ([]domain.EventSummary, error)
	Details(ctx context.Context, id int64) (*domain.EventSummary, error)
	PublicDetails(ctx context.Context, id int64) (*domain.EventSummary, error)
}

type ProfileSvc interface {
	Touch(ctx context.Context, id int64, displayName string) (*domain.Volunteer, error)
	Get(ctx context.Context, id int64) (*domain.Volunteer, error)
	Complete(ctx context.Context, id int64, in domain.ProfileInput) (*domain.Volunteer, error)
	RequireComplete(ctx context.Context, id int64) (*domain.Volunteer, error)
	Registrations(ctx context.Context, id int64) ([]domain.VolunteerRegistration, error)
}

type GuardSvc interface {
	Check(ctx context.Context, volunteerID, eventID int64) (*domain.EventSummary, error)
	TryReserve(ctx context.Context, volunteerID, eventID int64, comment string) (*domain.Registration, error)
	Release(ctx context.Context, registrationID, requesterID int64) error
	ReleaseByEvent(ctx context.Context, volunteerID, eventID int64) error
}

type AdminSvc interface {
	CreateEvent(ctx context.Context, admin auth.Admin, in domain.EventInput) (*domain.Event, error)
	UpdateEventField(ctx context.Context, admin auth.Admin, id int64, f domain.EventField, raw string) error
	SetActive(ctx context.Context, admin auth.Admin, id int64, active bool) error
	SetRegistrationOpen(ctx context.Context, admin auth.Admin, id int64, open bool) error
	DeleteEvent(ctx context.Context, admin auth.Admin, id int64, cascade bool) error
	Participants(ctx context.Context, admin auth.Admin, id int64) (*domain.EventParticipants, error)
	ReleaseRegistration(ctx context.Context, admin auth.Admin, eventID, volunteerID int64) error
}

type StatsSvc interface {
	Stats(ctx context.Context) (*domain.Stats, error)
}

type ExportSvc interface {
	WriteCSV(ctx context.Context, w io.Writer) error
	Reconcile(ctx context.Context) (domain.Divergence, error)
}

type Authorizer interface {
	Verify(identity int64) (auth.Admin, error)
}

type Services struct {
	Catalog  CatalogSvc
	Profiles ProfileSvc
	Guard    GuardSvc
	Admin    AdminSvc
	Stats    StatsSvc
	Export   ExportSvc
}

type Dispatcher struct {
	svc      Services
	auth     Authorizer
	sessions *conversation.Store
	logger   logger.Logger
}

func New(svc Services, authorizer Authorizer, sessions *conversation.Store, logger logger.Logger) *Dispatcher {
	return &Dispatcher{
		svc:      svc,
		auth:     authorizer,
		sessions: sessions,
		logger:   logger,
	}
}

// Handle runs one action to completion. The admin capability is checked on
// every call, never cached in the session.
func (d *Dispatcher) Handle(ctx context.Context, a intent.Action) Result {
	if intent.IsAdmin(a.Intent) {
		admin, err := d.auth.Verify(a.Identity)
		if err != nil {
			d.logger.Warn("admin intent refused",
				logger.Int64("identity", a.Identity),
				logger.String("intent", intentName(a.Intent)),
			)
			return failure(err)
		}
		return d.handleAdmin(ctx, admin, a)
	}

	switch in := a.Intent.(type) {
	case intent.Start:
		return d.start(ctx, a)
	case intent.MainMenu:
		return d.menu(ctx, a, KindMainMenu)
	case intent.Help:
		return d.menu(ctx, a, KindHelp)
	case intent.Abort:
		return d.abort(a)
	case intent.Text:
		return d.text(ctx, a, in.Body)
	case intent.ListEvents:
		return d.listOpen(ctx)
	case intent.ShowEvent:
		return d.showEvent(ctx, a.Identity, in.EventID)
	case intent.Register:
		return d.register(ctx, a.Identity, in.EventID)
	case intent.CancelRegistration:
		return d.cancelRegistration(ctx, a.Identity, in.EventID)
	case intent.DropRegistration:
		return d.dropRegistration(ctx, a.Identity, in.RegistrationID)
	case intent.ShowProfile:
		return d.showProfile(ctx, a)
	case intent.EditProfile:
		d.sessions.Start(a.Identity, conversation.ProfileState())
		return prompt(conversation.ProfileState(), nil)
	case intent.MyRegistrations:
		return d.myRegistrations(ctx, a.Identity)
	default:
		return Result{Kind: KindUnknown}
	}
}

func (d *Dispatcher) start(ctx context.Context, a intent.Action) Result {
	v, err := d.svc.Profiles.Touch(ctx, a.Identity, a.DisplayName)
	if err != nil {
		return d.fail(err, a.Identity)
	}
	if !v.Complete() {
		d.sessions.Start(a.Identity, conversation.ProfileState())
		return prompt(conversation.ProfileState(), nil)
	}
	return Result{Kind: KindMainMenu, Data: Menu{Volunteer: v, Admin: d.isAdmin(a.Identity)}}
}

func (d *Dispatcher) menu(ctx context.Context, a intent.Action, kind Kind) Result {
	m := Menu{Admin: d.isAdmin(a.Identity)}
	if v, err := d.svc.Profiles.Get(ctx, a.Identity); err == nil {
		m.Volunteer = v
	}
	return Result{Kind: kind, Data: m}
}

func (d *Dispatcher) abort(a intent.Action) Result {
	prev, ok := d.sessions.Clear(a.Identity)
	if !ok {
		return Result{Kind: KindNothingToAbort}
	}

	d.logger.Debug("flow aborted",
		logger.Int64("identity", a.Identity),
		logger.String("state", conversation.Describe(prev)),
	)
	return Result{Kind: KindAborted, Data: prev}
}

func (d *Dispatcher) text(ctx context.Context, a intent.Action, body string) Result {
	st := d.sessions.Get(a.Identity)
	if st.Idle() {
		return Result{Kind: KindUnknown}
	}

	sub, err := conversation.Parse(st, body)
	if err != nil {
		return d.reprompt(a.Identity, st, err)
	}

	switch s := sub.(type) {
	case conversation.ProfileSubmission:
		return d.submitProfile(ctx, a.Identity, st, s)
	case conversation.NewEventSubmission:
		return d.submitNewEvent(ctx, a.Identity, st, s)
	case conversation.FieldValueSubmission:
		return d.submitFieldValue(ctx, a.Identity, st, s)
	case conversation.CommentSubmission:
		return d.submitComment(ctx, a.Identity, s)
	default:
		d.sessions.Clear(a.Identity)
		return Result{Kind: KindUnknown}
	}
}

// при ошибке формата состояние сохраняется, пользователь пробует еще раз
func (d *Dispatcher) reprompt(identity int64, st conversation.State, err error) Result {
	if !errors.Is(err, domain.ErrValidation) {
		d.sessions.Clear(identity)
		return d.fail(err, identity)
	}

	d.sessions.Touch(identity)
	return Result{Kind: KindInvalidInput, Outcome: domain.OutcomeInvalid, Err: err, Data: Prompt{State: st}}
}

func (d *Dispatcher) submitProfile(ctx context.Context, identity int64, st conversation.State, s conversation.ProfileSubmission) Result {
	v, err := d.svc.Profiles.Complete(ctx, identity, s.Input)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return d.reprompt(identity, st, err)
		}
		d.sessions.Clear(identity)
		return d.fail(err, identity)
	}

	d.sessions.Clear(identity)
	return Result{Kind: KindProfileSaved, Data: Menu{Volunteer: v, Admin: d.isAdmin(identity)}}
}

func (d *Dispatcher) submitNewEvent(ctx context.Context, identity int64, st conversation.State, s conversation.NewEventSubmission) Result {
	admin, err := d.auth.Verify(identity)
	if err != nil {
		d.sessions.Clear(identity)
		return failure(err)
	}

	e, err := d.svc.Admin.CreateEvent(ctx, admin, s.Input)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return d.reprompt(identity, st, err)
		}
		d.sessions.Clear(identity)
		return d.fail(err, identity)
	}

	d.sessions.Clear(identity)
	return Result{Kind: KindEventCreated, Outcome: domain.OutcomeAccepted, Data: e}
}

func (d *Dispatcher) submitFieldValue(ctx context.Context, identity int64, st conversation.State, s conversation.FieldValueSubmission) Result {
	admin, err := d.auth.Verify(identity)
	if err != nil {
		d.sessions.Clear(identity)
		return failure(err)
	}

	err = d.svc.Admin.UpdateEventField(ctx, admin, s.EventID, s.Field, s.Raw)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return d.reprompt(identity, st, err)
		}
		d.sessions.Clear(identity)
		return d.fail(err, identity)
	}
	d.sessions.Clear(identity)

	summary, err := d.svc.Catalog.Details(ctx, s.EventID)
	if err != nil {
		return d.fail(err, identity)
	}
	return Result{Kind: KindEventUpdated, Outcome: domain.OutcomeAccepted, Data: summary}
}

// submitComment ends the flow whatever the reservation outcome; retrying
// the same comment cannot change a business refusal.
func (d *Dispatcher) submitComment(ctx context.Context, identity int64, s conversation.CommentSubmission) Result {
	d.sessions.Clear(identity)

	reg, err := d.svc.Guard.TryReserve(ctx, identity, s.EventID, s.Comment)
	if err != nil {
		return d.fail(err, identity)
	}

	res := Registered{Registration: reg}
	if summary, err := d.svc.Catalog.Details(ctx, s.EventID); err == nil {
		res.Event = summary
	}
	return Result{Kind: KindRegistered, Outcome: domain.OutcomeAccepted, Data: res}
}

func (d *Dispatcher) listOpen(ctx context.Context) Result {
	events, err := d.svc.Catalog.ListOpen(ctx)
	if err != nil {
		return d.fail(err, 0)
	}
	return Result{Kind: KindEventList, Data: events}
}

func (d *Dispatcher) showEvent(ctx context.Context, identity, eventID int64) Result {
	summary, err := d.svc.Catalog.PublicDetails(ctx, eventID)
	if err != nil {
		return d.fail(err, identity)
	}

	view := EventView{Summary: summary}
	regs, err := d.svc.Profiles.Registrations(ctx, identity)
	if err != nil {
		return d.fail(err, identity)
	}
	for _, r := range regs {
		if r.Event.ID == eventID {
			view.Registered = true
			break
		}
	}
	view.Open = !view.Registered && (summary.Remaining == nil || *summary.Remaining > 0)

	return Result{Kind: KindEventDetail, Data: view}
}

func (d *Dispatcher) register(ctx context.Context, identity, eventID int64) Result {
	if _, err := d.svc.Profiles.RequireComplete(ctx, identity); err != nil {
		if errors.Is(err, domain.ErrProfileIncomplete) || errors.Is(err, domain.ErrVolunteerNotFound) {
			d.sessions.Start(identity, conversation.ProfileState())
			return Result{
				Kind:    KindPrompt,
				Outcome: domain.OutcomeProfileRequired,
				Data:    Prompt{State: conversation.ProfileState()},
			}
		}
		return d.fail(err, identity)
	}

	summary, err := d.svc.Guard.Check(ctx, identity, eventID)
	if err != nil {
		return d.fail(err, identity)
	}

	st := conversation.CommentState(eventID)
	d.sessions.Start(identity, st)
	return prompt(st, summary)
}

func (d *Dispatcher) cancelRegistration(ctx context.Context, identity, eventID int64) Result {
	if err := d.svc.Guard.ReleaseByEvent(ctx, identity, eventID); err != nil {
		return d.fail(err, identity)
	}
	return Result{Kind: KindReleased, Outcome: domain.OutcomeReleased, Data: eventID}
}

// dropRegistration отменяет запись по ее id из списка "Мои записи".
func (d *Dispatcher) dropRegistration(ctx context.Context, identity, registrationID int64) Result {
	if err := d.svc.Guard.Release(ctx, registrationID, identity); err != nil {
		return d.fail(err, identity)
	}
	return Result{Kind: KindReleased, Outcome: domain.OutcomeReleased, Data: registrationID}
}

func (d *Dispatcher) showProfile(ctx context.Context, a intent.Action) Result {
	v, err := d.svc.Profiles.Get(ctx, a.Identity)
	if errors.Is(err, domain.ErrVolunteerNotFound) {
		v, err = d.svc.Profiles.Touch(ctx, a.Identity, a.DisplayName)
	}
	if err != nil {
		return d.fail(err, a.Identity)
	}
	return Result{Kind: KindProfile, Data: v}
}

func (d *Dispatcher) myRegistrations(ctx context.Context, identity int64) Result {
	regs, err := d.svc.Profiles.Registrations(ctx, identity)
	if err != nil {
		return d.fail(err, identity)
	}
	return Result{Kind: KindMyRegistrations, Data: regs}
}

func (d *Dispatcher) handleAdmin(ctx context.Context, admin auth.Admin, a intent.Action) Result {
	switch in := a.Intent.(type) {
	case intent.AdminPanel:
		return Result{Kind: KindAdminPanel}
	case intent.AdminListEvents:
		return d.adminList(ctx, KindAdminEventList, d.svc.Catalog.ListAll)
	case intent.AdminEditList:
		return d.adminList(ctx, KindAdminEditList, d.svc.Catalog.ListUpcoming)
	case intent.AdminParticipantsMenu:
		return d.adminList(ctx, KindParticipantsMenu, d.svc.Catalog.ListAll)
	case intent.AdminShowEvent:
		return d.adminEvent(ctx, in.EventID, "")
	case intent.AdminStartCreate:
		d.sessions.Start(a.Identity, conversation.NewEventState())
		return prompt(conversation.NewEventState(), nil)
	case intent.AdminStartEdit:
		summary, err := d.svc.Catalog.Details(ctx, in.EventID)
		if err != nil {
			return d.fail(err, a.Identity)
		}
		st := conversation.FieldValueState(in.EventID, in.Field)
		d.sessions.Start(a.Identity, st)
		return prompt(st, summary)
	case intent.AdminSetActive:
		if err := d.svc.Admin.SetActive(ctx, admin, in.EventID, in.Active); err != nil {
			return d.fail(err, a.Identity)
		}
		return d.adminEvent(ctx, in.EventID, domain.OutcomeAccepted)
	case intent.AdminSetOpen:
		if err := d.svc.Admin.SetRegistrationOpen(ctx, admin, in.EventID, in.Open); err != nil {
			return d.fail(err, a.Identity)
		}
		return d.adminEvent(ctx, in.EventID, domain.OutcomeAccepted)
	case intent.AdminDelete:
		return d.deleteEvent(ctx, admin, in)
	case intent.AdminParticipants:
		return d.participants(ctx, admin, in.EventID, "")
	case intent.AdminRelease:
		if err := d.svc.Admin.ReleaseRegistration(ctx, admin, in.EventID, in.VolunteerID); err != nil {
			return d.fail(err, a.Identity)
		}
		return d.participants(ctx, admin, in.EventID, domain.OutcomeReleased)
	case intent.AdminStats:
		stats, err := d.svc.Stats.Stats(ctx)
		if err != nil {
			return d.fail(err, a.Identity)
		}
		return Result{Kind: KindStats, Data: stats}
	case intent.AdminExport:
		var buf bytes.Buffer
		if err := d.svc.Export.WriteCSV(ctx, &buf); err != nil {
			return d.fail(err, a.Identity)
		}
		return Result{Kind: KindExport, Data: ExportFile{Name: exportFileName, Content: buf.Bytes()}}
	case intent.AdminReconcile:
		div, err := d.svc.Export.Reconcile(ctx)
		if err != nil {
			return d.fail(err, a.Identity)
		}
		return Result{Kind: KindReconciled, Data: div}
	default:
		return Result{Kind: KindUnknown}
	}
}

func (d *Dispatcher) adminList(ctx context.Context, kind Kind, list func(context.Context) ([]domain.EventSummary, error)) Result {
	events, err := list(ctx)
	if err != nil {
		return d.fail(err, 0)
	}
	return Result{Kind: kind, Data: events}
}

func (d *Dispatcher) adminEvent(ctx context.Context, id int64, outcome domain.Outcome) Result {
	summary, err := d.svc.Catalog.Details(ctx, id)
	if err != nil {
		return d.fail(err, 0)
	}
	return Result{Kind: KindAdminEvent, Outcome: outcome, Data: summary}
}

func (d *Dispatcher) deleteEvent(ctx context.Context, admin auth.Admin, in intent.AdminDelete) Result {
	err := d.svc.Admin.DeleteEvent(ctx, admin, in.EventID, in.Cascade)
	if errors.Is(err, domain.ErrEventHasRegistrations) {
		return Result{Kind: KindError, Outcome: domain.OutcomeRefused, Err: err, Data: Refusal{EventID: in.EventID}}
	}
	if err != nil {
		return d.fail(err, admin.ID())
	}
	return Result{Kind: KindEventDeleted, Outcome: domain.OutcomeAccepted, Data: in.EventID}
}

func (d *Dispatcher) participants(ctx context.Context, admin auth.Admin, id int64, outcome domain.Outcome) Result {
	p, err := d.svc.Admin.Participants(ctx, admin, id)
	if err != nil {
		return d.fail(err, admin.ID())
	}
	return Result{Kind: KindParticipants, Outcome: outcome, Data: p}
}

func (d *Dispatcher) isAdmin(identity int64) bool {
	_, err := d.auth.Verify(identity)
	return err == nil
}

func (d *Dispatcher) fail(err error, identity int64) Result {
	res := failure(err)
	if res.Outcome == domain.OutcomeFailed {
		d.logger.Error("dispatch failed",
			logger.Int64("identity", identity),
			logger.String("error", err.Error()),
		)
	}
	return res
}

func failure(err error) Result {
	return Result{Kind: KindError, Outcome: domain.OutcomeOf(err), Err: err}
}

func prompt(st conversation.State, summary *domain.EventSummary) Result {
	return Result{Kind: KindPrompt, Data: Prompt{State: st, Event: summary}}
}

func intentName(in intent.Intent) string {
	return fmt.Sprintf("%T", in)
}

func ValidationField(res Result) (*validation.FieldError, bool) {
	var fe *validation.FieldError
	if errors.As(res.Err, &fe) {
		return fe, true
	}
	return nil, false
}
