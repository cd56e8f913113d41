package handler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/auth"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/domain"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

const exportFileName = "registrations.csv"

type EventSvc interface {
	ListAll(ctx context.Context) ([]domain.EventSummary, error)
	Details(ctx context.Context, id int64) (*domain.EventSummary, error)
}

type ParticipantSvc interface {
	Participants(ctx context.Context, admin auth.Admin, id int64) (*domain.EventParticipants, error)
}

type StatsSvc interface {
	Stats(ctx context.Context) (*domain.Stats, error)
}

type ExportSvc interface {
	WriteCSV(ctx context.Context, w io.Writer) error
	Check(ctx context.Context) (domain.Divergence, error)
	Reconcile(ctx context.Context) (domain.Divergence, error)
	Rebuild(ctx context.Context) (int, error)
	MarkStatus(ctx context.Context, registrationID int64, status domain.ExportStatus) error
}

type AdminVerifier interface {
	Verify(identity int64) (auth.Admin, error)
}

// Handler serves the ops API. Requests reach it only after the admin token
// check; admin-only service calls run as the configured operator.
type Handler struct {
	eventService       EventSvc
	participantService ParticipantSvc
	statsService       StatsSvc
	exportService      ExportSvc
	verifier           AdminVerifier
	operatorID         int64
}

func NewHandler(
	eventService EventSvc,
	participantService ParticipantSvc,
	statsService StatsSvc,
	exportService ExportSvc,
	verifier AdminVerifier,
	operatorID int64,
) *Handler {
	return &Handler{
		eventService:       eventService,
		participantService: participantService,
		statsService:       statsService,
		exportService:      exportService,
		verifier:           verifier,
		operatorID:         operatorID,
	}
}

// Events

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.ListAll(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		resp = append(resp, dto.ToEventResponse(&events[i]))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	summary, err := h.eventService.Details(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(summary))
}

func (h *Handler) ListRegistrations(c *ginext.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	admin, err := h.verifier.Verify(h.operatorID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	p, err := h.participantService.Participants(c.Request.Context(), admin, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToParticipantsResponse(p))
}

// Stats

func (h *Handler) GetStats(c *ginext.Context) {
	stats, err := h.statsService.Stats(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Export

func (h *Handler) DownloadExport(c *ginext.Context) {
	var buf bytes.Buffer
	if err := h.exportService.WriteCSV(c.Request.Context(), &buf); err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+exportFileName+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (h *Handler) CheckExport(c *ginext.Context) {
	d, err := h.exportService.Check(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDivergenceResponse(d))
}

func (h *Handler) ReconcileExport(c *ginext.Context) {
	d, err := h.exportService.Reconcile(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDivergenceResponse(d))
}

func (h *Handler) RebuildExport(c *ginext.Context) {
	n, err := h.exportService.Rebuild(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RebuildResponse{Rows: n})
}

func (h *Handler) MarkExportStatus(c *ginext.Context) {
	id, ok := parseID(c, "registration_id")
	if !ok {
		return
	}

	var req dto.MarkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.exportService.MarkStatus(c.Request.Context(), id, domain.ExportStatus(req.Status)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": req.Status})
}

func parseID(c *ginext.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + param})
		return 0, false
	}
	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrVolunteerNotFound),
		errors.Is(err, domain.ErrRegistrationNotFound),
		errors.Is(err, domain.ErrExportRowNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrEventHasRegistrations):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
