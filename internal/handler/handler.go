package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/atln0/GigBooker/internal/auth"
	"github.com/atln0/GigBooker/internal/domain"
	"github.com/atln0/GigBooker/internal/handler/dto"
	"github.com/atln0/GigBooker/internal/middleware"
	"github.com/atln0/GigBooker/internal/pricing"
	"github.com/atln0/GigBooker/internal/service"
)

type AuthSvc interface {
	Login(ctx context.Context, username, password string) (string, *domain.Session, error)
	Logout(ctx context.Context, sessionID string) error
	SetClientSignature(ctx context.Context, sessionID, signatureURL string) (*domain.Session, error)
}

type ProfileSvc interface {
	Get(ctx context.Context) (*domain.DJProfile, error)
	Save(ctx context.Context, p *domain.DJProfile) (*domain.DJProfile, error)
	SetSignature(ctx context.Context, signatureURL string) (*domain.DJProfile, error)
	EnhanceBio(ctx context.Context, bio string) string
}

type BookingSvc interface {
	SubmitOffer(ctx context.Context, input service.SubmitOfferInput) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
	Sign(ctx context.Context, id string, party domain.SignatureParty, sessionID string) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context) ([]*domain.Booking, error)
	Quote(ctx context.Context, id string) (*domain.Booking, pricing.Quote, error)
}

type EventSvc interface {
	CreateEvent(ctx context.Context, input service.CreateEventInput) (*domain.Event, error)
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	AddCatalogAsset(ctx context.Context, eventID string, tmpl domain.AssetTemplate) (*domain.Event, error)
	RemoveAsset(ctx context.Context, eventID, assetID string) (*domain.Event, error)
	Catalog() []domain.AssetTemplate
}

type ContractSvc interface {
	RequestDraft(ctx context.Context, bookingID string) (*domain.ContractDraft, error)
	GetDraft(ctx context.Context, bookingID string) (*domain.ContractDraft, error)
	ReadyDraft(ctx context.Context, bookingID string) (*domain.ContractDraft, error)
}

type PDFRenderer interface {
	Render(profile *domain.DJProfile, booking *domain.Booking, contractText string) ([]byte, error)
}

type Handler struct {
	authService     AuthSvc
	profileService  ProfileSvc
	bookingService  BookingSvc
	eventService    EventSvc
	contractService ContractSvc
	pdfRenderer     PDFRenderer
}

func NewHandler(
	authService AuthSvc,
	profileService ProfileSvc,
	bookingService BookingSvc,
	eventService EventSvc,
	contractService ContractSvc,
	pdfRenderer PDFRenderer,
) *Handler {
	return &Handler{
		authService:     authService,
		profileService:  profileService,
		bookingService:  bookingService,
		eventService:    eventService,
		contractService: contractService,
		pdfRenderer:     pdfRenderer,
	}
}

// Auth

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	token, session, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, Role: string(session.Role)})
}

func (h *Handler) Logout(c *ginext.Context) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	if err := h.authService.Logout(c.Request.Context(), session.ID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "logged out"})
}

func (h *Handler) SetSessionSignature(c *ginext.Context) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	var req dto.SignatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	updated, err := h.authService.SetClientSignature(c.Request.Context(), session.ID, req.SignatureURL)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(updated))
}

// Profile

func (h *Handler) GetProfile(c *ginext.Context) {
	profile, err := h.profileService.Get(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *Handler) SaveProfile(c *ginext.Context) {
	var req domain.DJProfile
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	saved, err := h.profileService.Save(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, saved)
}

func (h *Handler) SetProfileSignature(c *ginext.Context) {
	var req dto.SignatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	profile, err := h.profileService.SetSignature(c.Request.Context(), req.SignatureURL)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *Handler) EnhanceBio(c *ginext.Context) {
	var req dto.EnhanceBioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	enhanced := h.profileService.EnhanceBio(c.Request.Context(), req.Bio)

	c.JSON(http.StatusOK, dto.EnhanceBioResponse{Bio: enhanced})
}

// Bookings

func (h *Handler) SubmitOffer(c *ginext.Context) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	var req dto.SubmitOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	// An event link is meaningful only on promoter-initiated offers.
	eventID := req.EventID
	if session.Role != domain.RolePromoter {
		eventID = ""
	}

	booking, err := h.bookingService.SubmitOffer(c.Request.Context(), service.SubmitOfferInput{
		Offer:   req.ToOffer(),
		EventID: eventID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) ListBookings(c *ginext.Context) {
	bookings, err := h.bookingService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingSummaryResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingSummaryResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, quote, err := h.bookingService.Quote(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingDetailResponse(booking, quote))
}

func (h *Handler) UpdateBookingStatus(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	status := domain.BookingStatus(req.Status)
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: fmt.Sprintf("unknown status %q", req.Status)})
		return
	}

	booking, err := h.bookingService.UpdateStatus(c.Request.Context(), id, status)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// SignBooking signs as the party matching the session's role: the DJ
// countersigns as artist, client and promoter sessions as client.
func (h *Handler) SignBooking(c *ginext.Context) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	party := domain.PartyClient
	if session.Role == domain.RoleDJ {
		party = domain.PartyArtist
	}

	booking, err := h.bookingService.Sign(c.Request.Context(), id, party, session.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// Contracts

func (h *Handler) RequestContractDraft(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	draft, err := h.contractService.RequestDraft(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, dto.ToDraftResponse(draft))
}

func (h *Handler) GetContractDraft(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	draft, err := h.contractService.GetDraft(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDraftResponse(draft))
}

func (h *Handler) DownloadContractPDF(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	draft, err := h.contractService.ReadyDraft(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	booking, err := h.bookingService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	profile, err := h.profileService.Get(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	raw, err := h.pdfRenderer.Render(profile, booking, draft.Content)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=contract-%s.pdf", id))
	c.Data(http.StatusOK, "application/pdf", raw)
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), service.CreateEventInput{
		Name:        req.Name,
		Date:        req.Date,
		Location:    req.Location,
		TotalBudget: float64(req.TotalBudget),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	event, err := h.eventService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) AddEventAsset(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.AddAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.eventService.AddCatalogAsset(c.Request.Context(), id, req.ToTemplate())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) RemoveEventAsset(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}
	assetID := c.Param("assetId")

	event, err := h.eventService.RemoveAsset(c.Request.Context(), id, assetID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) GetCatalog(c *ginext.Context) {
	c.JSON(http.StatusOK, h.eventService.Catalog())
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrDraftNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrBookingDeclined),
		errors.Is(err, domain.ErrMissingSignature),
		errors.Is(err, domain.ErrAlreadySigned),
		errors.Is(err, domain.ErrDraftNotReady):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
