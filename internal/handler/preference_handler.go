package handler

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/minimalism94/notification-svc/internal/domain"
	"github.com/minimalism94/notification-svc/internal/service"
)

type PreferenceService interface {
	Upsert(ctx context.Context, req service.UpsertPreferenceRequest) (*domain.Preference, error)
	GetByUserID(ctx context.Context, userID string) (*domain.Preference, error)
}

type PreferenceHandler struct {
	service PreferenceService
}

func NewPreferenceHandler(service PreferenceService) (*PreferenceHandler, error) {
	if service == nil {
		return nil, fmt.Errorf("preference service is required")
	}
	return &PreferenceHandler{service: service}, nil
}

func RegisterPreferenceRoutes(router fiber.Router, service PreferenceService) error {
	h, err := NewPreferenceHandler(service)
	if err != nil {
		return err
	}

	v1 := router.Group("/v1")
	v1.Post("/preferences", h.UpsertPreference)
	v1.Get("/preferences", h.GetPreference)

	return nil
}

type upsertPreferenceRequest struct {
	UserID              string  `json:"userId"`
	NotificationEnabled bool    `json:"notificationEnabled"`
	ContactInfo         string  `json:"contactInfo"`
	Channel             *string `json:"type"`
}

type preferenceResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Channel     string    `json:"type"`
	Enabled     bool      `json:"enabled"`
	ContactInfo string    `json:"contactInfo"`
	CreatedOn   time.Time `json:"createdOn"`
	UpdatedOn   time.Time `json:"updatedOn"`
}

func (h *PreferenceHandler) UpsertPreference(c *fiber.Ctx) error {
	var req upsertPreferenceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	userID, err := parseUserID(req.UserID)
	if err != nil {
		return toHTTPError(err)
	}

	upsertReq := service.UpsertPreferenceRequest{
		UserID:      userID,
		Enabled:     req.NotificationEnabled,
		ContactInfo: req.ContactInfo,
	}
	if req.Channel != nil {
		channel, err := domain.ParseChannelFromString(*req.Channel)
		if err != nil {
			return toHTTPError(err)
		}
		upsertReq.Channel = &channel
	}

	pref, err := h.service.Upsert(c.Context(), upsertReq)
	if err != nil {
		return toHTTPError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(toPreferenceResponse(pref))
}

func (h *PreferenceHandler) GetPreference(c *fiber.Ctx) error {
	userID, err := parseUserID(c.Query("userId"))
	if err != nil {
		return toHTTPError(err)
	}

	pref, err := h.service.GetByUserID(c.Context(), userID)
	if err != nil {
		return toHTTPError(err)
	}

	return c.Status(fiber.StatusOK).JSON(toPreferenceResponse(pref))
}

func toPreferenceResponse(p *domain.Preference) preferenceResponse {
	return preferenceResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		Channel:     p.Channel.String(),
		Enabled:     p.Enabled,
		ContactInfo: p.ContactInfo,
		CreatedOn:   p.CreatedOn,
		UpdatedOn:   p.UpdatedOn,
	}
}
