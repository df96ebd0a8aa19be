package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/minimalism94/notification-svc/internal/domain"
	"github.com/minimalism94/notification-svc/internal/service"
)

type NotificationService interface {
	Send(ctx context.Context, req service.SendRequest) (*domain.Notification, error)
	GetHistory(ctx context.Context, userID string) ([]domain.Notification, error)
}

type NotificationHandler struct {
	service NotificationService
}

func NewNotificationHandler(service NotificationService) (*NotificationHandler, error) {
	if service == nil {
		return nil, fmt.Errorf("notification service is required")
	}
	return &NotificationHandler{service: service}, nil
}

func RegisterNotificationRoutes(router fiber.Router, service NotificationService) error {
	h, err := NewNotificationHandler(service)
	if err != nil {
		return err
	}

	v1 := router.Group("/v1")
	v1.Post("/notifications", h.SendNotification)
	v1.Get("/notifications", h.GetHistory)

	return nil
}

type sendNotificationRequest struct {
	UserID  string `json:"userId"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type notificationResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Channel   string    `json:"type"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Status    string    `json:"status"`
	CreatedOn time.Time `json:"createdOn"`
}

type historyResponse struct {
	Data []notificationResponse `json:"data"`
}

func (h *NotificationHandler) SendNotification(c *fiber.Ctx) error {
	var req sendNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	userID, err := parseUserID(req.UserID)
	if err != nil {
		return toHTTPError(err)
	}

	record, err := h.service.Send(c.Context(), service.SendRequest{
		UserID:  userID,
		Subject: req.Subject,
		Body:    req.Body,
	})
	if err != nil {
		return toHTTPError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(toNotificationResponse(record))
}

func (h *NotificationHandler) GetHistory(c *fiber.Ctx) error {
	userID, err := parseUserID(c.Query("userId"))
	if err != nil {
		return toHTTPError(err)
	}

	history, err := h.service.GetHistory(c.Context(), userID)
	if err != nil {
		return toHTTPError(err)
	}

	items := make([]notificationResponse, 0, len(history))
	for i := range history {
		items = append(items, toNotificationResponse(&history[i]))
	}

	return c.Status(fiber.StatusOK).JSON(historyResponse{Data: items})
}

func toNotificationResponse(n *domain.Notification) notificationResponse {
	return notificationResponse{
		ID:        n.ID,
		UserID:    n.UserID,
		Channel:   n.Channel.String(),
		Subject:   n.Subject,
		Body:      n.Body,
		Status:    n.Status.String(),
		CreatedOn: n.CreatedOn,
	}
}

func parseUserID(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("%w: userId is required", domain.ErrValidation)
	}
	parsed, err := uuid.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("%w: userId must be a valid uuid", domain.ErrValidation)
	}
	return parsed.String(), nil
}

func toHTTPError(err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrDisabled):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	default:
		return err
	}
}
