package handler

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/emelinabraham-cmd/homeease-api/internal/domain"
	"github.com/emelinabraham-cmd/homeease-api/internal/middleware"
	"github.com/emelinabraham-cmd/homeease-api/internal/server"
	"github.com/emelinabraham-cmd/homeease-api/internal/service"
	"github.com/emelinabraham-cmd/homeease-api/internal/validation"
	"github.com/labstack/echo/v4"
)

// maxSupportMessageLen bounds the trimmed message body, measured before the
// subject header is prepended.
const maxSupportMessageLen = 2000

// SupportHandler files customer support tickets.
type SupportHandler struct {
	Handler
	support *service.SupportService
}

func NewSupportHandler(s *server.Server, support *service.SupportService) *SupportHandler {
	return &SupportHandler{
		Handler: NewHandler(s),
		support: support,
	}
}

// CreateSupportMessageRequest is the payload for opening a ticket. Subject
// is optional; a whitespace-only subject is treated as absent.
type CreateSupportMessageRequest struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (r *CreateSupportMessageRequest) Validate() error {
	trimmed := strings.TrimSpace(r.Message)
	if trimmed == "" {
		return validation.Failf("message", "Message content is required")
	}

	if utf8.RuneCountInString(trimmed) > maxSupportMessageLen {
		return validation.Failf("message", "Message is too long. Maximum 2000 characters allowed.")
	}

	return nil
}

func (h *SupportHandler) create(c echo.Context, req *CreateSupportMessageRequest) (*domain.SupportMessageSnapshot, error) {
	return h.support.Create(c.Request().Context(), middleware.GetUserID(c), req.Subject, req.Message)
}

// Create registers the support message endpoint.
func (h *SupportHandler) Create() echo.HandlerFunc {
	return Handle(h.Handler, h.create, http.StatusCreated)
}
