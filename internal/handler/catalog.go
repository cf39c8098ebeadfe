package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/emelinabraham-cmd/homeease-api/internal/domain"
	"github.com/emelinabraham-cmd/homeease-api/internal/server"
	"github.com/emelinabraham-cmd/homeease-api/internal/service"
	"github.com/emelinabraham-cmd/homeease-api/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CatalogHandler serves the service catalog: public listing plus the
// admin-gated create and activate/deactivate operations.
type CatalogHandler struct {
	Handler
	catalog *service.CatalogService
}

func NewCatalogHandler(s *server.Server, catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		Handler: NewHandler(s),
		catalog: catalog,
	}
}

// CreateServiceRequest is the payload for adding a catalog entry. Price
// arrives as a JSON number; json.Number keeps its exact text so the
// two-decimal bound is checked against what the caller sent.
type CreateServiceRequest struct {
	Name        string      `json:"name"`
	Category    string      `json:"category"`
	Price       json.Number `json:"price"`
	Description *string     `json:"description"`
	ImageURL    *string     `json:"image_url"`
	IsActive    *bool       `json:"is_active"`
}

// Validate checks fields in order; the first failure is the response.
func (r *CreateServiceRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return validation.Failf("name", "Service name is required")
	}

	if strings.TrimSpace(r.Category) == "" {
		return validation.Failf("category", "Service category is required")
	}

	price := r.Price.String()
	if price == "" {
		return validation.Failf("price", "Valid price is required (must be greater than 0)")
	}
	if d, err := decimal.NewFromString(price); err == nil && !d.IsPositive() {
		return validation.Failf("price", "Valid price is required (must be greater than 0)")
	}
	if !validation.ValidPrice(price) {
		return validation.Failf("price", "Price must be a valid number with at most 2 decimal places")
	}

	return nil
}

func (h *CatalogHandler) create(c echo.Context, req *CreateServiceRequest) (*domain.Service, error) {
	price, err := validation.ParsePrice(req.Price.String())
	if err != nil {
		return nil, err
	}

	return h.catalog.Create(c.Request().Context(), domain.CreateServiceInput{
		Name:        strings.TrimSpace(req.Name),
		Category:    strings.TrimSpace(req.Category),
		Price:       price,
		Description: trimToNil(req.Description),
		ImageURL:    trimToNil(req.ImageURL),
		IsActive:    req.IsActive,
	})
}

// Create registers the admin create-service endpoint.
func (h *CatalogHandler) Create() echo.HandlerFunc {
	return Handle(h.Handler, h.create, http.StatusCreated)
}

// List returns the active catalog, publicly readable.
func (h *CatalogHandler) List(c echo.Context) error {
	services, err := h.catalog.ListActive(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, services)
}

// SetServiceActiveRequest is the payload for flipping a service's
// availability.
type SetServiceActiveRequest struct {
	IsActive *bool `json:"is_active"`
}

func (r *SetServiceActiveRequest) Validate() error {
	if r.IsActive == nil {
		return validation.Failf("is_active", "Missing required field: is_active")
	}
	return nil
}

func (h *CatalogHandler) setActive(c echo.Context, req *SetServiceActiveRequest) (*domain.Service, error) {
	return h.catalog.SetActive(c.Request().Context(), c.Param("id"), *req.IsActive)
}

// SetActive registers the admin availability-toggle endpoint.
func (h *CatalogHandler) SetActive() echo.HandlerFunc {
	return Handle(h.Handler, h.setActive, http.StatusOK)
}

// trimToNil trims s and treats an empty result as absent.
func trimToNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
