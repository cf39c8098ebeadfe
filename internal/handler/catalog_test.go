package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/emelinabraham-cmd/homeease-api/internal/domain"
	"github.com/emelinabraham-cmd/homeease-api/internal/errs"
	"github.com/emelinabraham-cmd/homeease-api/internal/service"
	"github.com/emelinabraham-cmd/homeease-api/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func firstFailure(t *testing.T, err error) validation.CustomValidationError {
	t.Helper()
	var verrs validation.CustomValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.NotEmpty(t, verrs)
	return verrs[0]
}

func TestCreateServiceRequest_Validate(t *testing.T) {
	cases := []struct {
		name    string
		req     CreateServiceRequest
		wantMsg string
	}{
		{
			name:    "missing name",
			req:     CreateServiceRequest{Category: "cleaning", Price: json.Number("50")},
			wantMsg: "Service name is required",
		},
		{
			name:    "whitespace name",
			req:     CreateServiceRequest{Name: "   ", Category: "cleaning", Price: json.Number("50")},
			wantMsg: "Service name is required",
		},
		{
			name:    "missing category",
			req:     CreateServiceRequest{Name: "Deep Cleaning", Price: json.Number("50")},
			wantMsg: "Service category is required",
		},
		{
			name:    "missing price",
			req:     CreateServiceRequest{Name: "Deep Cleaning", Category: "cleaning"},
			wantMsg: "Valid price is required (must be greater than 0)",
		},
		{
			name:    "zero price",
			req:     CreateServiceRequest{Name: "Deep Cleaning", Category: "cleaning", Price: json.Number("0")},
			wantMsg: "Valid price is required (must be greater than 0)",
		},
		{
			name:    "negative price",
			req:     CreateServiceRequest{Name: "Deep Cleaning", Category: "cleaning", Price: json.Number("-5")},
			wantMsg: "Valid price is required (must be greater than 0)",
		},
		{
			name:    "three decimal places",
			req:     CreateServiceRequest{Name: "Deep Cleaning", Category: "cleaning", Price: json.Number("19.999")},
			wantMsg: "Price must be a valid number with at most 2 decimal places",
		},
		{
			name:    "exponent notation",
			req:     CreateServiceRequest{Name: "Deep Cleaning", Category: "cleaning", Price: json.Number("1e3")},
			wantMsg: "Price must be a valid number with at most 2 decimal places",
		},
		{
			// Name is checked before category, category before price.
			name:    "order is name first",
			req:     CreateServiceRequest{},
			wantMsg: "Service name is required",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			require.Error(t, err)
			assert.Equal(t, tc.wantMsg, firstFailure(t, err).Message)
		})
	}
}

func TestCreateServiceRequest_Validate_Accepts(t *testing.T) {
	valid := []json.Number{"19.99", "20", "0.01", "1500.50"}
	for _, price := range valid {
		req := CreateServiceRequest{Name: "Deep Cleaning", Category: "cleaning", Price: price}
		assert.NoError(t, req.Validate(), "price %s", price)
	}
}

func TestSetServiceActiveRequest_Validate(t *testing.T) {
	req := SetServiceActiveRequest{}
	err := req.Validate()
	require.Error(t, err)
	assert.Equal(t, "Missing required field: is_active", firstFailure(t, err).Message)

	active := true
	assert.NoError(t, (&SetServiceActiveRequest{IsActive: &active}).Validate())
}

// recordingServiceRepo captures the names the catalog service checks and
// inserts, and holds "Deep Clean" as an existing entry.
type recordingServiceRepo struct {
	existsChecked string
	inserted      *domain.CreateServiceInput
}

func (r *recordingServiceRepo) Insert(_ context.Context, in domain.CreateServiceInput) (*domain.Service, error) {
	r.inserted = &in
	return &domain.Service{ID: "s1", Name: in.Name, Category: in.Category, Price: in.Price, IsActive: true}, nil
}

func (r *recordingServiceRepo) GetByID(context.Context, string) (*domain.Service, error) {
	return nil, domain.ErrServiceNotFound
}

func (r *recordingServiceRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	r.existsChecked = name
	return name == "Deep Clean", nil
}

func (r *recordingServiceRepo) ListActive(context.Context) ([]domain.Service, error) {
	return nil, nil
}

func (r *recordingServiceRepo) SetActive(context.Context, string, bool) (*domain.Service, error) {
	return nil, domain.ErrServiceNotFound
}

func postCreateService(t *testing.T, h *CatalogHandler, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/services", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, h.Create()(e.NewContext(req, rec))
}

func TestCatalogHandler_Create_TrimsNameBeforeStore(t *testing.T) {
	repo := &recordingServiceRepo{}
	h := NewCatalogHandler(newTestServer(), service.NewCatalogService(repo, newTestServer().Logger))

	rec, err := postCreateService(t, h, `{"name":"  Gutter Cleaning  ","category":" cleaning ","price":49.99}`)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Gutter Cleaning", repo.existsChecked)
	require.NotNil(t, repo.inserted)
	assert.Equal(t, "Gutter Cleaning", repo.inserted.Name)
	assert.Equal(t, "cleaning", repo.inserted.Category)
	assert.True(t, repo.inserted.Price.Equal(decimal.RequireFromString("49.99")))
}

func TestCatalogHandler_Create_PaddedNameHitsDuplicate(t *testing.T) {
	repo := &recordingServiceRepo{}
	h := NewCatalogHandler(newTestServer(), service.NewCatalogService(repo, newTestServer().Logger))

	_, err := postCreateService(t, h, `{"name":" Deep Clean ","category":"cleaning","price":49.99}`)
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusConflict, httpErr.Status)
	assert.Equal(t, "A service with this name already exists", httpErr.Message)
	assert.Equal(t, "Deep Clean", repo.existsChecked, "duplicate check runs on the trimmed name")
	assert.Nil(t, repo.inserted)
}

func TestTrimToNil(t *testing.T) {
	assert.Nil(t, trimToNil(nil))

	blank := "   "
	assert.Nil(t, trimToNil(&blank))

	padded := "  hello  "
	got := trimToNil(&padded)
	require.NotNil(t, got)
	assert.Equal(t, "hello", *got)
}
