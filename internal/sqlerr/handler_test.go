package sqlerr

import (
	"errors"
	"net/http"
	"testing"

	"github.com/emelinabraham-cmd/homeease-api/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	return httpErr
}

func TestHandleError_UniqueViolationBecomesConflict(t *testing.T) {
	// The services.name unique constraint closes the create-service race;
	// the loser must get the same 409 as the pre-check.
	pgErr := &pgconn.PgError{
		Code:           "23505",
		TableName:      "services",
		ConstraintName: "services_name_key",
	}

	httpErr := asHTTPError(t, HandleError(pgErr))
	assert.Equal(t, http.StatusConflict, httpErr.Status)
	assert.Equal(t, "SERVICE_ALREADY_EXISTS", httpErr.Code)
	assert.Equal(t, "A Service with this Name already exists", httpErr.Message)
}

func TestHandleError_ForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:       "23503",
		TableName:  "bookings",
		ColumnName: "service_id",
	}

	httpErr := asHTTPError(t, HandleError(pgErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "BOOKING_NOT_FOUND", httpErr.Code)
	assert.Equal(t, "The referenced Service does not exist", httpErr.Message)
}

func TestHandleError_NotNullViolationCarriesFieldError(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:       "23502",
		TableName:  "bookings",
		ColumnName: "address",
	}

	httpErr := asHTTPError(t, HandleError(pgErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "BOOKING_REQUIRED", httpErr.Code)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "address", httpErr.Errors[0].Field)
}

func TestHandleError_CheckViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:       "23514",
		TableName:  "services",
		ColumnName: "price",
	}

	httpErr := asHTTPError(t, HandleError(pgErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "SERVICE_INVALID", httpErr.Code)
}

func TestHandleError_NoRowsBecomesNotFound(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(pgx.ErrNoRows))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestHandleError_UnknownErrorIsOpaque500(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(errors.New("connection refused")))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), httpErr.Message)
}

func TestHandleError_PassesThroughHTTPError(t *testing.T) {
	original := errs.NewForbiddenError("You can only cancel your own bookings")
	assert.Same(t, error(original), HandleError(original))
}

func TestMapCode(t *testing.T) {
	assert.Equal(t, UniqueViolation, MapCode("23505"))
	assert.Equal(t, ForeignKeyViolation, MapCode("23503"))
	assert.Equal(t, NotNullViolation, MapCode("23502"))
	assert.Equal(t, CheckViolation, MapCode("23514"))
	assert.Equal(t, InvalidTextRepresentation, MapCode("22P02"))
	assert.Equal(t, Other, MapCode("57014"))
}
