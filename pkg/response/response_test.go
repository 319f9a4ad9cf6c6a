package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alimikegami/e-commerce/catalog-service/pkg/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestWriteCreatedResponse(t *testing.T) {
	c, rec := newTestContext()

	require.NoError(t, WriteCreatedResponse(c, "Product created successfully"))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message": "Product created successfully"}`, rec.Body.String())
}

func TestWriteOKResponse(t *testing.T) {
	c, rec := newTestContext()

	require.NoError(t, WriteOKResponse(c, []string{"first", "second"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `["first", "second"]`, rec.Body.String())
}

func TestWriteErrorResponse(t *testing.T) {
	t.Run("Mapped sentinel", func(t *testing.T) {
		c, rec := newTestContext()

		require.NoError(t, WriteErrorResponse(c, errs.ErrNotFound, nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"status": "error", "message": "Resource not found", "errors": null}`, rec.Body.String())
	})

	t.Run("Typed error keeps its message", func(t *testing.T) {
		c, rec := newTestContext()

		err := &errs.ProductNotFoundError{ProductID: "665f0cf1a2b3c4d5e6f70811"}
		require.NoError(t, WriteErrorResponse(c, err, nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"status": "error", "message": "Product 665f0cf1a2b3c4d5e6f70811 not found", "errors": null}`, rec.Body.String())
	})

	t.Run("Detail payload passes through", func(t *testing.T) {
		c, rec := newTestContext()

		require.NoError(t, WriteErrorResponse(c, errs.ErrClient, []string{"name is required"}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"status": "error", "message": "Bad request", "errors": ["name is required"]}`, rec.Body.String())
	})
}
