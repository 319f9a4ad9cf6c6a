package response

import (
	"net/http"

	"github.com/alimikegami/e-commerce/catalog-service/pkg/errs"
	"github.com/labstack/echo/v4"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Errors  interface{} `json:"errors"`
}

// WriteCreatedResponse acknowledges a successful write with a bare message
// object, matching the create endpoints' contract.
func WriteCreatedResponse(c echo.Context, message string) error {
	return c.JSON(http.StatusCreated, MessageResponse{Message: message})
}

// WriteOKResponse renders the payload as-is; list endpoints return bare JSON
// arrays rather than an envelope.
func WriteOKResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func WriteErrorResponse(c echo.Context, err error, errors interface{}) error {
	statusCode := errs.GetErrorStatusCode(err)
	resp := ErrorResponse{}
	resp.Status = "error"
	resp.Message = err.Error()
	resp.Errors = errors

	return c.JSON(statusCode, resp)
}
