package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusNotFound       = http.StatusNotFound
)

var (
	ErrInternalServer    = errors.New("Internal server error")
	ErrClient            = errors.New("Bad request")
	ErrNotFound          = errors.New("Resource not found")
	ErrInvalidPagination = errors.New("Limit must be at least 1 and offset must not be negative")
	ErrProductNotCreated = errors.New("Failed to create product")
	ErrOrderNotCreated   = errors.New("Failed to create order")
)

// ProductNotFoundError identifies which referenced product id did not resolve.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("Product %s not found", e.ProductID)
}

func (e *ProductNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// InvalidProductIDError identifies a product reference that does not parse as
// an object id.
type InvalidProductIDError struct {
	ProductID string
}

func (e *InvalidProductIDError) Error() string {
	return fmt.Sprintf("Invalid product ID %s", e.ProductID)
}

func (e *InvalidProductIDError) Is(target error) bool {
	return target == ErrClient
}

// MissingFieldsError lists the required body fields a request left out.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("Missing required fields: %s", strings.Join(e.Fields, ", "))
}

func (e *MissingFieldsError) Is(target error) bool {
	return target == ErrClient
}

var errorMap = map[error]int{
	ErrInternalServer:    ErrStatusInternalServer,
	ErrClient:            ErrStatusClient,
	ErrNotFound:          ErrStatusNotFound,
	ErrInvalidPagination: ErrStatusClient,
	ErrProductNotCreated: ErrStatusInternalServer,
	ErrOrderNotCreated:   ErrStatusInternalServer,
}

func GetErrorStatusCode(err error) int {
	for target, statusCode := range errorMap {
		if errors.Is(err, target) {
			return statusCode
		}
	}
	return ErrStatusInternalServer
}
