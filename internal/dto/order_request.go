package dto

import "github.com/alimikegami/e-commerce/catalog-service/pkg/errs"

// OrderRequest requires both fields to be present; a nil products slice means
// the field was absent (or null), while an explicit empty array is a valid
// order with no references.
type OrderRequest struct {
	UserID   *string  `json:"user_id"`
	Products []string `json:"products"`
}

func (r OrderRequest) Validate() error {
	var missing []string
	if r.UserID == nil {
		missing = append(missing, "user_id")
	}
	if r.Products == nil {
		missing = append(missing, "products")
	}

	if len(missing) > 0 {
		return &errs.MissingFieldsError{Fields: missing}
	}

	return nil
}
