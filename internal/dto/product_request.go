package dto

import "github.com/alimikegami/e-commerce/catalog-service/pkg/errs"

// ProductRequest's fields are pointers so an absent field can be told apart
// from a present-but-zero one; empty strings and a zero price are valid.
type ProductRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *int64  `json:"price"`
	Size        *string `json:"size"`
}

func (r ProductRequest) Validate() error {
	var missing []string
	if r.Name == nil {
		missing = append(missing, "name")
	}
	if r.Description == nil {
		missing = append(missing, "description")
	}
	if r.Price == nil {
		missing = append(missing, "price")
	}
	if r.Size == nil {
		missing = append(missing, "size")
	}

	if len(missing) > 0 {
		return &errs.MissingFieldsError{Fields: missing}
	}

	return nil
}
