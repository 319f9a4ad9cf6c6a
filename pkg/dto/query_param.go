package dto

import "github.com/alimikegami/e-commerce/catalog-service/pkg/errs"

const DefaultLimit = 10

// Filter carries the list query parameters. Limit and offset are pointers so
// an absent parameter can fall back to its default while an explicit zero is
// still rejected by Validate.
type Filter struct {
	Name   string `query:"name"`
	Size   string `query:"size"`
	Limit  *int64 `query:"limit"`
	Offset *int64 `query:"offset"`
}

func (f Filter) LimitValue() int64 {
	if f.Limit == nil {
		return DefaultLimit
	}
	return *f.Limit
}

func (f Filter) OffsetValue() int64 {
	if f.Offset == nil {
		return 0
	}
	return *f.Offset
}

func (f Filter) Validate() error {
	if f.LimitValue() < 1 || f.OffsetValue() < 0 {
		return errs.ErrInvalidPagination
	}
	return nil
}
