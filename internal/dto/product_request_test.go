package dto

import (
	"testing"

	"github.com/alimikegami/e-commerce/catalog-service/pkg/errs"
	"github.com/stretchr/testify/assert"
)

func strPtr(v string) *string {
	return &v
}

func int64Ptr(v int64) *int64 {
	return &v
}

func TestProductRequestValidate(t *testing.T) {
	type TestCase struct {
		Name        string
		Request     ProductRequest
		WantMessage string
	}

	testCases := []TestCase{
		{
			Name: "All fields present",
			Request: ProductRequest{
				Name:        strPtr("Keyboard"),
				Description: strPtr("TKL"),
				Price:       int64Ptr(120000),
				Size:        strPtr("80%"),
			},
		},
		{
			Name: "Empty values count as present",
			Request: ProductRequest{
				Name:        strPtr(""),
				Description: strPtr(""),
				Price:       int64Ptr(0),
				Size:        strPtr(""),
			},
		},
		{
			Name: "Missing name",
			Request: ProductRequest{
				Description: strPtr("TKL"),
				Price:       int64Ptr(120000),
				Size:        strPtr("80%"),
			},
			WantMessage: "Missing required fields: name",
		},
		{
			Name: "Missing price",
			Request: ProductRequest{
				Name:        strPtr("Keyboard"),
				Description: strPtr("TKL"),
				Size:        strPtr("80%"),
			},
			WantMessage: "Missing required fields: price",
		},
		{
			Name:        "Name only",
			Request:     ProductRequest{Name: strPtr("Keyboard")},
			WantMessage: "Missing required fields: description, price, size",
		},
		{
			Name:        "All fields absent",
			Request:     ProductRequest{},
			WantMessage: "Missing required fields: name, description, price, size",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			err := tc.Request.Validate()
			if tc.WantMessage == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, errs.ErrClient)
			assert.Equal(t, tc.WantMessage, err.Error())
		})
	}
}
