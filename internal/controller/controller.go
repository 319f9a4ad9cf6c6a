package controller

import (
	"github.com/alimikegami/e-commerce/catalog-service/internal/dto"
	"github.com/alimikegami/e-commerce/catalog-service/internal/service"
	pkgdto "github.com/alimikegami/e-commerce/catalog-service/pkg/dto"
	"github.com/alimikegami/e-commerce/catalog-service/pkg/errs"
	"github.com/alimikegami/e-commerce/catalog-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type Controller struct {
	service service.CatalogService
}

func CreateCatalogController(e *echo.Group, service service.CatalogService) {
	c := Controller{
		service: service,
	}
	e.POST("/products", c.AddProduct)
	e.GET("/products", c.GetProducts)
	e.POST("/orders", c.AddOrder)
	e.GET("/orders/:user_id", c.GetOrdersByUser)
}

func (c *Controller) AddProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "AddProduct").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err = payload.Validate(); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	err = c.service.AddProduct(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "Product created successfully")
}

func (c *Controller) GetProducts(e echo.Context) error {
	filter := pkgdto.Filter{}
	err := e.Bind(&filter)
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "GetProducts").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err = filter.Validate(); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	responsePayload, err := c.service.GetProducts(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteOKResponse(e, responsePayload)
}

func (c *Controller) AddOrder(e echo.Context) error {
	payload := dto.OrderRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "AddOrder").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err = payload.Validate(); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	err = c.service.AddOrder(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "Order created successfully")
}

func (c *Controller) GetOrdersByUser(e echo.Context) error {
	filter := pkgdto.Filter{}
	err := e.Bind(&filter)
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "GetOrdersByUser").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err = filter.Validate(); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	responsePayload, err := c.service.GetOrdersByUserID(e.Request().Context(), e.Param("user_id"), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteOKResponse(e, responsePayload)
}
