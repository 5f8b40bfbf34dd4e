package controller

import (
	"returnhub-be/internal/dto"
	"returnhub-be/internal/pkg/apperror"
	"returnhub-be/internal/pkg/serverutils"
	"returnhub-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IConsumerController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type consumerController struct {
	service service.IConsumerService
}

func NewConsumerController(service service.IConsumerService) IConsumerController {
	return &consumerController{service: service}
}

func (c *consumerController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/consumers")
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
}

func (c *consumerController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateConsumerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewValidationError("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *consumerController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *consumerController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.NewNotFoundError("Consumer")
	}

	res, err := c.service.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
