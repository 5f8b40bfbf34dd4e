package controller

import (
	"context"

	"returnhub-be/internal/dto"
	"returnhub-be/internal/pkg/apperror"
	"returnhub-be/internal/pkg/serverutils"
	"returnhub-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IReturnController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Approve(ctx *fiber.Ctx) error
	Cancel(ctx *fiber.Ctx) error
	Complete(ctx *fiber.Ctx) error
}

type returnController struct {
	service service.IReturnService
}

func NewReturnController(service service.IReturnService) IReturnController {
	return &returnController{service: service}
}

func (c *returnController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/returns")
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Post(":id/approve", c.Approve)
	h.Post(":id/cancel", c.Cancel)
	h.Post(":id/complete", c.Complete)
}

func (c *returnController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateReturnRequest
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

func (c *returnController) GetAll(ctx *fiber.Ctx) error {
	filter := dto.ListReturnsFilter{
		Status: ctx.Query("status"),
	}
	if merchantParam := ctx.Query("merchant"); merchantParam != "" {
		merchantId, err := uuid.Parse(merchantParam)
		if err != nil {
			return apperror.NewFieldValidationError("Invalid request body", map[string]string{
				"merchant": "merchant must be a valid UUID",
			})
		}
		filter.Merchant = &merchantId
	}

	res, err := c.service.GetAll(ctx.Context(), &filter)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *returnController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.NewNotFoundError("Return")
	}

	res, err := c.service.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *returnController) Approve(ctx *fiber.Ctx) error {
	return c.action(ctx, c.service.Approve)
}

func (c *returnController) Cancel(ctx *fiber.Ctx) error {
	return c.action(ctx, c.service.Cancel)
}

func (c *returnController) Complete(ctx *fiber.Ctx) error {
	return c.action(ctx, c.service.Complete)
}

func (c *returnController) action(ctx *fiber.Ctx, fn func(ctx context.Context, id uuid.UUID) (*dto.ReturnResponse, error)) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.NewNotFoundError("Return")
	}

	res, err := fn(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
