package controller

import (
	"returnhub-be/internal/dto"
	"returnhub-be/internal/pkg/apperror"
	"returnhub-be/internal/pkg/serverutils"
	"returnhub-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IMerchantController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
}

type merchantController struct {
	service service.IMerchantService
}

func NewMerchantController(service service.IMerchantService) IMerchantController {
	return &merchantController{service: service}
}

func (c *merchantController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/merchants")
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Patch(":id", c.Update)
}

func (c *merchantController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateMerchantRequest
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

func (c *merchantController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *merchantController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.NewNotFoundError("Merchant")
	}

	res, err := c.service.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *merchantController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.NewNotFoundError("Merchant")
	}

	var req dto.UpdateMerchantRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewValidationError("Invalid request body")
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
