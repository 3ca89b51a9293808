package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/logisur/almacen-api/internal/application/dto"
	"github.com/logisur/almacen-api/internal/application/payment"
	"github.com/logisur/almacen-api/internal/domain/repository"
)

// PaymentHandler maneja los pagos reportados manualmente por las empresas y
// su aprobación por el personal de la instalación.
type PaymentHandler struct {
	uc *payment.UseCase
}

func NewPaymentHandler(uc *payment.UseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// Create godoc
// @Summary      Reportar pago
// @Description  El pago queda en estado pendiente hasta que el personal lo
// @Description  apruebe o lo deniegue.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePaymentRequest  true  "Pago"
// @Success      201   {object}  dto.PaymentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/payments [post]
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetCompanyID(c), in)
	if err != nil {
		return failure(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Approve godoc
// @Summary      Aprobar pago pendiente
// @Tags         payments
// @Produce      json
// @Param        id   path  string  true  "ID del pago"
// @Success      204  "Sin contenido"
// @Failure      409  {object}  dto.ErrorResponse  "El pago no está pendiente"
// @Router       /api/payments/{id}/approve [put]
func (h *PaymentHandler) Approve(c *fiber.Ctx) error {
	if err := h.uc.Approve(c.Context(), c.Params("id")); err != nil {
		return failure(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Deny godoc
// @Summary      Denegar pago pendiente
// @Tags         payments
// @Produce      json
// @Param        id   path  string  true  "ID del pago"
// @Success      204  "Sin contenido"
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/payments/{id}/deny [put]
func (h *PaymentHandler) Deny(c *fiber.Ctx) error {
	if err := h.uc.Deny(c.Context(), c.Params("id")); err != nil {
		return failure(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetByID godoc
// @Summary      Obtener pago por ID
// @Tags         payments
// @Produce      json
// @Param        id   path  string  true  "ID del pago"
// @Success      200  {object}  dto.PaymentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/payments/{id} [get]
func (h *PaymentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"), GetCompanyID(c))
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar pagos
// @Tags         payments
// @Produce      json
// @Param        company_id  query  string  false  "Empresa"
// @Param        status      query  string  false  "Estado"
// @Param        date        query  string  false  "Fecha (YYYY-MM-DD)"
// @Param        limit       query  int     false  "Límite"
// @Param        offset      query  int     false  "Offset"
// @Success      200  {object}  dto.PaymentListResponse
// @Router       /api/payments [get]
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	f := repository.PaymentFilter{
		CompanyID: c.Query("company_id"),
		Status:    c.Query("status"),
		Limit:     c.QueryInt("limit", 0),
		Offset:    c.QueryInt("offset", 0),
	}
	if raw := c.Query("date"); raw != "" {
		d, err := time.Parse(dto.DateLayout, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe tener formato YYYY-MM-DD"})
		}
		f.Date = &d
	}
	out, err := h.uc.List(c.Context(), f, GetCompanyID(c))
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(out)
}
