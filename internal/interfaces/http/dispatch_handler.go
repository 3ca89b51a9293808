package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/logisur/almacen-api/internal/application/dispatch"
	"github.com/logisur/almacen-api/internal/application/dto"
	"github.com/logisur/almacen-api/internal/domain/repository"
)

// DispatchHandler maneja el ciclo de vida de los despachos: solicitud,
// agendado en lote de transporte, embarque, entrega y cancelación.
type DispatchHandler struct {
	uc *dispatch.UseCase
}

func NewDispatchHandler(uc *dispatch.UseCase) *DispatchHandler {
	return &DispatchHandler{uc: uc}
}

// Create godoc
// @Summary      Solicitar despacho
// @Description  Descuenta stock de la empresa y deja el despacho en estado
// @Description  solicitado a la espera de ser agendado.
// @Tags         dispatches
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDispatchRequest  true  "Despacho"
// @Success      201   {object}  dto.DispatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "Stock insuficiente"
// @Router       /api/dispatches [post]
func (h *DispatchHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDispatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), GetCompanyID(c), in)
	if err != nil {
		return failure(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Cancel godoc
// @Summary      Cancelar despacho
// @Description  Devuelve el stock descontado. Disponible para la empresa dueña
// @Description  mientras el despacho no esté entregado ni cerrado.
// @Tags         dispatches
// @Produce      json
// @Param        id   path  string  true  "ID del despacho"
// @Success      204  "Sin contenido"
// @Failure      409  {object}  dto.ErrorResponse  "Estado terminal"
// @Router       /api/dispatches/{id}/cancel [put]
func (h *DispatchHandler) Cancel(c *fiber.Ctx) error {
	if err := h.uc.Cancel(c.Context(), c.Params("id"), GetCompanyID(c)); err != nil {
		return failure(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Deny godoc
// @Summary      Denegar despacho
// @Description  Cierra el despacho con un motivo y devuelve el stock.
// @Tags         dispatches
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del despacho"
// @Param        body  body  dto.DenyDispatchRequest  true  "Motivo"
// @Success      204   "Sin contenido"
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/dispatches/{id}/deny [put]
func (h *DispatchHandler) Deny(c *fiber.Ctx) error {
	var in dto.DenyDispatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Deny(c.Context(), c.Params("id"), in.Comments); err != nil {
		return failure(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AllocateBatch godoc
// @Summary      Agendar despacho en un lote de transporte
// @Tags         dispatches
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del despacho"
// @Param        body  body  dto.AllocateBatchRequest  true  "Lote destino"
// @Success      204   "Sin contenido"
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/dispatches/{id}/batch [put]
func (h *DispatchHandler) AllocateBatch(c *fiber.Ctx) error {
	var in dto.AllocateBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.BatchID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "batch_id es requerido"})
	}
	if err := h.uc.AllocateBatch(c.Context(), c.Params("id"), in.BatchID); err != nil {
		return failure(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeallocateBatch godoc
// @Summary      Sacar despacho de su lote de transporte
// @Tags         dispatches
// @Produce      json
// @Param        id   path  string  true  "ID del despacho"
// @Success      204  "Sin contenido"
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/dispatches/{id}/batch [delete]
func (h *DispatchHandler) DeallocateBatch(c *fiber.Ctx) error {
	if err := h.uc.DeallocateBatch(c.Context(), c.Params("id")); err != nil {
		return failure(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Deliver godoc
// @Summary      Marcar despacho como entregado
// @Description  Consume lotes de almacenamiento en orden FIFO por la cantidad
// @Description  despachada y finaliza el lote de transporte si era el último
// @Description  despacho embarcado.
// @Tags         dispatches
// @Produce      json
// @Param        id   path  string  true  "ID del despacho"
// @Success      204  "Sin contenido"
// @Failure      409  {object}  dto.ErrorResponse  "No está embarcado o lotes insuficientes"
// @Router       /api/dispatches/{id}/deliver [put]
func (h *DispatchHandler) Deliver(c *fiber.Ctx) error {
	if err := h.uc.Deliver(c.Context(), c.Params("id")); err != nil {
		return failure(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetByID godoc
// @Summary      Obtener despacho por ID
// @Tags         dispatches
// @Produce      json
// @Param        id   path  string  true  "ID del despacho"
// @Success      200  {object}  dto.DispatchResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/dispatches/{id} [get]
func (h *DispatchHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"), GetCompanyID(c))
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar despachos
// @Tags         dispatches
// @Produce      json
// @Param        company_id  query  string  false  "Empresa"
// @Param        status      query  string  false  "Estado"
// @Param        batch_id    query  string  false  "Lote de transporte"
// @Param        date        query  string  false  "Fecha (YYYY-MM-DD)"
// @Param        limit       query  int     false  "Límite"
// @Param        offset      query  int     false  "Offset"
// @Success      200  {object}  dto.DispatchListResponse
// @Router       /api/dispatches [get]
func (h *DispatchHandler) List(c *fiber.Ctx) error {
	f := repository.DispatchFilter{
		CompanyID: c.Query("company_id"),
		UserID:    c.Query("user_id"),
		Status:    c.Query("status"),
		BatchID:   c.Query("batch_id"),
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
