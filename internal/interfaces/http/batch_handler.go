package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/logisur/almacen-api/internal/application/batch"
	"github.com/logisur/almacen-api/internal/application/dto"
	"github.com/logisur/almacen-api/internal/domain/repository"
)

// BatchHandler maneja los lotes de transporte (agrupación de despachos que
// salen juntos con un transportista).
type BatchHandler struct {
	uc *batch.UseCase
}

func NewBatchHandler(uc *batch.UseCase) *BatchHandler {
	return &BatchHandler{uc: uc}
}

// Create godoc
// @Summary      Crear lote de transporte
// @Description  Crea el lote en estado pendiente y agenda los despachos
// @Description  solicitados que se incluyan.
// @Tags         batches
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBatchRequest  true  "Lote"
// @Success      201   {object}  dto.BatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "Algún despacho no está solicitado"
// @Router       /api/batches [post]
func (h *BatchHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return failure(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Cambiar el transportista de un lote pendiente
// @Tags         batches
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del lote"
// @Param        body  body  dto.UpdateBatchRequest  true  "Transportista"
// @Success      204   "Sin contenido"
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/batches/{id} [put]
func (h *BatchHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Update(c.Context(), c.Params("id"), in); err != nil {
		return failure(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Transit godoc
// @Summary      Poner lote en tránsito
// @Description  Embarca todos los despachos agendados del lote.
// @Tags         batches
// @Produce      json
// @Param        id   path  string  true  "ID del lote"
// @Success      204  "Sin contenido"
// @Failure      409  {object}  dto.ErrorResponse  "El lote no está pendiente"
// @Router       /api/batches/{id}/transit [put]
func (h *BatchHandler) Transit(c *fiber.Ctx) error {
	if err := h.uc.Transit(c.Context(), c.Params("id")); err != nil {
		return failure(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar lote pendiente
// @Description  Devuelve sus despachos al estado solicitado.
// @Tags         batches
// @Produce      json
// @Param        id   path  string  true  "ID del lote"
// @Success      204  "Sin contenido"
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/batches/{id} [delete]
func (h *BatchHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return failure(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetByID godoc
// @Summary      Obtener lote por ID
// @Tags         batches
// @Produce      json
// @Param        id   path  string  true  "ID del lote"
// @Success      200  {object}  dto.BatchResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/batches/{id} [get]
func (h *BatchHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar lotes de transporte
// @Tags         batches
// @Produce      json
// @Param        carrier_id  query  string  false  "Transportista"
// @Param        status      query  string  false  "Estado"
// @Param        date        query  string  false  "Fecha (YYYY-MM-DD)"
// @Param        limit       query  int     false  "Límite"
// @Param        offset      query  int     false  "Offset"
// @Success      200  {object}  dto.BatchListResponse
// @Router       /api/batches [get]
func (h *BatchHandler) List(c *fiber.Ctx) error {
	f := repository.BatchFilter{
		CarrierID: c.Query("carrier_id"),
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
	out, err := h.uc.List(c.Context(), f)
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(out)
}
