package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/logisur/almacen-api/internal/application/dto"
	"github.com/logisur/almacen-api/internal/application/usecase"
)

// CityHandler maneja las ciudades de reparto y sus tarifas.
type CityHandler struct {
	uc *usecase.CityUseCase
}

func NewCityHandler(uc *usecase.CityUseCase) *CityHandler {
	return &CityHandler{uc: uc}
}

// Create godoc
// @Summary      Crear ciudad de reparto
// @Tags         cities
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CityRequest  true  "Datos de la ciudad"
// @Success      201   {object}  dto.CityResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cities [post]
func (h *CityHandler) Create(c *fiber.Ctx) error {
	var in dto.CityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return failure(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar ciudad (tarifa o disponibilidad de reparto)
// @Tags         cities
// @Accept       json
// @Produce      json
// @Param        id    path  string           true  "ID de la ciudad"
// @Param        body  body  dto.CityRequest  true  "Datos de la ciudad"
// @Success      200   {object}  dto.CityResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cities/{id} [put]
func (h *CityHandler) Update(c *fiber.Ctx) error {
	var in dto.CityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar ciudades de reparto
// @Tags         cities
// @Produce      json
// @Success      200  {array}  dto.CityResponse
// @Router       /api/cities [get]
func (h *CityHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(out)
}
