package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/logisur/almacen-api/internal/application/dto"
	"github.com/logisur/almacen-api/internal/application/usecase"
)

// SettingsHandler maneja la configuración de la instalación (tarifa de
// paleta/día, datos de contacto, etc.).
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// All godoc
// @Summary      Obtener la configuración completa
// @Tags         settings
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/settings [get]
func (h *SettingsHandler) All(c *fiber.Ctx) error {
	out, err := h.uc.All()
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar una clave de configuración
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        key   path  string                    true  "Clave"
// @Param        body  body  dto.UpdateSettingRequest  true  "Nuevo valor"
// @Success      204   "Sin contenido"
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings/{key} [put]
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSettingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Update(c.Params("key"), in.Value); err != nil {
		return failure(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
