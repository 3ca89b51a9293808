package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/logisur/almacen-api/internal/application/dto"
	"github.com/logisur/almacen-api/internal/application/usecase"
)

// ReceiverHandler maneja los receptores de despachos de cada empresa.
type ReceiverHandler struct {
	uc *usecase.ReceiverUseCase
}

func NewReceiverHandler(uc *usecase.ReceiverUseCase) *ReceiverHandler {
	return &ReceiverHandler{uc: uc}
}

// Create godoc
// @Summary      Crear receptor
// @Tags         receivers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReceiverRequest  true  "Datos del receptor"
// @Success      201   {object}  dto.ReceiverResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "La ciudad no tiene reparto"
// @Router       /api/receivers [post]
func (h *ReceiverHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReceiverRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetCompanyID(c), in)
	if err != nil {
		return failure(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener receptor por ID
// @Tags         receivers
// @Produce      json
// @Param        id   path  string  true  "ID del receptor"
// @Success      200  {object}  dto.ReceiverResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/receivers/{id} [get]
func (h *ReceiverHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"), GetCompanyID(c))
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar receptores de una empresa
// @Tags         receivers
// @Produce      json
// @Param        company_id  query  string  false  "Empresa (solo personal de la instalación)"
// @Success      200  {array}  dto.ReceiverResponse
// @Router       /api/receivers [get]
func (h *ReceiverHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		companyID = c.Query("company_id")
	}
	if companyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "company_id es requerido"})
	}
	out, err := h.uc.ListByCompany(companyID)
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(out)
}
