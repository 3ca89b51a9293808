package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/logisur/almacen-api/internal/application/dto"
	"github.com/logisur/almacen-api/internal/application/reception"
	"github.com/logisur/almacen-api/internal/domain/repository"
)

// ReceptionHandler maneja el registro y consulta de recepciones de mercancía.
type ReceptionHandler struct {
	uc *reception.UseCase
}

func NewReceptionHandler(uc *reception.UseCase) *ReceptionHandler {
	return &ReceptionHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar recepción
// @Description  Da de alta paletas en la cuenta de una empresa y materializa
// @Description  un lote de almacenamiento por cada paleta recibida.
// @Tags         receptions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReceptionRequest  true  "Recepción"
// @Success      201   {object}  dto.ReceptionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/receptions [post]
func (h *ReceptionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReceptionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return failure(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener recepción por ID
// @Tags         receptions
// @Produce      json
// @Param        id   path  string  true  "ID de la recepción"
// @Success      200  {object}  dto.ReceptionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/receptions/{id} [get]
func (h *ReceptionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"), GetCompanyID(c))
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar recepciones
// @Tags         receptions
// @Produce      json
// @Param        company_id  query  string  false  "Empresa"
// @Param        date        query  string  false  "Fecha (YYYY-MM-DD)"
// @Param        limit       query  int     false  "Límite"
// @Param        offset      query  int     false  "Offset"
// @Success      200  {object}  dto.ReceptionListResponse
// @Router       /api/receptions [get]
func (h *ReceptionHandler) List(c *fiber.Ctx) error {
	f := repository.ReceptionFilter{
		CompanyID: c.Query("company_id"),
		UserID:    c.Query("user_id"),
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
