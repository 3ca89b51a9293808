package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/logisur/almacen-api/internal/application/billing"
)

// BillingHandler expone el estado de cuenta de las empresas: deuda por
// almacenamiento, tarifas de reparto y pagos aprobados.
type BillingHandler struct {
	statement *billing.StatementUseCase
	pdf       *billing.PDFUseCase
}

func NewBillingHandler(statement *billing.StatementUseCase, pdf *billing.PDFUseCase) *BillingHandler {
	return &BillingHandler{statement: statement, pdf: pdf}
}

// companyParam resuelve la empresa objetivo. Los usuarios cliente siempre
// consultan su propia empresa, sin importar lo que venga en la ruta.
func companyParam(c *fiber.Ctx) string {
	if scope := GetCompanyID(c); scope != "" {
		return scope
	}
	return c.Params("companyId")
}

// Statement godoc
// @Summary      Estado de cuenta de una empresa
// @Description  Deuda total histórica y corte del mes indicado. Sin month y
// @Description  year se usa el mes en curso.
// @Tags         billing
// @Produce      json
// @Param        companyId  path   string  true   "ID de la empresa"
// @Param        month      query  int     false  "Mes (1-12)"
// @Param        year       query  int     false  "Año"
// @Success      200  {object}  dto.StatementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/billing/{companyId} [get]
func (h *BillingHandler) Statement(c *fiber.Ctx) error {
	out, err := h.statement.Statement(c.Context(), companyParam(c), c.QueryInt("month", 0), c.QueryInt("year", 0))
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(out)
}

// StatementPDF godoc
// @Summary      Estado de cuenta en PDF
// @Tags         billing
// @Produce      application/pdf
// @Param        companyId  path   string  true   "ID de la empresa"
// @Param        month      query  int     false  "Mes (1-12)"
// @Param        year       query  int     false  "Año"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/billing/{companyId}/pdf [get]
func (h *BillingHandler) StatementPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdf.DownloadStatementPDF(c.Context(), companyParam(c), c.QueryInt("month", 0), c.QueryInt("year", 0))
	if err != nil {
		return failure(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdfBytes)
}
