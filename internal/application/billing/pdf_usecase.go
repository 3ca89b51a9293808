package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/logisur/almacen-api/internal/application/dto"
	"github.com/logisur/almacen-api/internal/application/settings"
	"github.com/logisur/almacen-api/internal/domain/entity"
	"github.com/logisur/almacen-api/internal/domain/repository"
)

// StatementPDFGenerator puerto de la representación gráfica del estado de cuenta.
type StatementPDFGenerator interface {
	GenerateStatementPDF(
		ctx context.Context,
		company *entity.Company,
		installation map[string]string,
		st *dto.StatementResponse,
		period string,
	) ([]byte, error)
}

// PDFUseCase genera el estado de cuenta en PDF para descargar o enviar por correo.
type PDFUseCase struct {
	statement   *StatementUseCase
	companyRepo repository.CompanyRepository
	settings    *settings.Loader
	generator   StatementPDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando el agregador y el generador.
func NewPDFUseCase(
	statement *StatementUseCase,
	companyRepo repository.CompanyRepository,
	loader *settings.Loader,
	generator StatementPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		statement:   statement,
		companyRepo: companyRepo,
		settings:    loader,
		generator:   generator,
	}
}

// DownloadStatementPDF calcula el estado de cuenta del mes y lo vuelca a PDF.
// Devuelve los bytes y el nombre de archivo sugerido.
func (uc *PDFUseCase) DownloadStatementPDF(ctx context.Context, companyID string, month, year int) (pdfBytes []byte, filename string, err error) {
	st, err := uc.statement.Statement(ctx, companyID, month, year)
	if err != nil {
		return nil, "", err
	}
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil || company == nil {
		return nil, "", fmt.Errorf("pdf: obtener empresa: %w", err)
	}
	snap, err := uc.settings.Load(ctx)
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	period := fmt.Sprintf("%02d/%d", month, year)

	pdfBytes, err = uc.generator.GenerateStatementPDF(ctx, company, snap.All(), st, period)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	filename = fmt.Sprintf("estado_cuenta_%s_%02d-%d.pdf", company.RIF, month, year)
	return pdfBytes, filename, nil
}
