package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/logisur/almacen-api/internal/application/auth"
	"github.com/logisur/almacen-api/internal/application/batch"
	"github.com/logisur/almacen-api/internal/application/billing"
	"github.com/logisur/almacen-api/internal/application/dispatch"
	"github.com/logisur/almacen-api/internal/application/payment"
	"github.com/logisur/almacen-api/internal/application/reception"
	"github.com/logisur/almacen-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	CompanyUC   *usecase.CompanyUseCase
	ProductUC   *usecase.ProductUseCase
	ReceiverUC  *usecase.ReceiverUseCase
	CityUC      *usecase.CityUseCase
	SettingsUC  *usecase.SettingsUseCase
	ReceptionUC *reception.UseCase
	DispatchUC  *dispatch.UseCase
	BatchUC     *batch.UseCase
	PaymentUC   *payment.UseCase
	StatementUC *billing.StatementUseCase
	PDFUC       *billing.PDFUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
//
// Reglas de acceso:
//   - /api/auth es público.
//   - El resto requiere Bearer Token. Los usuarios cliente quedan acotados a
//     su propia empresa mediante el company_id del token.
//   - Las operaciones de la instalación (recepciones, lotes de transporte,
//     aprobación de pagos, catálogo, configuración) exigen rol admin u
//     operador.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	staff := RequireStaff()

	// Companies
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", staff, companyHandler.Create)
	companies.Get("/", staff, companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Get("/:id/stock", companyHandler.Stock)

	// Products (catálogo; la escritura es de la instalación)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", staff, productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)

	// Receivers
	receivers := protected.Group("/receivers")
	receiverHandler := NewReceiverHandler(deps.ReceiverUC)
	receivers.Post("/", receiverHandler.Create)
	receivers.Get("/", receiverHandler.List)
	receivers.Get("/:id", receiverHandler.GetByID)

	// Cities (tarifas de reparto)
	cities := protected.Group("/cities")
	cityHandler := NewCityHandler(deps.CityUC)
	cities.Post("/", staff, cityHandler.Create)
	cities.Put("/:id", staff, cityHandler.Update)
	cities.Get("/", cityHandler.List)

	// Settings (solo instalación)
	settings := protected.Group("/settings", staff)
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.All)
	settings.Put("/:key", settingsHandler.Update)

	// Receptions (solo la instalación da de alta mercancía)
	receptions := protected.Group("/receptions")
	receptionHandler := NewReceptionHandler(deps.ReceptionUC)
	receptions.Post("/", staff, receptionHandler.Create)
	receptions.Get("/", receptionHandler.List)
	receptions.Get("/:id", receptionHandler.GetByID)

	// Dispatches
	dispatches := protected.Group("/dispatches")
	dispatchHandler := NewDispatchHandler(deps.DispatchUC)
	dispatches.Post("/", dispatchHandler.Create)
	dispatches.Get("/", dispatchHandler.List)
	dispatches.Get("/:id", dispatchHandler.GetByID)
	dispatches.Put("/:id/cancel", dispatchHandler.Cancel)
	dispatches.Put("/:id/deny", staff, dispatchHandler.Deny)
	dispatches.Put("/:id/batch", staff, dispatchHandler.AllocateBatch)
	dispatches.Delete("/:id/batch", staff, dispatchHandler.DeallocateBatch)
	dispatches.Put("/:id/deliver", staff, dispatchHandler.Deliver)

	// Batches (lotes de transporte, solo instalación)
	batches := protected.Group("/batches", staff)
	batchHandler := NewBatchHandler(deps.BatchUC)
	batches.Post("/", batchHandler.Create)
	batches.Get("/", batchHandler.List)
	batches.Get("/:id", batchHandler.GetByID)
	batches.Put("/:id", batchHandler.Update)
	batches.Put("/:id/transit", batchHandler.Transit)
	batches.Delete("/:id", batchHandler.Delete)

	// Payments
	payments := protected.Group("/payments")
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	payments.Post("/", paymentHandler.Create)
	payments.Get("/", paymentHandler.List)
	payments.Get("/:id", paymentHandler.GetByID)
	payments.Put("/:id/approve", staff, paymentHandler.Approve)
	payments.Put("/:id/deny", staff, paymentHandler.Deny)

	// Billing (estado de cuenta)
	billingGroup := protected.Group("/billing")
	billingHandler := NewBillingHandler(deps.StatementUC, deps.PDFUC)
	billingGroup.Get("/:companyId", billingHandler.Statement)
	billingGroup.Get("/:companyId/pdf", billingHandler.StatementPDF)
}
