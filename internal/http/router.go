package http

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/NITHINPOLI04/VMEW/internal/handlers"
	"github.com/NITHINPOLI04/VMEW/internal/middleware"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth      *handlers.AuthHandler
	Invoice   *handlers.InvoiceHandler
	Inventory *handlers.InventoryHandler
	Template  *handlers.TemplateHandler
	Dashboard *handlers.DashboardHandler
	Utils     *handlers.UtilsHandler
	System    *handlers.SystemHandler
	Health    *handlers.HealthHandler
}

// NewRouter builds the route table. Everything under /api except the auth
// endpoints requires a valid token.
func NewRouter(h Handlers, authMW *middleware.AuthMiddleware) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/health", h.Health.BasicHealth).Methods("GET")
	router.HandleFunc("/health/ready", h.Health.ReadinessHealth).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	authRouter := router.PathPrefix("/api/auth").Subrouter()
	authRouter.HandleFunc("/signup", h.Auth.Signup).Methods("POST")
	authRouter.HandleFunc("/login", h.Auth.Login).Methods("POST")

	// Stateless helper, usable from the login-free preview screen.
	router.HandleFunc("/api/utils/number-to-words", h.Utils.NumberToWords).Methods("POST")

	api := router.PathPrefix("/api").Subrouter()
	api.Use(authMW.Authenticate)

	// Invoices. The id/{id} form keeps single-invoice lookups from clashing
	// with the year list route.
	api.HandleFunc("/invoices/{year:[0-9]{4}-[0-9]{4}}", h.Invoice.ListInvoices).Methods("GET")
	api.HandleFunc("/invoices/id/{id:[0-9]+}", h.Invoice.GetInvoice).Methods("GET")
	api.HandleFunc("/invoices", h.Invoice.CreateInvoice).Methods("POST")
	api.HandleFunc("/invoices/{id:[0-9]+}", h.Invoice.UpdateInvoice).Methods("PUT")
	api.HandleFunc("/invoices/{id:[0-9]+}/payment-status", h.Invoice.UpdatePaymentStatus).Methods("PATCH")
	api.HandleFunc("/invoices/{id:[0-9]+}/received-amount", h.Invoice.UpdateReceivedAmount).Methods("PATCH")
	api.HandleFunc("/invoices/{id:[0-9]+}", h.Invoice.DeleteInvoice).Methods("DELETE")
	api.HandleFunc("/invoices/{id:[0-9]+}/pdf", h.Invoice.DownloadInvoicePDF).Methods("GET")

	// Inventory register
	api.HandleFunc("/inventory/{year:[0-9]{4}-[0-9]{4}}", h.Inventory.ListItems).Methods("GET")
	api.HandleFunc("/inventory/{year:[0-9]{4}-[0-9]{4}}/export", h.Inventory.ExportYear).Methods("GET")
	api.HandleFunc("/inventory/id/{id:[0-9]+}", h.Inventory.GetItem).Methods("GET")
	api.HandleFunc("/inventory", h.Inventory.CreateItem).Methods("POST")
	api.HandleFunc("/inventory/{id:[0-9]+}", h.Inventory.UpdateItem).Methods("PUT")
	api.HandleFunc("/inventory/{id:[0-9]+}", h.Inventory.DeleteItem).Methods("DELETE")

	// Templates
	api.HandleFunc("/templates/{type}", h.Template.GetTemplate).Methods("GET")
	api.HandleFunc("/templates/{type}", h.Template.UpdateTemplate).Methods("PUT")

	// Dashboard and helpers
	api.HandleFunc("/dashboard/{year:[0-9]{4}-[0-9]{4}}", h.Dashboard.GetSummary).Methods("GET")
	api.HandleFunc("/system/stats", h.System.GetStats).Methods("GET")

	return router
}
