package httpx

import (
	"database/sql"
	"log/slog"
	"net/http"

	domainauth "github.com/stackfall/workdesk/internal/domain/auth"
	"github.com/stackfall/workdesk/internal/service"
)

// RouterServices bundles everything the router needs.
type RouterServices struct {
	Auth      *service.AuthService
	Issues    *IssueHandlers
	RFPs      *RFPHandlers
	Customers *CustomerHandlers
	Vendors   *VendorHandlers
	Invoices  *InvoiceHandlers
	Webhooks  *WebhookHandlers
	Portal    *PortalHandlers
	DB        *sql.DB

	CookieDomain string
	Logger       *slog.Logger
}

// NewRouter builds the HTTP mux. Staff routes under /api require a
// session; portal routes are open, with OptionalAuth so staff sessions
// still resolve there.
func NewRouter(svcs RouterServices) http.Handler {
	mux := http.NewServeMux()

	health := &HealthHandlers{DB: svcs.DB}
	mux.HandleFunc("GET /healthz", health.Healthz)
	mux.HandleFunc("GET /readyz", health.Readyz)

	registerAuthRoutes(mux, svcs)
	registerStaffRoutes(mux, svcs)
	registerPortalRoutes(mux, svcs)

	var handler http.Handler = mux
	handler = Recover(svcs.Logger)(handler)
	handler = Logging(svcs.Logger)(handler)
	return handler
}

func registerAuthRoutes(mux *http.ServeMux, svcs RouterServices) {
	auth := &AuthHandlers{Svc: svcs.Auth, CookieDomain: svcs.CookieDomain, Logger: svcs.Logger}
	mux.HandleFunc("GET /auth/login", auth.Login)
	mux.HandleFunc("GET /auth/callback", auth.Callback)
	mux.HandleFunc("POST /auth/logout", auth.Logout)
	mux.Handle("GET /auth/status", OptionalAuth(svcs.Auth)(http.HandlerFunc(auth.Status)))
}

func registerStaffRoutes(mux *http.ServeMux, svcs RouterServices) {
	// Staff sessions ride in cookies, so every state-changing /api route
	// additionally requires the double-submit CSRF header.
	csrf := CSRFProtection(CSRFConfig{CookieDomain: svcs.CookieDomain})
	staff := RequireAuth(svcs.Auth)
	adminRole := RequireRole(svcs.Auth, domainauth.RoleAdmin)
	admin := func(h http.Handler) http.Handler { return adminRole(csrf(h)) }

	handle := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, staff(csrf(h)))
	}

	handle("POST /api/issues", svcs.Issues.Create)
	handle("GET /api/issues", svcs.Issues.List)
	handle("GET /api/issues/{id}", svcs.Issues.GetByID)
	handle("PUT /api/issues/{id}", svcs.Issues.Update)
	handle("DELETE /api/issues/{id}", svcs.Issues.Delete)
	handle("POST /api/issues/{id}/publish", svcs.Issues.PublishIssue)
	handle("POST /api/issues/{id}/unpublish", svcs.Issues.UnpublishIssue)
	handle("POST /api/issues/{id}/invite", svcs.Issues.Invite)

	handle("POST /api/rfps", svcs.RFPs.Create)
	handle("GET /api/rfps", svcs.RFPs.List)
	handle("GET /api/rfps/{id}", svcs.RFPs.GetByID)
	handle("PUT /api/rfps/{id}", svcs.RFPs.Update)
	handle("DELETE /api/rfps/{id}", svcs.RFPs.Delete)
	handle("POST /api/rfps/{id}/publish", svcs.RFPs.PublishRFP)
	handle("POST /api/rfps/{id}/unpublish", svcs.RFPs.UnpublishRFP)
	handle("POST /api/rfps/{id}/invite", svcs.RFPs.Invite)

	handle("POST /api/customers", svcs.Customers.Create)
	handle("GET /api/customers", svcs.Customers.List)
	handle("GET /api/customers/{id}", svcs.Customers.GetByID)
	handle("PUT /api/customers/{id}", svcs.Customers.Update)
	handle("DELETE /api/customers/{id}", svcs.Customers.Delete)

	handle("POST /api/vendors", svcs.Vendors.Create)
	handle("GET /api/vendors", svcs.Vendors.List)
	handle("GET /api/vendors/{id}", svcs.Vendors.GetByID)
	handle("PUT /api/vendors/{id}", svcs.Vendors.Update)
	handle("DELETE /api/vendors/{id}", svcs.Vendors.Delete)

	handle("POST /api/invoices", svcs.Invoices.Create)
	handle("GET /api/invoices", svcs.Invoices.List)
	handle("GET /api/invoices/{id}", svcs.Invoices.GetByID)
	handle("PUT /api/invoices/{id}", svcs.Invoices.Update)
	handle("DELETE /api/invoices/{id}", svcs.Invoices.Delete)

	// Webhook sinks carry outbound secrets, so management is admin-only.
	mux.Handle("POST /api/webhooks", admin(http.HandlerFunc(svcs.Webhooks.Create)))
	mux.Handle("GET /api/webhooks", admin(http.HandlerFunc(svcs.Webhooks.List)))
	mux.Handle("GET /api/webhooks/{id}", admin(http.HandlerFunc(svcs.Webhooks.GetByID)))
	mux.Handle("PATCH /api/webhooks/{id}", admin(http.HandlerFunc(svcs.Webhooks.SetEnabled)))
	mux.Handle("DELETE /api/webhooks/{id}", admin(http.HandlerFunc(svcs.Webhooks.Delete)))
}

func registerPortalRoutes(mux *http.ServeMux, svcs RouterServices) {
	open := OptionalAuth(svcs.Auth)

	handle := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, open(h))
	}

	handle("POST /portal/issues/{slug}/verify", svcs.Portal.VerifyIssue)
	handle("GET /portal/issues/{slug}/auth-check", svcs.Portal.AuthCheckIssue)
	handle("POST /portal/issues/{slug}/chat", svcs.Portal.ChatIssue)

	handle("POST /portal/rfps/{slug}/verify", svcs.Portal.VerifyRFP)
	handle("GET /portal/rfps/{slug}/auth-check", svcs.Portal.AuthCheckRFP)
	handle("POST /portal/rfps/{slug}/chat", svcs.Portal.ChatRFP)
}
