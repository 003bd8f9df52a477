// Package devseed populates a development database with a workspace,
// a handful of customers and vendors, open issues and RFPs, invoices,
// and a disabled example webhook sink. Seeding is idempotent: records
// are matched by their natural key (name, title, or invoice number)
// and skipped when they already exist.
package devseed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/stackfall/workdesk/internal/data"
	"github.com/stackfall/workdesk/internal/domain/model"
	"github.com/stackfall/workdesk/internal/service"
)

// Services bundles the dependencies needed for development seeding.
type Services struct {
	DB         *sql.DB
	workspaces *data.WorkspaceRepo
	customers  *service.CustomerService
	vendors    *service.VendorService
	issues     *service.IssueService
	rfps       *service.RFPService
	invoices   *service.InvoiceService
	webhooks   *service.WebhookService
}

// NewServices constructs all required services for seeding using the provided DB.
func NewServices(db *sql.DB) Services {
	return Services{
		DB:         db,
		workspaces: data.NewWorkspaceRepo(db),
		customers: service.NewCustomerService(service.CustomerServiceOptions{
			Customers: data.NewCustomerRepo(db),
		}),
		vendors: service.NewVendorService(service.VendorServiceOptions{
			Vendors: data.NewVendorRepo(db),
		}),
		issues: service.NewIssueService(service.IssueServiceOptions{
			Issues: data.NewIssueRepo(db),
		}),
		rfps: service.NewRFPService(service.RFPServiceOptions{
			RFPs: data.NewRFPRepo(db),
		}),
		invoices: service.NewInvoiceService(service.InvoiceServiceOptions{
			Invoices:  data.NewInvoiceRepo(db),
			Customers: data.NewCustomerRepo(db),
		}),
		webhooks: service.NewWebhookService(service.WebhookServiceOptions{
			Sinks: data.NewWebhookSinkRepo(db),
		}),
	}
}

// Run executes the full development seeding workflow against the provided DB.
func Run(ctx context.Context, svcs Services, workspaceName string, logger *slog.Logger) error {
	ws, err := ensureWorkspace(ctx, svcs.workspaces, workspaceName, logger)
	if err != nil {
		return fmt.Errorf("ensure workspace: %w", err)
	}

	d := seedDeps{Services: svcs, WorkspaceID: ws.ID, Logger: logger}
	failures := 0
	customersByName, f := seedCustomers(ctx, d)
	failures += f
	failures += seedVendors(ctx, d)
	failures += seedIssues(ctx, d)
	failures += seedRFPs(ctx, d)
	failures += seedInvoices(ctx, d, customersByName)
	failures += seedWebhookSinks(ctx, d)
	if failures > 0 {
		return fmt.Errorf("%d seed errors; check logs", failures)
	}
	return nil
}

type seedDeps struct {
	Services    Services
	WorkspaceID string
	Logger      *slog.Logger
}

func (d seedDeps) logResult(ctx context.Context, kind, name string, created bool) {
	if d.Logger == nil {
		return
	}
	msg := kind + " already exists"
	if created {
		msg = "created " + kind
	}
	d.Logger.InfoContext(ctx, msg, "name", name)
}

func (d seedDeps) logError(ctx context.Context, kind, name string, err error) {
	if d.Logger == nil {
		return
	}
	d.Logger.ErrorContext(ctx, "failed to create "+kind, "name", name, "error", err)
}

func ensureWorkspace(
	ctx context.Context,
	repo *data.WorkspaceRepo,
	name string,
	logger *slog.Logger,
) (*model.Workspace, error) {
	existing, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list workspaces: %w", err)
	}
	for _, ws := range existing {
		if ws.Name == name {
			return ws, nil
		}
	}
	ws, err := repo.Create(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("create workspace: %w", err)
	}
	if logger != nil {
		logger.InfoContext(ctx, "created workspace", "name", name, "id", ws.ID)
	}
	return ws, nil
}

const seedPageLimit = 100

func seedCustomers(ctx context.Context, d seedDeps) (map[string]string, int) {
	byName := map[string]string{}
	existing, err := d.Services.customers.List(ctx, d.WorkspaceID, seedPageLimit, 0)
	if err != nil {
		d.logError(ctx, "customer", "*", err)
		return byName, 1
	}
	for _, c := range existing {
		byName[c.Name] = c.ID
	}

	failures := 0
	for _, req := range defaultCustomers() {
		if _, ok := byName[req.Name]; ok {
			d.logResult(ctx, "customer", req.Name, false)
			continue
		}
		created, createErr := d.Services.customers.Create(ctx, d.WorkspaceID, req)
		if createErr != nil {
			d.logError(ctx, "customer", req.Name, createErr)
			failures++
			continue
		}
		byName[created.Name] = created.ID
		d.logResult(ctx, "customer", req.Name, true)
	}
	return byName, failures
}

func defaultCustomers() []*model.CreateCustomerRequest {
	return []*model.CreateCustomerRequest{
		{Name: "Avery Lane", Email: "avery@lane-goods.example", Company: "Lane Goods"},
		{Name: "Noor Haddad", Email: "noor@haddad-imports.example", Company: "Haddad Imports"},
		{Name: "Theo Brandt", Email: "theo@brandtworks.example", Company: "Brandtworks"},
	}
}

func seedVendors(ctx context.Context, d seedDeps) int {
	existing := map[string]bool{}
	vendors, err := d.Services.vendors.List(ctx, d.WorkspaceID, seedPageLimit, 0)
	if err != nil {
		d.logError(ctx, "vendor", "*", err)
		return 1
	}
	for _, v := range vendors {
		existing[v.Name] = true
	}

	failures := 0
	for _, req := range defaultVendors() {
		if existing[req.Name] {
			d.logResult(ctx, "vendor", req.Name, false)
			continue
		}
		if _, createErr := d.Services.vendors.Create(ctx, d.WorkspaceID, req); createErr != nil {
			d.logError(ctx, "vendor", req.Name, createErr)
			failures++
			continue
		}
		d.logResult(ctx, "vendor", req.Name, true)
	}
	return failures
}

func defaultVendors() []*model.CreateVendorRequest {
	return []*model.CreateVendorRequest{
		{Name: "Hartwell Fittings", ContactEmail: "sales@hartwell-fittings.example"},
		{Name: "Corrigan Freight", ContactEmail: "dispatch@corrigan-freight.example", Notes: "Net 45 terms"},
		{Name: "Mistral Signage", ContactEmail: "quotes@mistral-signage.example"},
	}
}

func seedIssues(ctx context.Context, d seedDeps) int {
	existing := map[string]bool{}
	issues, err := d.Services.issues.List(ctx, d.WorkspaceID, data.IssuesListOptions{Limit: seedPageLimit})
	if err != nil {
		d.logError(ctx, "issue", "*", err)
		return 1
	}
	for _, i := range issues {
		existing[i.Title] = true
	}

	failures := 0
	for _, req := range defaultIssues() {
		if existing[req.Title] {
			d.logResult(ctx, "issue", req.Title, false)
			continue
		}
		if _, createErr := d.Services.issues.Create(ctx, d.WorkspaceID, req); createErr != nil {
			d.logError(ctx, "issue", req.Title, createErr)
			failures++
			continue
		}
		d.logResult(ctx, "issue", req.Title, true)
	}
	return failures
}

func defaultIssues() []*model.CreateIssueRequest {
	return []*model.CreateIssueRequest{
		{
			Title:  "Checkout page intermittently times out",
			Body:   "Customers report the payment step hanging for 30+ seconds during evening peak.",
			Status: model.IssueStatusOpen,
		},
		{
			Title:  "Invoice PDF shows wrong tax line",
			Body:   "The VAT line doubles when an invoice has more than ten items.",
			Status: model.IssueStatusPending,
		},
		{
			Title:  "Password reset email never arrives",
			Body:   "Resolved after switching the transactional mail pool. Kept for history.",
			Status: model.IssueStatusResolved,
		},
	}
}

func seedRFPs(ctx context.Context, d seedDeps) int {
	existing := map[string]bool{}
	rfps, err := d.Services.rfps.List(ctx, d.WorkspaceID, data.RFPsListOptions{Limit: seedPageLimit})
	if err != nil {
		d.logError(ctx, "rfp", "*", err)
		return 1
	}
	for _, r := range rfps {
		existing[r.Title] = true
	}

	failures := 0
	for _, req := range defaultRFPs() {
		if existing[req.Title] {
			d.logResult(ctx, "rfp", req.Title, false)
			continue
		}
		if _, createErr := d.Services.rfps.Create(ctx, d.WorkspaceID, req); createErr != nil {
			d.logError(ctx, "rfp", req.Title, createErr)
			failures++
			continue
		}
		d.logResult(ctx, "rfp", req.Title, true)
	}
	return failures
}

func defaultRFPs() []*model.CreateRFPRequest {
	return []*model.CreateRFPRequest{
		{
			Title:       "Warehouse shelving refit",
			Description: "Replace shelving across two aisles of the central warehouse. Load rating 800kg per bay.",
			Status:      model.RFPStatusOpen,
		},
		{
			Title:       "Quarterly freight contract",
			Description: "Scheduled pallet freight between Rotterdam and Lyon, four runs per week.",
			Status:      model.RFPStatusDraft,
		},
	}
}

func seedInvoices(ctx context.Context, d seedDeps, customersByName map[string]string) int {
	existing := map[string]bool{}
	invoices, err := d.Services.invoices.List(ctx, d.WorkspaceID, data.InvoicesListOptions{Limit: seedPageLimit})
	if err != nil {
		d.logError(ctx, "invoice", "*", err)
		return 1
	}
	for _, inv := range invoices {
		existing[inv.Number] = true
	}

	customerID, ok := customersByName["Avery Lane"]
	if !ok {
		d.logError(ctx, "invoice", "*", errors.New("seed customer missing, skipping invoices"))
		return 1
	}

	failures := 0
	for _, req := range defaultInvoices(customerID) {
		if existing[req.Number] {
			d.logResult(ctx, "invoice", req.Number, false)
			continue
		}
		if _, createErr := d.Services.invoices.Create(ctx, d.WorkspaceID, req); createErr != nil {
			d.logError(ctx, "invoice", req.Number, createErr)
			failures++
			continue
		}
		d.logResult(ctx, "invoice", req.Number, true)
	}
	return failures
}

func defaultInvoices(customerID string) []*model.CreateInvoiceRequest {
	due := time.Now().AddDate(0, 1, 0).Truncate(24 * time.Hour)
	return []*model.CreateInvoiceRequest{
		{
			CustomerID:  customerID,
			Number:      "INV-0001",
			AmountCents: 125000,
			Currency:    "USD",
			Status:      model.InvoiceStatusSent,
			DueDate:     &due,
		},
		{
			CustomerID:  customerID,
			Number:      "INV-0002",
			AmountCents: 48000,
			Currency:    "USD",
			Status:      model.InvoiceStatusDraft,
		},
	}
}

func seedWebhookSinks(ctx context.Context, d seedDeps) int {
	existing := map[string]bool{}
	sinks, err := d.Services.webhooks.List(ctx, d.WorkspaceID)
	if err != nil {
		d.logError(ctx, "webhook sink", "*", err)
		return 1
	}
	for _, s := range sinks {
		existing[s.Name] = true
	}

	failures := 0
	for _, req := range defaultWebhookSinks() {
		if existing[req.Name] {
			d.logResult(ctx, "webhook sink", req.Name, false)
			continue
		}
		if _, createErr := d.Services.webhooks.Create(ctx, d.WorkspaceID, req); createErr != nil {
			d.logError(ctx, "webhook sink", req.Name, createErr)
			failures++
			continue
		}
		d.logResult(ctx, "webhook sink", req.Name, true)
	}
	return failures
}

func defaultWebhookSinks() []*model.CreateWebhookSinkRequest {
	// Disabled so a fresh dev environment never posts to a placeholder URL.
	disabled := false
	selector := "data.issue.status == 'open'"
	return []*model.CreateWebhookSinkRequest{
		{
			Name:     "ops-notifications",
			URL:      "https://hooks.example.com/services/dev/workdesk",
			Event:    model.WebhookEventIssuePublished,
			Selector: &selector,
			Enabled:  &disabled,
		},
	}
}
