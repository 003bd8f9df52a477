package testutil

import (
	"time"

	"github.com/stackfall/workdesk/internal/domain/model"
)

// IssueRequestBuilder provides a fluent interface for building CreateIssueRequest objects for testing.
type IssueRequestBuilder struct {
	req *model.CreateIssueRequest
}

// NewIssueRequest creates a new IssueRequestBuilder with sensible defaults.
func NewIssueRequest() *IssueRequestBuilder {
	return &IssueRequestBuilder{
		req: &model.CreateIssueRequest{
			Title:  "Checkout page intermittently times out",
			Body:   "Customer reports sporadic 504s during checkout.",
			Status: model.IssueStatusOpen,
		},
	}
}

// WithTitle sets the issue title.
func (b *IssueRequestBuilder) WithTitle(title string) *IssueRequestBuilder {
	b.req.Title = title
	return b
}

// WithBody sets the issue body.
func (b *IssueRequestBuilder) WithBody(body string) *IssueRequestBuilder {
	b.req.Body = body
	return b
}

// WithStatus sets the issue status.
func (b *IssueRequestBuilder) WithStatus(status model.IssueStatus) *IssueRequestBuilder {
	b.req.Status = status
	return b
}

// WithCustomerID sets the related customer.
func (b *IssueRequestBuilder) WithCustomerID(id string) *IssueRequestBuilder {
	b.req.CustomerID = &id
	return b
}

// WithAssigneeID sets the assigned staff member.
func (b *IssueRequestBuilder) WithAssigneeID(id string) *IssueRequestBuilder {
	b.req.AssigneeID = &id
	return b
}

// Build returns the constructed request.
func (b *IssueRequestBuilder) Build() *model.CreateIssueRequest {
	return b.req
}

// RFPRequestBuilder provides a fluent interface for building CreateRFPRequest objects for testing.
type RFPRequestBuilder struct {
	req *model.CreateRFPRequest
}

// NewRFPRequest creates a new RFPRequestBuilder with sensible defaults.
func NewRFPRequest() *RFPRequestBuilder {
	return &RFPRequestBuilder{
		req: &model.CreateRFPRequest{
			Title:       "Warehouse shelving refit",
			Description: "Seeking quotes for a full shelving refit of the rear warehouse.",
			Status:      model.RFPStatusOpen,
		},
	}
}

// WithTitle sets the RFP title.
func (b *RFPRequestBuilder) WithTitle(title string) *RFPRequestBuilder {
	b.req.Title = title
	return b
}

// WithDescription sets the RFP description.
func (b *RFPRequestBuilder) WithDescription(desc string) *RFPRequestBuilder {
	b.req.Description = desc
	return b
}

// WithStatus sets the RFP status.
func (b *RFPRequestBuilder) WithStatus(status model.RFPStatus) *RFPRequestBuilder {
	b.req.Status = status
	return b
}

// WithOwnerID sets the owning staff member.
func (b *RFPRequestBuilder) WithOwnerID(id string) *RFPRequestBuilder {
	b.req.OwnerID = &id
	return b
}

// Build returns the constructed request.
func (b *RFPRequestBuilder) Build() *model.CreateRFPRequest {
	return b.req
}

// CustomerRequestBuilder provides a fluent interface for building CreateCustomerRequest objects for testing.
type CustomerRequestBuilder struct {
	req *model.CreateCustomerRequest
}

// NewCustomerRequest creates a new CustomerRequestBuilder with sensible defaults.
func NewCustomerRequest() *CustomerRequestBuilder {
	return &CustomerRequestBuilder{
		req: &model.CreateCustomerRequest{
			Name:    "Avery Lane",
			Email:   "avery@lane-goods.example",
			Company: "Lane Goods",
		},
	}
}

// WithName sets the customer name.
func (b *CustomerRequestBuilder) WithName(name string) *CustomerRequestBuilder {
	b.req.Name = name
	return b
}

// WithEmail sets the customer email.
func (b *CustomerRequestBuilder) WithEmail(email string) *CustomerRequestBuilder {
	b.req.Email = email
	return b
}

// WithCompany sets the customer company.
func (b *CustomerRequestBuilder) WithCompany(company string) *CustomerRequestBuilder {
	b.req.Company = company
	return b
}

// Build returns the constructed request.
func (b *CustomerRequestBuilder) Build() *model.CreateCustomerRequest {
	return b.req
}

// VendorRequestBuilder provides a fluent interface for building CreateVendorRequest objects for testing.
type VendorRequestBuilder struct {
	req *model.CreateVendorRequest
}

// NewVendorRequest creates a new VendorRequestBuilder with sensible defaults.
func NewVendorRequest() *VendorRequestBuilder {
	return &VendorRequestBuilder{
		req: &model.CreateVendorRequest{
			Name:         "Hartwell Fittings",
			ContactEmail: "sales@hartwell.example",
		},
	}
}

// WithName sets the vendor name.
func (b *VendorRequestBuilder) WithName(name string) *VendorRequestBuilder {
	b.req.Name = name
	return b
}

// WithContactEmail sets the vendor contact email.
func (b *VendorRequestBuilder) WithContactEmail(email string) *VendorRequestBuilder {
	b.req.ContactEmail = email
	return b
}

// WithNotes sets the vendor notes.
func (b *VendorRequestBuilder) WithNotes(notes string) *VendorRequestBuilder {
	b.req.Notes = notes
	return b
}

// Build returns the constructed request.
func (b *VendorRequestBuilder) Build() *model.CreateVendorRequest {
	return b.req
}

// InvoiceRequestBuilder provides a fluent interface for building CreateInvoiceRequest objects for testing.
type InvoiceRequestBuilder struct {
	req *model.CreateInvoiceRequest
}

// NewInvoiceRequest creates a new InvoiceRequestBuilder with sensible defaults.
// A customer ID must be supplied since invoices always belong to a customer.
func NewInvoiceRequest(customerID string) *InvoiceRequestBuilder {
	return &InvoiceRequestBuilder{
		req: &model.CreateInvoiceRequest{
			CustomerID:  customerID,
			Number:      "INV-0001",
			AmountCents: 125000,
			Currency:    "USD",
			Status:      model.InvoiceStatusDraft,
		},
	}
}

// WithNumber sets the invoice number.
func (b *InvoiceRequestBuilder) WithNumber(number string) *InvoiceRequestBuilder {
	b.req.Number = number
	return b
}

// WithAmountCents sets the invoice amount.
func (b *InvoiceRequestBuilder) WithAmountCents(amount int64) *InvoiceRequestBuilder {
	b.req.AmountCents = amount
	return b
}

// WithStatus sets the invoice status.
func (b *InvoiceRequestBuilder) WithStatus(status model.InvoiceStatus) *InvoiceRequestBuilder {
	b.req.Status = status
	return b
}

// WithDueDate sets the invoice due date.
func (b *InvoiceRequestBuilder) WithDueDate(due time.Time) *InvoiceRequestBuilder {
	b.req.DueDate = &due
	return b
}

// Build returns the constructed request.
func (b *InvoiceRequestBuilder) Build() *model.CreateInvoiceRequest {
	return b.req
}

// WebhookSinkRequestBuilder provides a fluent interface for building CreateWebhookSinkRequest objects for testing.
type WebhookSinkRequestBuilder struct {
	req *model.CreateWebhookSinkRequest
}

// NewWebhookSinkRequest creates a new WebhookSinkRequestBuilder with sensible defaults.
func NewWebhookSinkRequest() *WebhookSinkRequestBuilder {
	return &WebhookSinkRequestBuilder{
		req: &model.CreateWebhookSinkRequest{
			Name:  "ops-notifications",
			URL:   "https://hooks.example.com/workdesk",
			Event: model.WebhookEventIssuePublished,
		},
	}
}

// WithName sets the sink name.
func (b *WebhookSinkRequestBuilder) WithName(name string) *WebhookSinkRequestBuilder {
	b.req.Name = name
	return b
}

// WithURL sets the sink URL.
func (b *WebhookSinkRequestBuilder) WithURL(url string) *WebhookSinkRequestBuilder {
	b.req.URL = url
	return b
}

// WithEvent sets the subscribed event.
func (b *WebhookSinkRequestBuilder) WithEvent(event model.WebhookEvent) *WebhookSinkRequestBuilder {
	b.req.Event = event
	return b
}

// WithSelector sets the JMESPath selector.
func (b *WebhookSinkRequestBuilder) WithSelector(selector string) *WebhookSinkRequestBuilder {
	b.req.Selector = &selector
	return b
}

// Build returns the constructed request.
func (b *WebhookSinkRequestBuilder) Build() *model.CreateWebhookSinkRequest {
	return b.req
}
