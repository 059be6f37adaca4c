package queries

import (
	"github.com/google/uuid"
)

// AuthorizedUserView represents read-optimized user data for a signed-in session
type AuthorizedUserView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// CustomerOption is one entry of the customer select on invoice forms
type CustomerOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// InvoiceRecord is a stored invoice as the edit form needs it
type InvoiceRecord struct {
	ID          string
	CustomerID  string
	AmountCents int64
	Status      string
}

// InvoiceListItem is a row of the filtered invoices table
type InvoiceListItem struct {
	ID          string
	CustomerID  string
	Name        string
	Email       string
	ImageURL    string
	AmountCents int64
	Date        string
	Status      string
}

// LatestInvoice is a row of the dashboard's latest invoices card
type LatestInvoice struct {
	ID          string
	Name        string
	Email       string
	ImageURL    string
	AmountCents int64
}

type CardData struct {
	NumberOfInvoices  int64
	NumberOfCustomers int64
	TotalPaidCents    int64
	TotalPendingCents int64
}
