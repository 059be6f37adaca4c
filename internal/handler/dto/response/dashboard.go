package response

import (
	"invoice-dashboard/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type CardsResponse struct {
	NumberOfInvoices  int64  `json:"numberOfInvoices"`
	NumberOfCustomers int64  `json:"numberOfCustomers"`
	TotalPaid         string `json:"totalPaidInvoices"`
	TotalPending      string `json:"totalPendingInvoices"`
}

type LatestInvoiceResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
	Amount   string `json:"amount"`
}

type DashboardResponse struct {
	User           *UserResponse            `json:"user,omitempty"`
	Cards          CardsResponse            `json:"cards"`
	LatestInvoices []*LatestInvoiceResponse `json:"latestInvoices"`
}

func FromDashboardView(v *queries.DashboardView, u *queries.AuthorizedUserView) (*DashboardResponse, error) {
	res := &DashboardResponse{}
	if err := copier.CopyWithOption(res, v, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	if u != nil {
		res.User = &UserResponse{}
		if err := copier.Copy(res.User, u); err != nil {
			return nil, err
		}
	}
	return res, nil
}
