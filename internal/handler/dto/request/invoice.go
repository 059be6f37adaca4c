package request

import (
	"bytes"
	"encoding/json"

	"invoice-dashboard/internal/usecase/commands"
)

// InvoiceForm is bound from the create and edit forms. Fields are kept raw;
// validation happens in the invoice schema.
type InvoiceForm struct {
	CustomerID string     `form:"customerId" json:"customerId"`
	Amount     FormAmount `form:"amount" json:"amount"`
	Status     string     `form:"status" json:"status"`
}

func (r InvoiceForm) ToCommand() commands.InvoiceForm {
	return commands.InvoiceForm{
		CustomerID: r.CustomerID,
		Amount:     string(r.Amount),
		Status:     r.Status,
	}
}

// FormAmount is the raw amount text. JSON bodies may send it either as a
// string or as a number literal, which is kept digit for digit.
type FormAmount string

func (a *FormAmount) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*a = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = FormAmount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*a = FormAmount(n.String())
	return nil
}

type InvoiceListQuery struct {
	Query string `form:"query"`
	Page  int    `form:"page"`
}
