package invoice

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// FormInput holds the raw string values of an invoice form submission.
type FormInput struct {
	ID         string
	CustomerID string
	Amount     string
	Status     string
	Date       string
}

// record is the validated shape of a full invoice row.
type record struct {
	ID         string          `form:"id" validate:"required"`
	CustomerID string          `form:"customerId" validate:"required"`
	Amount     decimal.Decimal `form:"amount" validate:"gt=0"`
	Status     string          `form:"status" validate:"oneof=pending paid"`
	Date       string          `form:"date" validate:"required"`
}

var structFields = map[string]string{
	FieldID:         "ID",
	FieldCustomerID: "CustomerID",
	FieldAmount:     "Amount",
	FieldStatus:     "Status",
	FieldDate:       "Date",
}

var messages = map[string]string{
	FieldCustomerID: MsgSelectCustomer,
	FieldAmount:     MsgAmountPositive,
	FieldStatus:     MsgSelectStatus,
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// gt=0 on an amount checks its storable cents
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return storableCents(d)
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// Schema validates invoice form input, skipping any omitted fields.
type Schema struct {
	omitted []string
}

var FormSchema = Schema{}

var (
	CreateInvoice = FormSchema.Omit(FieldID, FieldDate)
	UpdateInvoice = FormSchema.Omit(FieldID, FieldDate)
)

// Omit derives a schema that no longer checks the named form fields.
// It panics on a field the form does not have.
func (s Schema) Omit(fields ...string) Schema {
	omitted := append([]string(nil), s.omitted...)
	for _, f := range fields {
		name, ok := structFields[f]
		if !ok {
			panic("invoice: unknown form field " + f)
		}
		omitted = append(omitted, name)
	}
	return Schema{omitted: omitted}
}

// Omits reports whether the form field is excluded from the schema.
func (s Schema) Omits(field string) bool {
	name := structFields[field]
	for _, o := range s.omitted {
		if o == name {
			return true
		}
	}
	return false
}

// Draft is validated form data. Omitted fields are left empty.
type Draft struct {
	ID         string
	CustomerID string
	Amount     Amount
	Status     Status
	Date       string
}

type ValidationResult struct {
	Success bool
	Data    Draft
	Error   *FormError
}

// FormError carries the per-field messages of a failed validation.
type FormError struct {
	Fields map[string][]string
}

func (e *FormError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "invalid invoice form: " + strings.Join(names, ", ")
}

// SafeParse validates in without side effects.
func (s Schema) SafeParse(in FormInput) ValidationResult {
	rec := record{
		ID:         strings.TrimSpace(in.ID),
		CustomerID: strings.TrimSpace(in.CustomerID),
		Amount:     coerceAmount(in.Amount),
		Status:     strings.TrimSpace(in.Status),
		Date:       strings.TrimSpace(in.Date),
	}

	var err error
	if len(s.omitted) > 0 {
		err = validate.StructExcept(rec, s.omitted...)
	} else {
		err = validate.Struct(rec)
	}
	if err != nil {
		return ValidationResult{Error: toFormError(err)}
	}

	draft := Draft{
		CustomerID: rec.CustomerID,
		Amount:     Amount{value: rec.Amount},
		Status:     Status(rec.Status),
	}
	if !s.Omits(FieldID) {
		draft.ID = rec.ID
	}
	if !s.Omits(FieldDate) {
		draft.Date = rec.Date
	}
	return ValidationResult{Success: true, Data: draft}
}

func toFormError(err error) *FormError {
	fe := &FormError{Fields: map[string][]string{}}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fe.Fields["_form"] = []string{err.Error()}
		return fe
	}
	for _, v := range verrs {
		field := v.Field()
		msg, ok := messages[field]
		if !ok {
			msg = "Invalid " + field + "."
		}
		fe.Fields[field] = append(fe.Fields[field], msg)
	}
	return fe
}
