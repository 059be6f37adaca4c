//go:generate mockgen -source=invoice.go -destination=../../../tests/mock/commands/invoice.go -package=commandsmock

package commands

import (
	"context"
	"log/slog"

	"invoice-dashboard/internal/domain/invoice"
	"invoice-dashboard/internal/pkg/clock"
	"invoice-dashboard/internal/pkg/errs"
	"invoice-dashboard/internal/usecase/shared"
)

const (
	PathDashboard = "/dashboard"
	PathInvoices  = "/dashboard/invoices"
)

const (
	MsgCreateMissingFields = "Missing Fields. Failed to Create Invoice."
	MsgCreateDBError       = "Database Error: Failed to Create Invoice."
	MsgUpdateMissingFields = "Missing Fields. Failed to Update Invoice."
	MsgUpdateDBError       = "Database Error: Failed to Update Invoice."
	MsgDeleteDBError       = "Database Error: Failed to Delete Invoice."
)

const (
	actionCreate = "create_invoice"
	actionUpdate = "update_invoice"
	actionDelete = "delete_invoice"
)

var ErrDeleteInvoiceFailed = errs.New("failed to delete invoice")

// InvoiceForm is the editable part of an invoice form submission.
type InvoiceForm struct {
	CustomerID string
	Amount     string
	Status     string
}

func (f InvoiceForm) toInput() invoice.FormInput {
	return invoice.FormInput{
		CustomerID: f.CustomerID,
		Amount:     f.Amount,
		Status:     f.Status,
	}
}

type InvoiceCommands interface {
	Create(ctx context.Context, form InvoiceForm) (Result, error)
	Update(ctx context.Context, id string, form InvoiceForm) (Result, error)
	// Delete fails with ErrDeleteInvoiceFailed instead of returning a state.
	Delete(ctx context.Context, id string) error
}

type invoiceCommandsImpl struct {
	db      shared.Database
	views   shared.ViewInvalidator
	clock   clock.Clock
	metrics shared.ActionMetrics
}

func NewInvoiceCommands(db shared.Database, views shared.ViewInvalidator, clk clock.Clock, metrics shared.ActionMetrics) InvoiceCommands {
	return &invoiceCommandsImpl{
		db:      db,
		views:   views,
		clock:   clk,
		metrics: metrics,
	}
}

func (uc *invoiceCommandsImpl) Create(ctx context.Context, form InvoiceForm) (Result, error) {
	parsed := invoice.CreateInvoice.SafeParse(form.toInput())
	if !parsed.Success {
		uc.metrics.ObserveMutation(actionCreate, OutcomeInvalid)
		return ActionState{Errors: parsed.Error.Fields, Message: MsgCreateMissingFields}, nil
	}

	inv, err := invoice.NewInvoice(uc.clock, parsed.Data)
	if err != nil {
		return nil, errs.Wrap(err, "build invoice")
	}

	err = uc.withConnection(ctx, func(conn shared.Connection) error {
		return conn.Invoices().Create(ctx, inv)
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		slog.Error(MsgCreateDBError, "error", err.Error())
		uc.metrics.ObserveMutation(actionCreate, OutcomeDBError)
		return ActionState{Message: MsgCreateDBError}, nil
	}

	uc.invalidate(ctx, PathInvoices, PathDashboard)
	uc.metrics.ObserveMutation(actionCreate, OutcomeSuccess)
	return RedirectTo{Path: PathInvoices}, nil
}

func (uc *invoiceCommandsImpl) Update(ctx context.Context, id string, form InvoiceForm) (Result, error) {
	parsed := invoice.UpdateInvoice.SafeParse(form.toInput())
	if !parsed.Success {
		uc.metrics.ObserveMutation(actionUpdate, OutcomeInvalid)
		return ActionState{Errors: parsed.Error.Fields, Message: MsgUpdateMissingFields}, nil
	}

	changes, err := invoice.NewChanges(id, parsed.Data)
	if err != nil {
		return nil, errs.Wrap(err, "build invoice changes")
	}

	err = uc.withConnection(ctx, func(conn shared.Connection) error {
		rows, uerr := conn.Invoices().Update(ctx, changes)
		if uerr != nil {
			return uerr
		}
		if rows == 0 {
			slog.Debug("invoice update matched no rows", "invoice_id", id)
		}
		return nil
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		slog.Error(MsgUpdateDBError, "invoice_id", id, "error", err.Error())
		uc.metrics.ObserveMutation(actionUpdate, OutcomeDBError)
		return ActionState{Message: MsgUpdateDBError}, nil
	}

	uc.invalidate(ctx, PathInvoices, PathDashboard)
	uc.metrics.ObserveMutation(actionUpdate, OutcomeSuccess)
	return RedirectTo{Path: PathInvoices}, nil
}

func (uc *invoiceCommandsImpl) Delete(ctx context.Context, id string) error {
	defer uc.invalidate(ctx, PathDashboard, PathInvoices)

	err := uc.withConnection(ctx, func(conn shared.Connection) error {
		return conn.Invoices().Delete(ctx, id)
	})
	if err != nil {
		slog.Error(MsgDeleteDBError, "invoice_id", id, "error", err.Error())
		uc.metrics.ObserveMutation(actionDelete, OutcomeDBError)
		return errs.Mark(err, ErrDeleteInvoiceFailed)
	}

	uc.metrics.ObserveMutation(actionDelete, OutcomeSuccess)
	return nil
}

// invalidate outlives the request: a client that disconnects after the
// write has committed must not leave the views stale.
func (uc *invoiceCommandsImpl) invalidate(ctx context.Context, paths ...string) {
	ctx = context.WithoutCancel(ctx)
	for _, p := range paths {
		uc.views.Invalidate(ctx, p)
	}
}

// withConnection acquires a dedicated connection for fn and releases it once.
func (uc *invoiceCommandsImpl) withConnection(ctx context.Context, fn func(conn shared.Connection) error) error {
	conn, err := uc.db.Connect(ctx)
	if err != nil {
		return errs.Wrap(err, "acquire connection")
	}
	defer conn.Release()

	return fn(conn)
}
