package components

import (
	"invoice-dashboard/internal/infra/connection"
	"invoice-dashboard/internal/infra/db"
	"invoice-dashboard/internal/infra/identity"
	"invoice-dashboard/internal/infra/readstore"
	"invoice-dashboard/internal/pkg/jwt"
	"invoice-dashboard/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	writeModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewInvoiceReadStore,
			fx.As(new(queries.InvoiceReadStore)),
		),
		fx.Annotate(
			readstore.NewCustomerReadStore,
			fx.As(new(queries.CustomerReadStore)),
		),
		fx.Annotate(
			readstore.NewDashboardReadStore,
			fx.As(new(queries.DashboardReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

// Mutations acquire their own pooled connection per request.
var writeModule = fx.Module("persistence/write",
	fx.Provide(
		connection.NewPostgresDatabase,
		func(s *jwt.Service) identity.TokenIssuer { return s },
		identity.NewCredentialsProvider,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
