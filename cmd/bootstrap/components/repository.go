package components

import (
	"museum-booking/internal/infra/catalogdb"
	"museum-booking/internal/infra/readstore"
	"museum-booking/internal/usecase/commands"
	"museum-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewCatalogQueries,
		NewDBTX,
		fx.Annotate(
			readstore.NewExhibitReadStore,
			fx.As(new(queries.ExhibitReadStore)),
			fx.As(new(commands.ExhibitReadStore)),
		),
	),
)

func NewCatalogQueries(_ *pgxpool.Pool) readstore.ExhibitReadQueries {
	return catalogdb.New()
}

func NewDBTX(pool *pgxpool.Pool) catalogdb.DBTX {
	return pool
}
