package components

import (
	"museum-booking/internal/domain/booking"
	"museum-booking/internal/domain/schedule"
	"museum-booking/internal/pkg/clock"
	"museum-booking/internal/pkg/config"
	"museum-booking/internal/usecase/commands"
	"museum-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		booking.NewDefaultFeeCalculator,
		fx.As(new(booking.FeeCalculator)),
	),
	NewSlotGenerator,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewExhibitQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
	),
)

func NewSlotGenerator(cfg config.Config) *schedule.Generator {
	return schedule.NewGenerator(
		cfg.Schedule.OpeningHour,
		cfg.Schedule.ClosingHour,
		cfg.Schedule.SlotStep,
		cfg.Schedule.HorizonDays,
	)
}
