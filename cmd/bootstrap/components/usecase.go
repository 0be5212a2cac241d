package components

import (
	"log/slog"
	"time"

	"peer-tutor-scheduler/internal/pkg/clock"
	"peer-tutor-scheduler/internal/pkg/config"
	"peer-tutor-scheduler/internal/pkg/idgen"
	"peer-tutor-scheduler/internal/usecase"
	"peer-tutor-scheduler/internal/usecase/commands"
	"peer-tutor-scheduler/internal/usecase/queries"
	"peer-tutor-scheduler/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	idgen.NewNanoGenerator,
	NewSettings,
	func(s commands.Settings) *time.Location {
		return s.Location
	},
	commands.NewNotifier,
	NewDeps,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewSlotCommands,
		commands.NewBookingCommands,
		commands.NewHelpRequestCommands,
		commands.NewCoordinator,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSlotQueries,
		queries.NewBookingQueries,
		queries.NewHelpRequestQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewSettings(cfg config.Config) (commands.Settings, error) {
	loc, err := cfg.Schedule.Location()
	if err != nil {
		return commands.Settings{}, err
	}
	return commands.Settings{
		Location:       loc,
		HelpRequestTTL: cfg.Schedule.HelpRequestTTL,
	}, nil
}

type depsParams struct {
	fx.In

	UoW      shared.UnitOfWork
	Users    shared.UserDirectory
	IDs      idgen.Generator
	Clock    clock.Clock
	Settings commands.Settings
	Notifier *commands.Notifier
	Logger   *slog.Logger
}

func NewDeps(p depsParams) commands.Deps {
	return commands.Deps{
		UoW:      p.UoW,
		Users:    p.Users,
		IDs:      p.IDs,
		Clock:    p.Clock,
		Settings: p.Settings,
		Notifier: p.Notifier,
		Logger:   p.Logger,
	}
}
