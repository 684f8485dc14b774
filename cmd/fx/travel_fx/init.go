package travel_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"tabi/internal/api/controllers"
	dbm "tabi/internal/models/db_models"
	"tabi/internal/repositories"
	"tabi/internal/services"
)

var Module = fx.Options(
	fx.Provide(
		provideTravelRepo,
		fx.Annotate(
			services.NewTravelService,
			fx.ParamTags(``, `group:"travel_cascade"`),
		),
	),
	tripItem[dbm.Schedule]("schedules"),
	tripItem[dbm.Place]("places"),
	tripItem[dbm.Budget]("budgets"),
	tripItem[dbm.RoomAssignment]("room-assignments"),
	tripItem[dbm.Member]("members"),
	tripItem[dbm.Note]("notes"),
	tripItem[dbm.PackingItem]("packing-items"),
)

func provideTravelRepo(db *gorm.DB) repositories.TravelRepository {
	if db == nil {
		return repositories.NewMemoryTravelRepository()
	}
	return repositories.NewTravelRepository(db)
}

// tripItem wires the repository, cascade and routes of one trip-item
// resource.
func tripItem[T any, P repositories.TripItemPtr[T]](resource string) fx.Option {
	return fx.Provide(
		func(db *gorm.DB) repositories.TripItemRepository[T, P] {
			if db == nil {
				return repositories.NewMemoryTripItemRepository[T, P]()
			}
			return repositories.NewTripItemRepository[T, P](db)
		},
		fx.Annotate(
			func(repo repositories.TripItemRepository[T, P]) repositories.TravelCascade {
				return repo
			},
			fx.ResultTags(`group:"travel_cascade"`),
		),
		fx.Annotate(
			func(
				travels services.TravelServiceInterface,
				repo repositories.TripItemRepository[T, P],
				logger *zap.Logger,
			) controllers.TripItemRoutes {
				service := services.NewTripItemService(travels, repo, logger)
				return controllers.NewTripItemController(resource, service)
			},
			fx.ResultTags(`group:"trip_item_routes"`),
		),
	)
}
