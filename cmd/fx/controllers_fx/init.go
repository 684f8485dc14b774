package controllers_fx

import (
	"go.uber.org/fx"
	"tabi/internal/api/controllers"
	"tabi/internal/services"
)

var Module = fx.Options(
	fx.Provide(services.NewTemplateService),
	fx.Provide(controllers.NewPlannerController),
	fx.Provide(controllers.NewTravelController),
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewTemplateController))
