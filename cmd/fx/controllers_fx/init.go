package controllers_fx

import (
	"go.uber.org/fx"
	"tripmate/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewAccountController,
	controllers.NewLocationsController,
	controllers.NewPlanController,
	controllers.NewItineraryController,
	controllers.NewBudgetController,
	controllers.NewSearchController,
)
