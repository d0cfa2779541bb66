package budget_fx

import (
	"go.uber.org/fx"
	"tripmate/internal/services"
)

var Module = fx.Provide(provideBudgetService)

func provideBudgetService() services.BudgetServiceInterface {
	return services.NewBudgetClient()
}
