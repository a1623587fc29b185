package services

import (
	portsrepo "github.com/paydesk/compchange/internal/core/ports/repositories"
	portssvc "github.com/paydesk/compchange/internal/core/ports/services"
	"github.com/paydesk/compchange/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Pricing has no dependencies and is needed by the change service.
	container.Pricing = NewPricingService()

	container.Catalog = NewCatalogService(repos.CatalogRepo)
	container.Employee = NewEmployeeService(repos.EmployeeRepo)
	container.Change = NewChangeService(repos.ChangeRepo, repos.EmployeeRepo, repos.CatalogRepo, container.Pricing)
	container.Message = NewMessageService(repos.ChangeRepo, repos.EmployeeRepo, repos.CatalogRepo)

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg, container.User)

	return container
}
