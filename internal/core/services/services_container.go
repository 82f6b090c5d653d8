package services

import (
	"github.com/SscSPs/accounts_movements_service/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/accounts_movements_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/accounts_movements_service/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, customers gateways.CustomerGateway, options ...ReportingServiceOption) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Reporting: NewReportingService(repos.AccountRepo, customers, options...),
	}
}
