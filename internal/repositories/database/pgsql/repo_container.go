package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/paydesk/compchange/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgsql repository onto one connection pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ChangeRepo:   NewChangeRepository(pool),
		CatalogRepo:  NewCatalogRepository(pool),
		EmployeeRepo: NewEmployeeRepository(pool),
		UserRepo:     NewUserRepository(pool),
	}
}
