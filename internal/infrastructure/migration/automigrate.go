package migration

import (
	"athenaeum/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every persisted model in dependency order:
// users and books before the loan tables that reference them.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.BookModel{},
		&models.LoanModel{},
		&models.LoanDetailModel{},
		&models.LoanDetailTempModel{},
	}
}
