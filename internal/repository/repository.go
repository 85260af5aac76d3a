package repository

import (
	"context"
	"database/sql"
	"time"

	"carboncalc/internal/models"
	"carboncalc/internal/repository/db"
)

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.User, error)
}

// CalculationRepo is the append-only store of completed calculations.
type CalculationRepo interface {
	Append(ctx context.Context, rec models.CalculationRecord) error
	List(ctx context.Context, from, to time.Time) ([]models.CalculationRecord, error)
	Latest(ctx context.Context) (models.CalculationRecord, error)
}

type Repository struct {
	Calculations CalculationRepo
	Auth         Authorization
}

func NewRepository(sqlDB *sql.DB) *Repository {
	return &Repository{
		Calculations: NewCalculationSQLite(sqlDB),
		Auth:         NewUserRepository(sqlDB),
	}
}

// InitDB opens the SQLite file and bootstraps the schema.
func InitDB(path string) (*sql.DB, error) {
	return db.InitDB(path)
}
