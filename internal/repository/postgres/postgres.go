package postgres

import (
	"fmt"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/pkg/errors"

	"github.com/TukaHeba/Optional-Task6/internal/models"
)

type Config struct {
	// URL, when set, is used verbatim as the connection string and the
	// individual fields below are ignored.
	URL string

	Host     string
	Port     string
	Username string
	Password string
	DbName   string
	SslMode  string
}

// DSN returns the connection string: the URL override when present,
// otherwise a key=value DSN built from the individual fields.
func (cfg Config) DSN() string {
	if cfg.URL != "" {
		return cfg.URL
	}
	return fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.Username, cfg.DbName, cfg.Password, cfg.SslMode)
}

func ConnectDB(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}
	if err := db.DB().Ping(); err != nil {
		return nil, errors.Wrap(err, "ping postgres")
	}
	return db, nil
}

// Migrate creates the two tables and ties orders to customers. The foreign
// key is RESTRICT: a customer that still has orders cannot be deleted.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Customer{}, &models.Order{}).Error; err != nil {
		return errors.Wrap(err, "auto migrate")
	}
	if err := db.Model(&models.Order{}).
		AddForeignKey("customer_id", "customers(id)", "RESTRICT", "RESTRICT").Error; err != nil {
		return errors.Wrap(err, "add orders.customer_id foreign key")
	}
	return nil
}
