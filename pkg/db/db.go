package db

import (
	"casino-engine/internal/config"
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/sirupsen/logrus"

	_ "github.com/golang-migrate/migrate/v4/source/file" // needed
	_ "github.com/lib/pq"                                // postgres driver
)

var instance *sql.DB

// Instance returns a database instance
// It panics if the database can't be reached
func Instance() *sql.DB {
	if instance == nil {
		if err := LoadInstance(); err != nil {
			panic(err)
		}
	}

	return instance
}

// LoadInstance will connect to the database in the configuration
func LoadInstance() error {
	db, err := sql.Open("postgres", config.Instance().PGDSN)
	if err != nil {
		return err
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return err
	}

	instance = db
	return nil
}

// Migrate runs the migrations
func Migrate() error {
	migrationsPath := config.Instance().MigrationsPath
	logrus.WithField("migrationsPath", migrationsPath).Info("running migrations")

	driver, err := postgres.WithInstance(Instance(), &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", migrationsPath), "postgres", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}

// Scanner is an interface that sql should've provided
// No snark here...
type Scanner interface {
	Scan(...interface{}) error
}
