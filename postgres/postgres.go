// Package postgres implements the persistent bar archive.
package postgres

import (
	"context"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgtype"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/lukasz-zimnoch/chartist"
)

type Config struct {
	Address      string
	User         string
	Password     string
	Name         string
	SSLMode      string
	MigrationDir string
}

func (c *Config) connectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		c.User,
		c.Password,
		c.Address,
		c.Name,
		c.SSLMode,
	)
}

type Client struct {
	database *sqlx.DB
}

func NewClient(ctx context.Context, config *Config) (*Client, error) {
	database, err := sqlx.Connect("pgx", config.connectionString())
	if err != nil {
		return nil, fmt.Errorf("could not connect database: [%v]", err)
	}

	go func() {
		<-ctx.Done()
		_ = database.Close()
	}()

	return &Client{database: database}, nil
}

func (c *Client) instance() *sqlx.DB {
	return c.database
}

func RunMigration(logger chartist.Logger, config *Config) error {
	if len(config.MigrationDir) == 0 {
		logger.Infof("database migration disabled")
		return nil
	}

	logger.Infof("starting database migration")

	migration, err := migrate.New(
		"file://"+config.MigrationDir,
		config.connectionString(),
	)
	if err != nil {
		return err
	}

	err = migration.Up()
	if err != nil {
		if err == migrate.ErrNoChange {
			logger.Infof("database migration skipped as there are no changes")
			return nil
		}

		return err
	}

	logger.Infof("database migration performed successfully")

	return nil
}

func floatToNumeric(value float64) (pgtype.Numeric, error) {
	var result pgtype.Numeric

	if err := result.Set(value); err != nil {
		return pgtype.Numeric{}, err
	}

	return result, nil
}

func numericToFloat(value pgtype.Numeric) (float64, error) {
	var result float64

	if err := value.AssignTo(&result); err != nil {
		return 0, err
	}

	return result, nil
}
