package shared

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

const CONFIG_PREFIX = "SAVEKID"

type AppConfig struct {
	ListenAddress string `split_words:"true" default:"0.0.0.0:8082"`

	PgUsername             string `split_words:"true" default:"postgres"`
	PgPassword             string `split_words:"true" default:"postgres"`
	PgContactPoint         string `split_words:"true" default:"127.0.0.1"`
	PgContactPort          string `split_words:"true" default:"5432"`
	PgDbName               string `split_words:"true" default:"savekid"`
	SqlMigrationsSourceDir string `split_words:"true" default:"./sql"`
	StartupMigration       bool   `split_words:"true" default:"false"`

	LogSql bool `split_words:"true" default:"false"`
}

func InitAppConfiguration() (config *AppConfig, err error) {
	config = &AppConfig{}

	if err := envconfig.Process(CONFIG_PREFIX, config); err != nil {
		return nil, fmt.Errorf("failed to parse env vars: %v", err)
	}

	return
}

func (c *AppConfig) ConnectString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.PgContactPoint,
		c.PgContactPort,
		c.PgUsername,
		c.PgPassword,
		c.PgDbName)
}

func (c *AppConfig) DatabaseURL() string {
	return fmt.Sprintf("postgres://%v:%v/%v?sslmode=disable&user=%s&password=%s",
		c.PgContactPoint, c.PgContactPort, c.PgDbName, c.PgUsername, c.PgPassword)
}
