package config

import (
	"strings"

	"github.com/SeakMengs/CertVerify/internal/env"
)

type Config struct {
	Port string
	ENV  string
	// FrontendURL is the public verification page, used for QR code links.
	FrontendURL string
	DB          DatabaseConfig
	CORS        CORSConfig
	Startup     StartupConfig
}

type DatabaseConfig struct {
	DB_HOST      string
	DB_PORT      string
	DB_DATABASE  string
	DB_USERNAME  string
	DB_PASSWORD  string
	DB_SSLMODE   string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  string
}

type CORSConfig struct {
	AllowOrigins []string
}

type StartupConfig struct {
	// AutoMigrate runs the schema migration before serving.
	AutoMigrate bool
	// Seed inserts the sample certificates when the table is empty.
	Seed bool
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.ENV, "production")
}

func GetConfig() Config {
	return Config{
		Port:        env.GetString("PORT", "8080"),
		ENV:         env.GetString("ENV", "development"),
		FrontendURL: strings.TrimRight(env.GetString("FRONTEND_URL", "http://localhost:5173"), "/"),
		DB: DatabaseConfig{
			DB_HOST:      env.GetString("DB_HOST", "127.0.0.1"),
			DB_PORT:      env.GetString("DB_PORT", "5432"),
			DB_USERNAME:  env.GetString("DB_USERNAME", "root"),
			DB_PASSWORD:  env.GetString("DB_PASSWORD", ""),
			DB_DATABASE:  env.GetString("DB_DATABASE", "certverify"),
			DB_SSLMODE:   env.GetString("DB_SSLMODE", "disable"),
			MaxOpenConns: env.GetInt("DB_MAX_OPEN_CONNS", 30),
			MaxIdleConns: env.GetInt("DB_MAX_IDLE_CONNS", 30),
			MaxIdleTime:  env.GetString("DB_MAX_IDLE_TIME", "15m"),
		},
		CORS: CORSConfig{
			AllowOrigins: env.GetStrings("CORS_ALLOW_ORIGINS", []string{"*"}),
		},
		Startup: StartupConfig{
			AutoMigrate: env.GetBool("DB_AUTO_MIGRATE", true),
			Seed:        env.GetBool("SEED_ON_START", true),
		},
	}
}
