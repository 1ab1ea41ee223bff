package database

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"starblog/internal/domain"
)

// DefaultSQLitePath is used when no DATABASE_URL is configured.
const DefaultSQLitePath = "/tmp/test.db"

type Options struct {
	// Silent disables gorm's SQL logging.
	Silent bool
}

func IsPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// Connect opens PostgreSQL for postgres URLs and SQLite (pure Go driver) for
// anything else. An empty dsn selects DefaultSQLitePath.
func Connect(dsn string, opts ...Options) (*gorm.DB, error) {
	cfg := &gorm.Config{}
	for _, o := range opts {
		if o.Silent {
			cfg.Logger = gormlogger.Default.LogMode(gormlogger.Silent)
		}
	}

	if IsPostgres(dsn) {
		log.Info().Msg("connecting to PostgreSQL")
		cfg.TranslateError = true
		return gorm.Open(postgres.Open(dsn), cfg)
	}

	if dsn == "" {
		dsn = DefaultSQLitePath
	}
	log.Info().Str("dsn", dsn).Msg("using SQLite")

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		cfg,
	)
}

// Migrate creates or updates every table the API uses.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(domain.Models()...)
}

func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
