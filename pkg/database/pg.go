package database

import (
	"fmt"
	"log"
	"sync"

	"github.com/pathfinder/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	db          *gorm.DB
	err         error
	client_once sync.Once
)

func InitDB(dbc config.Database) {
	client_once.Do(func() {
		db, err = Open(dbc)
		if err != nil {
			log.Printf("[error] failed to initialize database, got error %v", err)
			panic(err)
		}

		// Get the underlying SQL database connection to execute raw SQL
		sqlDB, err := db.DB()
		if err != nil {
			log.Printf("[error] failed to get underlying database connection: %v", err)
			panic(err)
		}

		// Test the connection
		if err := sqlDB.Ping(); err != nil {
			log.Printf("[error] failed to ping database: %v", err)
			panic(err)
		}

		log.Printf("[info] database connection established successfully (%s)", dbc.Driver)

		// Run migrations
		if err := AutoMigrate(db); err != nil {
			log.Printf("Migration failed: %v", err)
			panic(err)
		}

		log.Printf("[info] database migrations completed successfully")
	})
}

// Open connects to the configured driver without migrating.
func Open(dbc config.Database) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: false,
		Logger:                                   logger.Default.LogMode(logger.Warn),
	}

	switch dbc.Driver {
	case "", "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", dbc.Host, dbc.Port, dbc.User, dbc.Pass, dbc.Name)
		return gorm.Open(
			postgres.New(
				postgres.Config{
					DSN:                  dsn,
					PreferSimpleProtocol: true,
				},
			),
			gormConfig,
		)
	case "sqlite":
		return OpenSQLite(dbc.Path, gormConfig)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", dbc.Driver)
	}
}

func DBClient() *gorm.DB {
	if db == nil {
		log.Panic("Database is not initialized. Call InitDB first.")
	}
	return db
}
