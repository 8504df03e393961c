package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	postgresConnectAttempts = 10
	postgresRetryDelay      = 2 * time.Second
)

// ConnectPostgres opens a gorm connection, retrying while the database starts up.
func ConnectPostgres(dsn string) (*gorm.DB, error) {
	var lastErr error
	for i := 0; i < postgresConnectAttempts; i++ {
		log.Printf("[database][postgres] connection attempt=%d", i+1)
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
		if err == nil {
			log.Printf("[database][postgres] connected")
			return db, nil
		}
		lastErr = err
		log.Printf("[database][postgres] connection attempt=%d failed err=%v", i+1, err)
		time.Sleep(postgresRetryDelay)
	}
	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", postgresConnectAttempts, lastErr)
}
