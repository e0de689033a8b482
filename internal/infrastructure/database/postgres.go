package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/cenkalti/backoff/v4"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectPostgres opens the entity store, retrying with exponential backoff
// until maxWait elapses.
func ConnectPostgres(ctx context.Context, dsn string, maxWait time.Duration) (*gorm.DB, error) {
	return Connect(ctx, postgres.Open(dsn), maxWait)
}

// Connect opens dialector with retries. Unique violations come back as
// gorm.ErrDuplicatedKey.
func Connect(ctx context.Context, dialector gorm.Dialector, maxWait time.Duration) (*gorm.DB, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 250 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = maxWait

	var (
		db      *gorm.DB
		attempt int
	)
	op := func() error {
		attempt++
		var err error
		db, err = gorm.Open(dialector, &gorm.Config{TranslateError: true})
		if err != nil {
			log.Printf("[database][gorm] connect attempt=%d failed err=%v", attempt, err)
			return err
		}
		return nil
	}
	if err := backoff.Retry(op, backoff.WithContext(b, ctx)); err != nil {
		return nil, fmt.Errorf("connect database after %d attempts: %w", attempt, err)
	}
	log.Printf("[database][gorm] connected attempts=%d", attempt)
	return db, nil
}
