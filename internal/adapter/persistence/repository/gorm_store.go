package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"voltflow_crm/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type txKey struct{}

// GormTransactor opens a gorm transaction and hands it to the repositories
// through the context.
type GormTransactor struct {
	db *gorm.DB
}

var _ interfaces.ITransactor = (*GormTransactor)(nil)

func NewGormTransactor(db *gorm.DB) *GormTransactor {
	return &GormTransactor{db: db}
}

// WithinTransaction joins an already open transaction instead of nesting one.
func (t *GormTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// conn returns the transaction bound to ctx, or db.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}

// Migrate creates or updates the entity store tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&leadRecord{},
		&clientRecord{},
		&jobRecord{},
		&quoteRecord{},
		&invoiceRecord{},
	)
}

// wrapWriteErr surfaces unique index violations as interfaces.ErrConflict.
func wrapWriteErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", interfaces.ErrConflict, err)
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key") {
		return fmt.Errorf("%w: %v", interfaces.ErrConflict, err)
	}
	return err
}

type statusCount struct {
	Status string
	N      int64
}

func countByStatus(db *gorm.DB, model any) (map[string]int64, error) {
	var rows []statusCount
	if err := db.Model(model).Select("status, count(*) as n").Group("status").Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Status] = r.N
	}
	return out, nil
}

func toStrings[S ~string](in []S) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = string(s)
	}
	return out
}
