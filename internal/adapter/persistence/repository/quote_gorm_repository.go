package repository

import (
	"context"
	"errors"
	"time"

	"voltflow_crm/internal/domain/entities"
	"voltflow_crm/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type QuoteGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IQuoteRepository = (*QuoteGormRepository)(nil)

func NewQuoteGormRepository(db *gorm.DB) *QuoteGormRepository {
	return &QuoteGormRepository{db: db}
}

func (r *QuoteGormRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	rec := toQuoteRecord(q)
	rec.ID = 0
	if err := conn(ctx, r.db).Create(&rec).Error; err != nil {
		return entities.Quote{}, wrapWriteErr(err)
	}
	return fromQuoteRecord(rec), nil
}

func (r *QuoteGormRepository) GetByID(ctx context.Context, id uint) (entities.Quote, error) {
	var rec quoteRecord
	err := conn(ctx, r.db).First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Quote{}, nil
	}
	if err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteRecord(rec), nil
}

func (r *QuoteGormRepository) List(ctx context.Context, filter entities.QuoteFilter) ([]entities.Quote, error) {
	q := conn(ctx, r.db).Model(&quoteRecord{})
	if filter.ClientID != 0 {
		q = q.Where("client_id = ?", filter.ClientID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", string(filter.Status))
	}
	return findQuotes(q.Order("created_at desc, id desc"))
}

func (r *QuoteGormRepository) ListValidUntilBefore(ctx context.Context, before time.Time, statuses []entities.QuoteStatus) ([]entities.Quote, error) {
	if len(statuses) == 0 {
		return []entities.Quote{}, nil
	}
	q := conn(ctx, r.db).Model(&quoteRecord{}).
		Where("status IN ?", toStrings(statuses)).
		Where("valid_until IS NOT NULL AND valid_until < ?", before.UTC()).
		Order("id asc")
	return findQuotes(q)
}

func findQuotes(q *gorm.DB) ([]entities.Quote, error) {
	var recs []quoteRecord
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Quote, 0, len(recs))
	for _, rec := range recs {
		out = append(out, fromQuoteRecord(rec))
	}
	return out, nil
}

func (r *QuoteGormRepository) Update(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	rec := toQuoteRecord(q)
	rec.UpdatedAt = time.Now().UTC()
	res := conn(ctx, r.db).Model(&quoteRecord{ID: q.ID}).
		Select("client_id", "job_id", "amount", "valid_until", "terms", "notes", "updated_at").
		Updates(&rec)
	if res.Error != nil {
		return entities.Quote{}, wrapWriteErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return entities.Quote{}, nil
	}
	return r.GetByID(ctx, q.ID)
}

func (r *QuoteGormRepository) UpdateStatus(ctx context.Context, id uint, status entities.QuoteStatus) (entities.Quote, error) {
	res := conn(ctx, r.db).Model(&quoteRecord{}).Where("id = ?", id).Update("status", string(status))
	if res.Error != nil {
		return entities.Quote{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Quote{}, nil
	}
	return r.GetByID(ctx, id)
}

// UpdateStatusFrom writes to only while the row still holds from. A row that
// moved on, or is gone, yields a zero Quote.
func (r *QuoteGormRepository) UpdateStatusFrom(ctx context.Context, id uint, from, to entities.QuoteStatus) (entities.Quote, error) {
	res := conn(ctx, r.db).Model(&quoteRecord{}).
		Where("id = ? AND status = ?", id, string(from)).
		Update("status", string(to))
	if res.Error != nil {
		return entities.Quote{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Quote{}, nil
	}
	return r.GetByID(ctx, id)
}

func (r *QuoteGormRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := conn(ctx, r.db).Delete(&quoteRecord{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *QuoteGormRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	return countByStatus(conn(ctx, r.db), &quoteRecord{})
}
