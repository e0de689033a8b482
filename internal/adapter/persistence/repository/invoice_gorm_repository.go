package repository

import (
	"context"
	"errors"
	"time"

	"voltflow_crm/internal/domain/entities"
	"voltflow_crm/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type InvoiceGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IInvoiceRepository = (*InvoiceGormRepository)(nil)

func NewInvoiceGormRepository(db *gorm.DB) *InvoiceGormRepository {
	return &InvoiceGormRepository{db: db}
}

// Create fails with interfaces.ErrConflict when the quote already has an invoice.
func (r *InvoiceGormRepository) Create(ctx context.Context, i entities.Invoice) (entities.Invoice, error) {
	rec := toInvoiceRecord(i)
	rec.ID = 0
	if err := conn(ctx, r.db).Create(&rec).Error; err != nil {
		return entities.Invoice{}, wrapWriteErr(err)
	}
	return fromInvoiceRecord(rec), nil
}

func (r *InvoiceGormRepository) GetByID(ctx context.Context, id uint) (entities.Invoice, error) {
	return r.first(conn(ctx, r.db).Where("id = ?", id))
}

func (r *InvoiceGormRepository) GetByQuoteID(ctx context.Context, quoteID uint) (entities.Invoice, error) {
	return r.first(conn(ctx, r.db).Where("quote_id = ?", quoteID))
}

func (r *InvoiceGormRepository) first(q *gorm.DB) (entities.Invoice, error) {
	var rec invoiceRecord
	err := q.First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Invoice{}, nil
	}
	if err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceRecord(rec), nil
}

func (r *InvoiceGormRepository) List(ctx context.Context, filter entities.InvoiceFilter) ([]entities.Invoice, error) {
	q := conn(ctx, r.db).Model(&invoiceRecord{})
	if filter.ClientID != 0 {
		q = q.Where("client_id = ?", filter.ClientID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", string(filter.Status))
	}
	return findInvoices(q.Order("created_at desc, id desc"))
}

func (r *InvoiceGormRepository) ListDueBefore(ctx context.Context, before time.Time, statuses []entities.InvoiceStatus) ([]entities.Invoice, error) {
	if len(statuses) == 0 {
		return []entities.Invoice{}, nil
	}
	q := conn(ctx, r.db).Model(&invoiceRecord{}).
		Where("status IN ?", toStrings(statuses)).
		Where("due_date < ?", before.UTC()).
		Order("id asc")
	return findInvoices(q)
}

func findInvoices(q *gorm.DB) ([]entities.Invoice, error) {
	var recs []invoiceRecord
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Invoice, 0, len(recs))
	for _, rec := range recs {
		out = append(out, fromInvoiceRecord(rec))
	}
	return out, nil
}

func (r *InvoiceGormRepository) Update(ctx context.Context, i entities.Invoice) (entities.Invoice, error) {
	rec := toInvoiceRecord(i)
	rec.UpdatedAt = time.Now().UTC()
	res := conn(ctx, r.db).Model(&invoiceRecord{ID: i.ID}).
		Select("client_id", "job_id", "amount", "due_date", "payment_terms", "notes", "updated_at").
		Updates(&rec)
	if res.Error != nil {
		return entities.Invoice{}, wrapWriteErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return entities.Invoice{}, nil
	}
	return r.GetByID(ctx, i.ID)
}

func (r *InvoiceGormRepository) UpdateStatus(ctx context.Context, id uint, status entities.InvoiceStatus) (entities.Invoice, error) {
	res := conn(ctx, r.db).Model(&invoiceRecord{}).Where("id = ?", id).Update("status", string(status))
	if res.Error != nil {
		return entities.Invoice{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Invoice{}, nil
	}
	return r.GetByID(ctx, id)
}

// UpdateStatusFrom writes to only while the row still holds from. A row that
// moved on, or is gone, yields a zero Invoice.
func (r *InvoiceGormRepository) UpdateStatusFrom(ctx context.Context, id uint, from, to entities.InvoiceStatus) (entities.Invoice, error) {
	res := conn(ctx, r.db).Model(&invoiceRecord{}).
		Where("id = ? AND status = ?", id, string(from)).
		Update("status", string(to))
	if res.Error != nil {
		return entities.Invoice{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Invoice{}, nil
	}
	return r.GetByID(ctx, id)
}

func (r *InvoiceGormRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := conn(ctx, r.db).Delete(&invoiceRecord{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
