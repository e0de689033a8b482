package repository

import (
	"context"
	"errors"
	"time"

	"voltflow_crm/internal/domain/entities"
	"voltflow_crm/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type LeadGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ILeadRepository = (*LeadGormRepository)(nil)

func NewLeadGormRepository(db *gorm.DB) *LeadGormRepository {
	return &LeadGormRepository{db: db}
}

func (r *LeadGormRepository) Create(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	rec := toLeadRecord(l)
	rec.ID = 0
	if err := conn(ctx, r.db).Create(&rec).Error; err != nil {
		return entities.Lead{}, wrapWriteErr(err)
	}
	return fromLeadRecord(rec), nil
}

func (r *LeadGormRepository) GetByID(ctx context.Context, id uint) (entities.Lead, error) {
	var rec leadRecord
	err := conn(ctx, r.db).First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Lead{}, nil
	}
	if err != nil {
		return entities.Lead{}, err
	}
	return fromLeadRecord(rec), nil
}

func (r *LeadGormRepository) List(ctx context.Context, filter entities.LeadFilter) ([]entities.Lead, error) {
	q := conn(ctx, r.db).Model(&leadRecord{})
	if filter.Status != "" {
		q = q.Where("status = ?", string(filter.Status))
	}
	var recs []leadRecord
	if err := q.Order("created_at desc, id desc").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Lead, 0, len(recs))
	for _, rec := range recs {
		out = append(out, fromLeadRecord(rec))
	}
	return out, nil
}

// Update writes every editable column. Status is left to UpdateStatus.
func (r *LeadGormRepository) Update(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	rec := toLeadRecord(l)
	rec.UpdatedAt = time.Now().UTC()
	res := conn(ctx, r.db).Model(&leadRecord{ID: l.ID}).
		Select("name", "email", "phone", "source", "estimated_value", "notes", "assigned_to", "updated_at").
		Updates(&rec)
	if res.Error != nil {
		return entities.Lead{}, wrapWriteErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return entities.Lead{}, nil
	}
	return r.GetByID(ctx, l.ID)
}

func (r *LeadGormRepository) UpdateStatus(ctx context.Context, id uint, status entities.LeadStatus) (entities.Lead, error) {
	res := conn(ctx, r.db).Model(&leadRecord{}).Where("id = ?", id).Update("status", string(status))
	if res.Error != nil {
		return entities.Lead{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Lead{}, nil
	}
	return r.GetByID(ctx, id)
}

func (r *LeadGormRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := conn(ctx, r.db).Delete(&leadRecord{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *LeadGormRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	return countByStatus(conn(ctx, r.db), &leadRecord{})
}
