package repository

import (
	"context"
	"errors"
	"time"

	"voltflow_crm/internal/domain/entities"
	"voltflow_crm/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type ClientGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IClientRepository = (*ClientGormRepository)(nil)

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

// Create fails with interfaces.ErrConflict when another client already holds
// the same lead_id.
func (r *ClientGormRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	rec := toClientRecord(c)
	rec.ID = 0
	if err := conn(ctx, r.db).Create(&rec).Error; err != nil {
		return entities.Client{}, wrapWriteErr(err)
	}
	return fromClientRecord(rec), nil
}

func (r *ClientGormRepository) GetByID(ctx context.Context, id uint) (entities.Client, error) {
	return r.first(conn(ctx, r.db).Where("id = ?", id))
}

func (r *ClientGormRepository) GetByLeadID(ctx context.Context, leadID uint) (entities.Client, error) {
	return r.first(conn(ctx, r.db).Where("lead_id = ?", leadID))
}

func (r *ClientGormRepository) first(q *gorm.DB) (entities.Client, error) {
	var rec clientRecord
	err := q.First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Client{}, nil
	}
	if err != nil {
		return entities.Client{}, err
	}
	return fromClientRecord(rec), nil
}

func (r *ClientGormRepository) List(ctx context.Context, filter entities.ClientFilter) ([]entities.Client, error) {
	q := conn(ctx, r.db).Model(&clientRecord{})
	if filter.Status != "" {
		q = q.Where("status = ?", string(filter.Status))
	}
	var recs []clientRecord
	if err := q.Order("created_at desc, id desc").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Client, 0, len(recs))
	for _, rec := range recs {
		out = append(out, fromClientRecord(rec))
	}
	return out, nil
}

// Update leaves status and lead_id untouched.
func (r *ClientGormRepository) Update(ctx context.Context, c entities.Client) (entities.Client, error) {
	rec := toClientRecord(c)
	rec.UpdatedAt = time.Now().UTC()
	res := conn(ctx, r.db).Model(&clientRecord{ID: c.ID}).
		Select("name", "email", "phone", "address", "estimated_value", "source", "notes", "assigned_to", "updated_at").
		Updates(&rec)
	if res.Error != nil {
		return entities.Client{}, wrapWriteErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return entities.Client{}, nil
	}
	return r.GetByID(ctx, c.ID)
}

func (r *ClientGormRepository) UpdateStatus(ctx context.Context, id uint, status entities.ClientStatus) (entities.Client, error) {
	res := conn(ctx, r.db).Model(&clientRecord{}).Where("id = ?", id).Update("status", string(status))
	if res.Error != nil {
		return entities.Client{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Client{}, nil
	}
	return r.GetByID(ctx, id)
}

func (r *ClientGormRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := conn(ctx, r.db).Delete(&clientRecord{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
