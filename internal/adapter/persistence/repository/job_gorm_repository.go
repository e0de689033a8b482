package repository

import (
	"context"
	"errors"
	"time"

	"voltflow_crm/internal/domain/entities"
	"voltflow_crm/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type JobGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IJobRepository = (*JobGormRepository)(nil)

func NewJobGormRepository(db *gorm.DB) *JobGormRepository {
	return &JobGormRepository{db: db}
}

func (r *JobGormRepository) Create(ctx context.Context, j entities.Job) (entities.Job, error) {
	rec := toJobRecord(j)
	rec.ID = 0
	if err := conn(ctx, r.db).Create(&rec).Error; err != nil {
		return entities.Job{}, wrapWriteErr(err)
	}
	return fromJobRecord(rec), nil
}

func (r *JobGormRepository) GetByID(ctx context.Context, id uint) (entities.Job, error) {
	var rec jobRecord
	err := conn(ctx, r.db).First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Job{}, nil
	}
	if err != nil {
		return entities.Job{}, err
	}
	return fromJobRecord(rec), nil
}

func (r *JobGormRepository) List(ctx context.Context, filter entities.JobFilter) ([]entities.Job, error) {
	q := conn(ctx, r.db).Model(&jobRecord{})
	if filter.ClientID != 0 {
		q = q.Where("client_id = ?", filter.ClientID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", string(filter.Status))
	}
	var recs []jobRecord
	if err := q.Order("created_at desc, id desc").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Job, 0, len(recs))
	for _, rec := range recs {
		out = append(out, fromJobRecord(rec))
	}
	return out, nil
}

func (r *JobGormRepository) Update(ctx context.Context, j entities.Job) (entities.Job, error) {
	rec := toJobRecord(j)
	rec.UpdatedAt = time.Now().UTC()
	res := conn(ctx, r.db).Model(&jobRecord{ID: j.ID}).
		Select("client_id", "title", "description", "priority", "budget", "start_date", "end_date",
			"assigned_technicians", "service_address", "updated_at").
		Updates(&rec)
	if res.Error != nil {
		return entities.Job{}, wrapWriteErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return entities.Job{}, nil
	}
	return r.GetByID(ctx, j.ID)
}

func (r *JobGormRepository) UpdateStatus(ctx context.Context, id uint, status entities.JobStatus) (entities.Job, error) {
	res := conn(ctx, r.db).Model(&jobRecord{}).Where("id = ?", id).Update("status", string(status))
	if res.Error != nil {
		return entities.Job{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Job{}, nil
	}
	return r.GetByID(ctx, id)
}

func (r *JobGormRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := conn(ctx, r.db).Delete(&jobRecord{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
