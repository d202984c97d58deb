package job

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Repo 基于 gorm/MySQL 的 Store 实现。
type Repo struct {
	db *gorm.DB
}

var _ Store = (*Repo)(nil)

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) withCtx(ctx context.Context) *gorm.DB {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.WithContext(ctx)
}

func (r *Repo) Create(ctx context.Context, j *Job) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	return db.Create(j).Error
}

func (r *Repo) GetForTower(ctx context.Context, id, towerID string) (*Job, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	var j Job
	err := db.Where("id = ? AND tower_id = ?", id, towerID).First(&j).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &j, nil
}

// Save 条件更新：WHERE id = ? AND version = expectedVersion。
// 没有命中行说明输掉了乐观并发竞争（或作业被删除），返回 ErrConcurrentModification，
// 调用方重新加载后重试。命中时整行落库，版本 +1，单次流转的全部字段一起生效。
func (r *Repo) Save(ctx context.Context, j *Job, expectedVersion int64) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}

	j.Version = expectedVersion + 1
	res := db.Model(&Job{}).
		Where("id = ? AND version = ?", j.ID, expectedVersion).
		Select("*").
		Omit("id", "created_at").
		Updates(j)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrConcurrentModification
	}
	return nil
}

func (r *Repo) List(ctx context.Context, towerID string, f ListFilter) ([]Job, int64, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, 0, fmt.Errorf("repo db is nil")
	}
	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	q := db.Model(&Job{}).Where("tower_id = ?", towerID)
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Priority != "" {
		q = q.Where("priority = ?", f.Priority)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []Job
	if err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&jobs).Error; err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *Repo) CountByStatus(ctx context.Context, towerID string) (map[Status]int64, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}

	type row struct {
		Status Status
		N      int64
	}
	var rows []row
	err := db.Model(&Job{}).
		Select("status, COUNT(*) AS n").
		Where("tower_id = ?", towerID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[Status]int64, len(rows))
	for _, r := range rows {
		out[r.Status] = r.N
	}
	return out, nil
}

func (r *Repo) CountByPriority(ctx context.Context, towerID string, p Priority) (int64, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return 0, fmt.Errorf("repo db is nil")
	}
	var n int64
	err := db.Model(&Job{}).
		Where("tower_id = ? AND priority = ?", towerID, p).
		Count(&n).Error
	return n, err
}
