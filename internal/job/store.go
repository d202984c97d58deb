package job

import "context"

// ListFilter 查询条件。
type ListFilter struct {
	Status   Status
	Priority Priority
	Offset   int
	Limit    int
}

// Store 作业存储边界。
// 实现负责：按 tower 归属查询、保存时的乐观并发检查（expectedVersion 不匹配
// 返回 ErrConcurrentModification）、单次流转全部字段的原子落库。
type Store interface {
	Create(ctx context.Context, j *Job) error
	// GetForTower 按 id + 归属查询；不存在或不归属该 tower 时返回 ErrNotFound。
	GetForTower(ctx context.Context, id, towerID string) (*Job, error)
	// Save 以 expectedVersion 做条件更新并把版本 +1；冲突返回 ErrConcurrentModification。
	Save(ctx context.Context, j *Job, expectedVersion int64) error
	// List 按 created_at 倒序返回该 tower 的作业（队列视图）。
	List(ctx context.Context, towerID string, f ListFilter) ([]Job, int64, error)
	CountByStatus(ctx context.Context, towerID string) (map[Status]int64, error)
	CountByPriority(ctx context.Context, towerID string, p Priority) (int64, error)
}
