package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repo 通用仓储, tx 为 nil 时使用默认连接
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

// Conn 事务内的调用必须传入 tx, 否则会拿到事务外的连接
func (r *Repo[T]) Conn(ctx context.Context, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx.WithContext(ctx)
	}
	return r.Db.WithContext(ctx)
}

func (r *Repo[T]) Create(ctx context.Context, tx *gorm.DB, data *T) error {
	return r.Conn(ctx, tx).Create(data).Error
}

// FindByWhere 按条件查询一条, 不存在时返回 gorm.ErrRecordNotFound
func (r *Repo[T]) FindByWhere(ctx context.Context, tx *gorm.DB, where string, args ...any) (*T, error) {
	var item T
	if err := r.Conn(ctx, tx).Where(where, args...).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Repo[T]) IsExist(ctx context.Context, tx *gorm.DB, where string, args ...any) (bool, error) {
	var count int64
	err := r.Conn(ctx, tx).Model(new(T)).Where(where, args...).Limit(1).Count(&count).Error
	return count > 0, err
}

// IsNotFound 统一判断记录不存在
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
