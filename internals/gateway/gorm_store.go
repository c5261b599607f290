// file: internals/gateway/gorm_store.go
package gateway

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore implementa Store sobre GORM/PostgreSQL.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) base(ctx context.Context, q Query) *gorm.DB {
	tx := s.db.WithContext(ctx).Table(q.Table)
	for col, v := range q.Filters {
		tx = tx.Where(col+" = ?", v)
	}
	if q.Search != nil && strings.TrimSpace(q.Search.Term) != "" {
		tx = tx.Where(q.Search.Column+" ILIKE ?", "%"+q.Search.Term+"%")
	}
	return tx
}

func (s *GormStore) Select(ctx context.Context, q Query, dest any) (int64, error) {
	var total int64
	if err := s.base(ctx, q).Count(&total).Error; err != nil {
		return 0, mapPGError(err)
	}

	tx := s.base(ctx, q)
	if q.OrderBy != "" {
		dir := "ASC"
		if q.Desc {
			dir = "DESC"
		}
		tx = tx.Order(q.OrderBy + " " + dir)
	}
	if q.Limit > 0 {
		tx = tx.Offset(q.Offset).Limit(q.Limit)
	}
	if err := tx.Find(dest).Error; err != nil {
		return 0, mapPGError(err)
	}
	return total, nil
}

func (s *GormStore) Insert(ctx context.Context, table string, row any) error {
	if err := s.db.WithContext(ctx).Table(table).Create(row).Error; err != nil {
		return mapPGError(err)
	}
	return nil
}

func (s *GormStore) Update(ctx context.Context, table string, patch map[string]any, filters Filter) error {
	if len(filters) == 0 {
		return NewError(ErrCodeInternal, "update sin filtros")
	}
	tx := s.db.WithContext(ctx).Table(table)
	for col, v := range filters {
		tx = tx.Where(col+" = ?", v)
	}
	if err := tx.Updates(patch).Error; err != nil {
		return mapPGError(err)
	}
	return nil
}

func (s *GormStore) Upsert(ctx context.Context, table string, row any, conflictCols, updateCols []string) error {
	cols := make([]clause.Column, 0, len(conflictCols))
	for _, c := range conflictCols {
		cols = append(cols, clause.Column{Name: c})
	}
	err := s.db.WithContext(ctx).Table(table).Clauses(clause.OnConflict{
		Columns:   cols,
		DoUpdates: clause.AssignmentColumns(updateCols),
	}).Create(row).Error
	if err != nil {
		return mapPGError(err)
	}
	return nil
}

func (s *GormStore) Delete(ctx context.Context, table string, filters Filter) error {
	if len(filters) == 0 {
		return NewError(ErrCodeInternal, "delete sin filtros")
	}
	tx := s.db.WithContext(ctx).Table(table)
	for col, v := range filters {
		tx = tx.Where(col+" = ?", v)
	}
	if err := tx.Delete(nil).Error; err != nil {
		return mapPGError(err)
	}
	return nil
}

func (s *GormStore) RPC(ctx context.Context, name string, dest any, args ...any) error {
	ph := strings.TrimSuffix(strings.Repeat("?,", len(args)), ",")
	sql := fmt.Sprintf("SELECT %s(%s)", name, ph)
	if err := s.db.WithContext(ctx).Raw(sql, args...).Scan(dest).Error; err != nil {
		return NewError(ErrCodeRPC, err.Error())
	}
	return nil
}

func (s *GormStore) Transaction(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewGormStore(tx))
	})
}

/* =========================
   PG error mapping
========================= */

// 23503 = foreign_key_violation, 23505 = unique_violation
type pgSQLErr interface {
	SQLState() string
	Error() string
}

func mapPGError(err error) error {
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23503":
			return NewError(ErrCodeForeignKey, pgErr.Error())
		case "23505":
			return NewError(ErrCodeUnique, pgErr.Error())
		}
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NewError(ErrCodeNotFound, err.Error())
	}
	return NewError(ErrCodeInternal, err.Error())
}
