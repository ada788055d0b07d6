// Package store is the data access layer: one gorm-backed repository per table.
package store

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when a lookup by primary key matches no row.
var ErrNotFound = errors.New("record not found")

// Filter is a parameterised WHERE fragment using ? placeholders.
type Filter struct {
	SQL  string
	Args []any
}

// IsEmpty reports whether the filter has no condition.
func (f Filter) IsEmpty() bool { return strings.TrimSpace(f.SQL) == "" }

// table holds the queries shared by every repository.
type table[T any, K comparable] struct {
	db    *gorm.DB
	name  string
	order string
}

func (t table[T, K]) conn(ctx context.Context) *gorm.DB {
	return t.db.WithContext(ctx)
}

// find returns the rows matching where (all rows when where is empty) in table order.
func (t table[T, K]) find(ctx context.Context, where string, args ...any) ([]T, error) {
	q := t.conn(ctx).Order(t.order)
	if where != "" {
		q = q.Where(where, args...)
	}
	out := []T{}
	if err := q.Find(&out).Error; err != nil {
		return nil, errors.Wrapf(err, "list %s", t.name)
	}
	return out, nil
}

func (t table[T, K]) findByID(ctx context.Context, id K) (*T, error) {
	var v T
	err := t.conn(ctx).Where("id = ?", id).Take(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "find %s", t.name)
	}
	return &v, nil
}

func (t table[T, K]) exists(ctx context.Context, id K) (bool, error) {
	var n int64
	if err := t.conn(ctx).Model(new(T)).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, errors.Wrapf(err, "count %s", t.name)
	}
	return n > 0, nil
}

// update writes every column of v to the row with v's primary key. Unlike
// gorm's Save it never inserts: no matching row yields ErrNotFound.
func (t table[T, K]) update(ctx context.Context, v *T) error {
	res := t.conn(ctx).Model(v).Select("*").Omit(clause.Associations).Updates(v)
	if res.Error != nil {
		return errors.Wrapf(res.Error, "update %s", t.name)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (t table[T, K]) deleteByID(ctx context.Context, id K) error {
	if err := t.conn(ctx).Where("id = ?", id).Delete(new(T)).Error; err != nil {
		return errors.Wrapf(err, "delete %s", t.name)
	}
	return nil
}

// containsPattern builds a LIKE pattern for a case-insensitive substring match.
func containsPattern(s string) string {
	return "%" + strings.ToLower(s) + "%"
}
