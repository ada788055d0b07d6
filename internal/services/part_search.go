package services

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"xorm.io/builder"

	"github.com/diewo77/parts-inventory/internal/store"
)

// PartSearch holds the optional part filters. Zero values are ignored.
type PartSearch struct {
	CategoryIDs []int
	SizeIDs     []string
	UnitIDs     []string
	PrecisionID *int
	Name        string
	Value       *decimal.Decimal
	Comment     string
}

// Conditions returns one condition per criterion that is set, in a fixed order.
func (q PartSearch) Conditions() []builder.Cond {
	var conds []builder.Cond
	if len(q.CategoryIDs) > 0 {
		conds = append(conds, builder.In("category_id", q.CategoryIDs))
	}
	if len(q.SizeIDs) > 0 {
		conds = append(conds, builder.In("size_id", q.SizeIDs))
	}
	if len(q.UnitIDs) > 0 {
		conds = append(conds, builder.In("unit_id", q.UnitIDs))
	}
	if q.PrecisionID != nil {
		conds = append(conds, builder.Eq{"precision_id": *q.PrecisionID})
	}
	if strings.TrimSpace(q.Name) != "" {
		conds = append(conds, builder.Like{"LOWER(name)", "%" + strings.ToLower(q.Name) + "%"})
	}
	if q.Value != nil {
		conds = append(conds, builder.Eq{"value": *q.Value})
	}
	if strings.TrimSpace(q.Comment) != "" {
		conds = append(conds, builder.Like{"LOWER(comment)", "%" + strings.ToLower(q.Comment) + "%"})
	}
	return conds
}

// Filter ANDs the conditions into a WHERE fragment. No criteria gives an empty filter.
func (q PartSearch) Filter() (store.Filter, error) {
	conds := q.Conditions()
	if len(conds) == 0 {
		return store.Filter{}, nil
	}
	where, args, err := builder.ToSQL(builder.And(conds...))
	if err != nil {
		return store.Filter{}, errors.Wrap(err, "build part search")
	}
	return store.Filter{SQL: where, Args: args}, nil
}
