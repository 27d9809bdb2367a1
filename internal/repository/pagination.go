package repository

import "gorm.io/gorm"

// applyPagination normalizes page/pageSize and applies limit/offset.
func applyPagination(query *gorm.DB, page, pageSize int) *gorm.DB {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return query.Limit(pageSize).Offset((page - 1) * pageSize)
}
