package repository

import (
	"strings"

	"gorm.io/gorm"
)

// dbDialectName resolves the dialect, defaulting to sqlite.
func dbDialectName(db *gorm.DB) string {
	if db == nil || db.Dialector == nil {
		return "sqlite"
	}
	name := strings.ToLower(strings.TrimSpace(db.Dialector.Name()))
	if name == "" {
		return "sqlite"
	}
	return name
}

// dayBucketExpr yields a YYYY-MM-DD text expression for grouping. The plain
// date() form is understood by both sqlite and postgres.
func dayBucketExpr(column string) string {
	return "CAST(date(" + column + ") AS TEXT)"
}

// monthBucketExpr yields a YYYY-MM text expression for grouping.
func monthBucketExpr(db *gorm.DB, column string) string {
	return monthBucketExprByDialect(dbDialectName(db), column)
}

func monthBucketExprByDialect(dialect, column string) string {
	switch strings.ToLower(strings.TrimSpace(dialect)) {
	case "postgres", "postgresql":
		return "to_char(" + column + ", 'YYYY-MM')"
	default:
		return "strftime('%Y-%m', " + column + ")"
	}
}
