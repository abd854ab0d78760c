package postgres

import (
	"strings"

	"storefront/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching s anywhere.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// orderBy sorts by the mapped column, then by id so pages never overlap.
func orderBy(db *gorm.DB, columns map[string]string, s repository.Sort, fallback string) *gorm.DB {
	column, ok := columns[s.Field]
	if !ok {
		column = fallback
	}

	return db.Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: s.Desc}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: s.Desc})
}

func paginate(db *gorm.DB, p repository.Pagination) *gorm.DB {
	if p.Limit <= 0 {
		return db
	}

	return db.Offset(p.Offset()).Limit(p.Limit)
}
