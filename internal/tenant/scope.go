package tenant

import "gorm.io/gorm"

func Scope(companyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("company_id = ?", companyID)
	}
}

// ScopeTable qualifies company_id for queries that join other tenant tables.
func ScopeTable(table, companyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(table+".company_id = ?", companyID)
	}
}
