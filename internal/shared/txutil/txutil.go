// Package txutil lets gorm repositories run on a *sql.Tx owned by a service.
package txutil

import (
	"database/sql"

	"gorm.io/gorm"
)

// Bind returns a session of db whose statements execute on tx. A nil tx
// returns db unchanged. This mirrors what gorm.DB.Begin does internally.
func Bind(db *gorm.DB, tx *sql.Tx) *gorm.DB {
	if tx == nil || db == nil {
		return db
	}
	session := db.Session(&gorm.Session{NewDB: true})
	session.Statement.ConnPool = tx
	return session
}
