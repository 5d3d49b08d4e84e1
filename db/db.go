package db

import (
	"blog/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open connects to MySQL when MYSQL_DSN is configured and falls back to the
// SQLite file otherwise. TranslateError is on so unique index violations
// surface as gorm.ErrDuplicatedKey with either driver.
func Open() (*gorm.DB, error) {
	return gorm.Open(dialector(), &gorm.Config{
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
		TranslateError:         true,
	})
}

func dialector() gorm.Dialector {
	if config.MYSQL_DSN != "" {
		return mysql.Open(config.MYSQL_DSN)
	}
	return sqlite.Open(config.SQLITE_FILE)
}
