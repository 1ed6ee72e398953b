package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var once sync.Once
var db *Db

type Db struct {
	DbConn *gorm.DB
	models []any
}

// NewDb opens a shared in-memory SQLite database and migrates the given
// models. The connection is a singleton so every scenario talks to the same
// database; call Reset between scenarios.
func NewDb(models []any) *Db {
	once.Do(func() {
		db = open(models)
	})
	return db
}

func open(models []any) *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	// A single connection keeps the in-memory database alive and avoids
	// table-lock errors between scenarios.
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	if err := dbConn.AutoMigrate(models...); err != nil {
		panic("failed to migrate database. err: " + err.Error())
	}

	return &Db{
		DbConn: dbConn,
		models: models,
	}
}

// Reset deletes all rows from every migrated table.
func (d *Db) Reset() error {
	for _, model := range d.models {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error
		if err != nil {
			return fmt.Errorf("failed to reset table for model %T: %w", model, err)
		}
	}
	return nil
}

// Count returns the number of rows in the table backing the given model.
func (d *Db) Count(model any) (int64, error) {
	var count int64
	if err := d.DbConn.Model(model).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
