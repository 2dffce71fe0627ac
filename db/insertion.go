package db

import (
	"fmt"
	"time"

	"gorm.io/gorm/clause"

	"github.com/avlowe/lineup/data"
)

// UpsertRow inserts one batch result, replacing any earlier row for the same
// search term.
func (db *DB) UpsertRow(row data.Row) error {
	if row.SearchTerm == "" {
		return fmt.Errorf("no search term")
	}
	stored := fromData(row, time.Now())
	if err := db.
		Table("rows").
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&stored).
		Error; err != nil {
		return fmt.Errorf("error inserting row for '%s': %w", row.SearchTerm, err)
	}
	return nil
}

// SaveRows upserts a whole batch.
func (db *DB) SaveRows(rows []data.Row) error {
	for _, row := range rows {
		if err := db.UpsertRow(row); err != nil {
			return err
		}
	}
	return nil
}
