package db

import (
	"fmt"

	"github.com/avlowe/lineup/data"
)

func (db *DB) CountRows() (int, error) {
	return db.count("1 = 1")
}

// CountMatched counts rows that resolved to an artist.
func (db *DB) CountMatched() (int, error) {
	return db.count("artist_id is not null")
}

// CountMissing counts rows where the API answered but no artist matched.
func (db *DB) CountMissing() (int, error) {
	return db.count("artist_id is null and err = ''")
}

// CountFailed counts rows whose resolution failed outright.
func (db *DB) CountFailed() (int, error) {
	return db.count("err != ''")
}

func (db *DB) count(where string) (int, error) {
	var count int64
	if err := db.
		Table("rows").
		Where(where).
		Count(&count).
		Error; err != nil {
		return 0, fmt.Errorf("error counting rows where %s: %w", where, err)
	}
	return int(count), nil
}

// A Filter narrows the stored dataset for export: the same knobs the batch
// explorer exposes.
type Filter struct {
	MinFollowers int64

	// substring match against the resolved artist name, case-insensitive
	NameContains string

	// drop rows with no resolved artist
	OnlyMatched bool

	// keep only the N rows with the most followers; 0 keeps everything
	Top int
}

// FilteredRows returns stored rows narrowed by the filter. With Top set, rows
// come back ordered by follower count descending; otherwise insertion order.
func (db *DB) FilteredRows(filter Filter) ([]data.Row, error) {
	tx := db.Table("rows")

	if filter.OnlyMatched {
		tx = tx.Where("artist_id is not null")
	}
	if filter.NameContains != "" {
		tx = tx.Where("artist_name like ?", "%"+filter.NameContains+"%")
	}
	if filter.MinFollowers > 0 {
		tx = tx.Where("followers_count >= ?", filter.MinFollowers)
	}
	if filter.Top > 0 {
		tx = tx.Order("followers_count desc").Limit(filter.Top)
	} else {
		tx = tx.Order("rowid")
	}

	var stored []Row
	if err := tx.Find(&stored).Error; err != nil {
		return nil, fmt.Errorf("error querying rows: %w", err)
	}

	rows := make([]data.Row, len(stored))
	for i, s := range stored {
		rows[i] = s.toData()
	}
	return rows, nil
}
