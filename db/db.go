package db

import (
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/avlowe/lineup/data"
)

// DB represents the sqlite3 dataset file that batch results accumulate into.
type DB struct{ *gorm.DB }

//go:embed schema.sql
var schema string

// Open returns a connection to a migrated sqlite3 database file on disk,
// creating the file and running migrations if necessary.
func Open(filename string) (*DB, error) {
	gdb, err := gorm.Open(sqlite.Open(filename), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("error opening db file at '%s': %w", filename, err)
	}

	db := &DB{gdb}

	if err := db.Exec(schema).Error; err != nil {
		return nil, fmt.Errorf("error migrating db at '%s': %w", filename, err)
	}

	return db, nil
}

func (db *DB) Close() error {
	pool, err := db.DB.DB()
	if err != nil {
		return err
	}
	return pool.Close()
}

// A Row is the stored form of one batch result.
type Row struct {
	SearchTerm     string `gorm:"primaryKey"`
	ArtistName     sql.NullString
	ArtistID       sql.NullInt64
	FollowersCount sql.NullInt64
	URL            sql.NullString
	ImageURL       sql.NullString
	Err            string
	ResolvedAt     time.Time
}

func fromData(row data.Row, at time.Time) Row {
	stored := Row{SearchTerm: row.SearchTerm, Err: row.Err, ResolvedAt: at}
	if row.Artist != nil {
		stored.ArtistName = sql.NullString{String: row.Artist.Name, Valid: true}
		stored.ArtistID = sql.NullInt64{Int64: row.Artist.ID, Valid: true}
		stored.FollowersCount = sql.NullInt64{Int64: row.Artist.Followers, Valid: true}
		stored.URL = sql.NullString{String: row.Artist.URL, Valid: true}
		stored.ImageURL = sql.NullString{String: row.Artist.ImageURL, Valid: true}
	}
	return stored
}

func (stored Row) toData() data.Row {
	row := data.Row{SearchTerm: stored.SearchTerm, Err: stored.Err}
	if stored.ArtistID.Valid {
		row.Artist = &data.Artist{
			ID:        stored.ArtistID.Int64,
			Name:      stored.ArtistName.String,
			Followers: stored.FollowersCount.Int64,
			URL:       stored.URL.String,
			ImageURL:  stored.ImageURL.String,
		}
	}
	return row
}
