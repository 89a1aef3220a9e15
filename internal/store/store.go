// Package store owns the embedded notebook database: schema migration and the
// named queries the domain operations are composed from. The server process
// holds the only handle for the lifetime of a session.
package store

import (
	"fmt"
	"log"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the notebook database at path and applies the
// schema. The sqlite handle is opened with foreign keys enforced; cascade
// behavior depends on it.
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("%s?_foreign_keys=on", path)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Discard,
	})
	if err != nil {
		return nil, fmt.Errorf("open notebook database: %w", err)
	}

	// sqlite allows one writer; a second pooled connection would only turn
	// concurrent statements into busy errors.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("open notebook database: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&Note{}, &Tag{}, &TagJoin{}, &Link{}); err != nil {
		return nil, fmt.Errorf("migrate notebook schema: %w", err)
	}

	log.Printf("notebook database ready at %s", path)
	return &Store{db: db}, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// escapeLike treats user input as a literal inside a LIKE pattern: the sqlite
// backend leaves % and _ special, so they are escaped with backslash and the
// queries carry ESCAPE '\'.
func escapeLike(input string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(input)
}

func likePattern(input string) string {
	return "%" + escapeLike(input) + "%"
}
