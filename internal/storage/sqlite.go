package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// kvSnapshot is the single-table schema behind the sqlite backend.
type kvSnapshot struct {
	Key       string    `gorm:"primaryKey;column:key"`
	Value     []byte    `gorm:"column:value"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (kvSnapshot) TableName() string { return "kv_snapshots" }

type sqliteKV struct {
	conn *gorm.DB
}

// NewSQLiteKV opens (or creates) the snapshot database at the given DSN.
func NewSQLiteKV(ctx context.Context, dsn string) (KV, error) {
	if dsn == "" {
		return nil, fmt.Errorf("sqlite dsn is required")
	}

	gormLogger := gormlogger.New(
		log.New(io.Discard, "", log.LstdFlags),
		gormlogger.Config{LogLevel: gormlogger.Silent},
	)

	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	if err := conn.WithContext(ctx).AutoMigrate(&kvSnapshot{}); err != nil {
		return nil, fmt.Errorf("migrating kv schema: %w", err)
	}

	return &sqliteKV{conn: conn}, nil
}

func (s *sqliteKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var row kvSnapshot
	err := s.conn.WithContext(ctx).First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return row.Value, true, nil
}

func (s *sqliteKV) Set(ctx context.Context, key string, value []byte) error {
	row := kvSnapshot{Key: key, Value: value, UpdatedAt: time.Now()}
	return s.conn.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&row).Error
}

func (s *sqliteKV) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.conn.WithContext(ctx).Where("key IN ?", keys).Delete(&kvSnapshot{}).Error
}

func (s *sqliteKV) Ping(ctx context.Context) error {
	sqlDB, err := s.conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *sqliteKV) Close() error {
	sqlDB, err := s.conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
