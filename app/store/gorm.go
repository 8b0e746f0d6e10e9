package store

import (
	"errors"
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Entry struct {
	Key   string `gorm:"primaryKey;size:191"`
	Value string `gorm:"type:text"`
}

func (Entry) TableName() string { return "kv_entries" }

// GormKV keeps the whole store in a single kv_entries table, one row
// per key, value holding the JSON payload.
type GormKV struct{ db *gorm.DB }

type MySQLConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// OpenSQLite opens (and migrates) a file-backed store at path.
func OpenSQLite(path string) (*GormKV, error) {
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	return newGormKV(gdb)
}

func OpenMySQL(cfg MySQLConfig) (*GormKV, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local", cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName)
	gdb, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open mysql store: %w", err)
	}
	return newGormKV(gdb)
}

func newGormKV(gdb *gorm.DB) (*GormKV, error) {
	if err := gdb.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("migrate store: %w", err)
	}
	return &GormKV{db: gdb}, nil
}

func (s *GormKV) Get(key string) (string, bool, error) {
	var e Entry
	err := s.db.First(&e, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return e.Value, true, nil
}

func (s *GormKV) Set(key, value string) error {
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&Entry{Key: key, Value: value}).Error
}

func (s *GormKV) Delete(key string) error {
	return s.db.Delete(&Entry{}, "key = ?", key).Error
}
