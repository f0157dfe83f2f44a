package archiver

import (
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const defaultDSN = "logos.db"

type ORMArchiverConfig struct {
	Enabled      bool   `json:"enabled"`
	ArchiverType string `json:"archiverType"`
	DSN          string `json:"dsn"`
}

type ORMArchiver struct {
	db *gorm.DB
}

// DBInvalidation is one CDN invalidation request and its outcome.
type DBInvalidation struct {
	gorm.Model
	Command  string `gorm:"index"`
	Network  string `gorm:"index"`
	URL      string `gorm:"index"`
	Success  bool
	Output   string
	Error    string
	Duration time.Duration
}

func NewORMArchiver(db *gorm.DB) (*ORMArchiver, error) {
	if err := db.AutoMigrate(&DBInvalidation{}); err != nil {
		return nil, err
	}

	return &ORMArchiver{
		db: db,
	}, nil
}

func NewORMArchiverFromConfigBytes(configBytes []byte, log *zap.Logger) (*ORMArchiver, error) {
	var conf ORMArchiverConfig
	err := json.Unmarshal(configBytes, &conf)
	if err != nil {
		return nil, err
	}
	return NewORMArchiverFromConfig(&conf, log)
}

func NewORMArchiverFromConfig(conf *ORMArchiverConfig, log *zap.Logger) (*ORMArchiver, error) {
	if log == nil {
		log = zap.NewNop()
	}
	gconf := &gorm.Config{Logger: newGormLogger(log)}
	switch strings.ToLower(conf.ArchiverType) {
	case "postgresql":
		db, err := gorm.Open(postgres.New(postgres.Config{
			DSN:                  conf.DSN,
			PreferSimpleProtocol: true,
		}), gconf)
		if err != nil {
			return nil, err
		}
		log.Debug("using postgresql as archiver")
		return NewORMArchiver(db)
	case "sqlite":
		db, err := gorm.Open(sqlite.Open(conf.DSN), gconf)
		if err != nil {
			return nil, err
		}
		return NewORMArchiver(db)
	default:
		db, err := gorm.Open(sqlite.Open(defaultDSN), gconf)
		if err != nil {
			return nil, err
		}
		return NewORMArchiver(db)
	}
}

func (oa *ORMArchiver) InsertInvalidation(inv *DBInvalidation) error {
	tx := oa.db.Begin()
	if err := tx.Create(inv).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	return nil
}

// Recent returns up to limit invalidations, newest first, optionally scoped
// to one network.
func (oa *ORMArchiver) Recent(network string, limit int) ([]DBInvalidation, error) {
	var out []DBInvalidation
	q := oa.db.Order("id desc").Limit(limit)
	if network != "" {
		q = q.Where("network = ?", network)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (oa *ORMArchiver) Close() error {
	sqlDB, err := oa.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
