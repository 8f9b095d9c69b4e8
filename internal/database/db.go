package database

import (
	"context"
	"errors"
	"time"

	"fiesta/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the sqlite file at dbPath and migrates the guest table.
// Constraint violations surface as gorm.ErrDuplicatedKey. SQL logging goes
// through log with bound values left out of the statement text.
func Open(dbPath string, log *zap.SugaredLogger) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		TranslateError: true,
		Logger:         newGormLogger(log),
	})
	if err != nil {
		return nil, err
	}

	log.Infow("migrating database", "path", dbPath)
	if err := db.AutoMigrate(&models.Guest{}); err != nil {
		return nil, err
	}

	return db, nil
}

func newGormLogger(log *zap.SugaredLogger) logger.Interface {
	return duplicateTolerant{logger.New(
		zap.NewStdLog(log.Desugar()),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  false,
		},
	)}
}

// duplicateTolerant drops unique-index violations from the error log; the
// store turns them into sentinel.ErrDuplicateEmail for the caller.
type duplicateTolerant struct {
	logger.Interface
}

func (d duplicateTolerant) LogMode(level logger.LogLevel) logger.Interface {
	return duplicateTolerant{d.Interface.LogMode(level)}
}

func (d duplicateTolerant) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = nil
	}
	d.Interface.Trace(ctx, begin, fc, err)
}

func (d duplicateTolerant) ParamsFilter(ctx context.Context, sql string, params ...interface{}) (string, []interface{}) {
	if f, ok := d.Interface.(gorm.ParamsFilter); ok {
		return f.ParamsFilter(ctx, sql, params...)
	}
	return sql, params
}
