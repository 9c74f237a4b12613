package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"voiceforge/internal/model"
	"voiceforge/pkg/config"
)

// Connect opens the database connection, tunes the pool and runs the
// schema migration. The returned handle is passed to the repositories;
// there is no package-level instance.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	// PreferSimpleProtocol avoids "prepared statement already exists"
	// errors behind connection poolers.
	pgConfig := postgres.Config{
		DSN:                  cfg.DB.URL,
		PreferSimpleProtocol: true,
	}

	db, err := gorm.Open(postgres.New(pgConfig), &gorm.Config{
		Logger: logger.Default.LogMode(cfg.DB.LogLevel),
		// TranslateError maps unique-index violations onto
		// gorm.ErrDuplicatedKey, which the repositories rely on.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get database connection: %w", err)
	}

	if cfg.DB.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	}
	if cfg.DB.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	}
	if cfg.DB.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)
	}

	if err := migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.Tenant{},
		&model.User{},
		&model.UserTenant{},
		&model.PersonalVoice{},
		&model.Theme{},
		&model.RefreshToken{},
	)
	if err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	// AutoMigrate cannot express a partial unique index; a user may
	// hold at most one default membership.
	err = db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_user_default_tenant
		ON user_tenants (user_id) WHERE is_default`).Error
	if err != nil {
		return fmt.Errorf("create default membership index: %w", err)
	}

	return nil
}
