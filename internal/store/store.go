package store

import (
	"context"
	"database/sql"
	errs "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/mossvale/wavebound/internal/engine"
	"github.com/mossvale/wavebound/internal/util"
)

var ErrNoChange = errs.New("no change")

// DB wraps gorm.DB for repositories and exposes Close.
type DB struct {
	gorm *gorm.DB
	sql  *sql.DB
}

func (d *DB) Close() error   { return d.sql.Close() }
func (d *DB) Gorm() *gorm.DB { return d.gorm }

// Open connects to DB per config.
func Open(ctx context.Context, cfg util.Config) (*DB, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("missing DSN")
	}
	// Postgres-only
	gdb, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	sdb, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sdb.SetConnMaxLifetime(30 * time.Minute)
	sdb.SetMaxOpenConns(10)
	sdb.SetMaxIdleConns(5)
	if err := sdb.PingContext(ctx); err != nil {
		return nil, err
	}
	return &DB{gorm: gdb, sql: sdb}, nil
}

// Run is the persisted record of one playthrough.
type Run struct {
	ID           uuid.UUID  `gorm:"primaryKey;column:id"`
	SeedText     string     `gorm:"column:seed_text"`
	Mode         string     `gorm:"column:mode"`
	RulesVersion string     `gorm:"column:rules_version"`
	FinalWave    int        `gorm:"column:final_wave"`
	FinalBiome   string     `gorm:"column:final_biome"`
	Victory      bool       `gorm:"column:victory"`
	StartedAt    time.Time  `gorm:"column:started_at"`
	EndedAt      *time.Time `gorm:"column:ended_at"`
}

func (Run) TableName() string { return "runs" }

// HighScore is the per-mode best wave reached.
type HighScore struct {
	Mode      string    `gorm:"primaryKey;column:mode"`
	Wave      int       `gorm:"column:wave"`
	SeedText  string    `gorm:"column:seed_text"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (HighScore) TableName() string { return "high_scores" }

// RunRepo basic operations.
type RunRepo struct{ db *DB }

func NewRunRepo(db *DB) *RunRepo { return &RunRepo{db: db} }

// Create opens a run record for a fresh session. Recording the rules version
// keeps archived runs comparable across balance changes.
func (r *RunRepo) Create(ctx context.Context, mode engine.GameModeID, seedText, rulesVersion string) (Run, error) {
	run := Run{
		ID:           uuid.New(),
		SeedText:     seedText,
		Mode:         string(mode),
		RulesVersion: rulesVersion,
		FinalWave:    0,
		StartedAt:    time.Now().UTC(),
	}
	if err := r.db.gorm.WithContext(ctx).Create(&run).Error; err != nil {
		return Run{}, errors.Wrap(err, "create run")
	}
	return run, nil
}

// Finish closes a run with its final wave and outcome.
func (r *RunRepo) Finish(ctx context.Context, id uuid.UUID, s *engine.Session, victory bool) error {
	now := time.Now().UTC()
	updates := map[string]any{
		"final_wave":  s.Wave,
		"final_biome": string(s.Arena.Biome),
		"victory":     victory,
		"ended_at":    &now,
	}
	err := r.db.gorm.WithContext(ctx).Model(&Run{}).Where("id = ?", id).Updates(updates).Error
	return errors.Wrap(err, "finish run")
}

// Recent returns the latest runs, newest first.
func (r *RunRepo) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	var runs []Run
	err := r.db.gorm.WithContext(ctx).Order("started_at desc").Limit(limit).Find(&runs).Error
	return runs, errors.Wrap(err, "list runs")
}

// HighScoreRepo tracks the best wave per mode.
type HighScoreRepo struct{ db *DB }

func NewHighScoreRepo(db *DB) *HighScoreRepo { return &HighScoreRepo{db: db} }

// Record stores wave as the mode's best if it beats the current entry.
// Returns whether a new high score was set.
func (r *HighScoreRepo) Record(ctx context.Context, mode engine.GameModeID, wave int, seedText string) (bool, error) {
	var cur HighScore
	tx := r.db.gorm.WithContext(ctx)
	err := tx.Where("mode = ?", string(mode)).First(&cur).Error
	switch {
	case errs.Is(err, gorm.ErrRecordNotFound):
		hs := HighScore{Mode: string(mode), Wave: wave, SeedText: seedText, UpdatedAt: time.Now().UTC()}
		if err := tx.Create(&hs).Error; err != nil {
			return false, errors.Wrap(err, "create high score")
		}
		return true, nil
	case err != nil:
		return false, errors.Wrap(err, "load high score")
	}
	if wave <= cur.Wave {
		return false, nil
	}
	cur.Wave = wave
	cur.SeedText = seedText
	cur.UpdatedAt = time.Now().UTC()
	if err := tx.Save(&cur).Error; err != nil {
		return false, errors.Wrap(err, "update high score")
	}
	return true, nil
}

// Best returns the best wave per mode, or zero when none recorded.
func (r *HighScoreRepo) Best(ctx context.Context, mode engine.GameModeID) (HighScore, error) {
	var hs HighScore
	err := r.db.gorm.WithContext(ctx).Where("mode = ?", string(mode)).First(&hs).Error
	if errs.Is(err, gorm.ErrRecordNotFound) {
		return HighScore{Mode: string(mode)}, nil
	}
	return hs, errors.Wrap(err, "load high score")
}
