// Package migration şema migration'larını golang-migrate ile yönetir.
// SQL dosyaları binary'ye gömülüdür.
package migration

import (
	"embed"
	stderrors "errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // postgres:// driver
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"
)

//go:embed sql/*.sql
var migrationFiles embed.FS

// Runner migration işlemlerini yöneten ana yapı
type Runner struct {
	m *migrate.Migrate
}

// NewRunner gömülü dosyalarla yeni migration runner oluşturur
func NewRunner(dsn string) (*Runner, error) {
	source, err := iofs.New(migrationFiles, "sql")
	if err != nil {
		return nil, fmt.Errorf("migration kaynağı açılamadı: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, dsn)
	if err != nil {
		return nil, fmt.Errorf("migration başlatılamadı: %w", err)
	}
	m.Log = zerologAdapter{}

	return &Runner{m: m}, nil
}

// Up bekleyen migration'ları uygular; steps > 0 ise sadece o kadar
func (r *Runner) Up(steps int) error {
	var err error
	if steps > 0 {
		err = r.m.Steps(steps)
	} else {
		err = r.m.Up()
	}
	return r.result("up", err)
}

// Down migration'ları geri alır; steps <= 0 ise hepsini
func (r *Runner) Down(steps int) error {
	var err error
	if steps > 0 {
		err = r.m.Steps(-steps)
	} else {
		err = r.m.Down()
	}
	return r.result("down", err)
}

// Version mevcut şema versiyonu; hiç migration yoksa 0
func (r *Runner) Version() (uint, bool, error) {
	version, dirty, err := r.m.Version()
	if stderrors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}

// Force dirty işaretini temizlemek için versiyonu zorla ayarlar
func (r *Runner) Force(version int) error {
	if err := r.m.Force(version); err != nil {
		return fmt.Errorf("versiyon zorlanamadı: %w", err)
	}
	log.Warn().Int("version", version).Msg("Migration versiyonu zorla ayarlandı")
	return nil
}

// Close kaynak ve database bağlantılarını kapatır
func (r *Runner) Close() error {
	sourceErr, dbErr := r.m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	return dbErr
}

func (r *Runner) result(direction string, err error) error {
	if stderrors.Is(err, migrate.ErrNoChange) {
		log.Info().Str("direction", direction).Msg("Uygulanacak migration yok")
		return nil
	}
	if err != nil {
		return fmt.Errorf("migration %s başarısız: %w", direction, err)
	}

	version, dirty, _ := r.Version()
	log.Info().
		Str("direction", direction).
		Uint("version", version).
		Bool("dirty", dirty).
		Msg("✅ Migration tamamlandı")
	return nil
}

// zerologAdapter migrate.Logger arayüzünü zerolog'a bağlar
type zerologAdapter struct{}

func (zerologAdapter) Printf(format string, v ...interface{}) {
	log.Debug().Msgf(format, v...)
}

func (zerologAdapter) Verbose() bool {
	return false
}
