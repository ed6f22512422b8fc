package repository

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/onerilhan/bookkeeping-api/internal/db"
	"github.com/onerilhan/bookkeeping-api/internal/interfaces"
	"github.com/onerilhan/bookkeeping-api/internal/listing"
	"github.com/onerilhan/bookkeeping-api/internal/middleware/errors"
	"github.com/onerilhan/bookkeeping-api/internal/models"
)

var finkedaColumns = "fs.id, fs.rupay_card_charge_amount, fs.master_card_charge_amount, " + timestampColumns("fs")

// FinkedaRepository, FinkedaRepositoryInterface'in somut halidir.
type FinkedaRepository struct {
	db *sql.DB
}

// NewFinkedaRepository yeni bir repository oluşturur.
func NewFinkedaRepository(db *sql.DB) interfaces.FinkedaRepositoryInterface {
	return &FinkedaRepository{db: db}
}

func scanFinkedaSettings(row listing.RowScanner) (*models.FinkedaSettings, error) {
	var s models.FinkedaSettings
	err := row.Scan(
		&s.ID,
		&s.RupayCardChargeAmount,
		&s.MasterCardChargeAmount,
		&s.CreateDate,
		&s.CreateTime,
		&s.ModifyDate,
		&s.ModifyTime,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetLatest en son ayar satırını getirir; hiç yoksa nil döner
func (r *FinkedaRepository) GetLatest(ctx context.Context) (*models.FinkedaSettings, error) {
	return r.latest(ctx, r.db, "")
}

func (r *FinkedaRepository) latest(ctx context.Context, q db.Querier, lock string) (*models.FinkedaSettings, error) {
	query := `SELECT ` + finkedaColumns + ` FROM finkeda_settings fs ORDER BY fs.id DESC LIMIT 1` + lock

	settings, err := scanFinkedaSettings(q.QueryRowContext(ctx, query))
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.NewDatabaseError("finkeda ayarları getirilemedi", err)
	}
	return settings, nil
}

// Upsert ayar yoksa oluşturur. Varsa günceller ve önceki/yeni değerleri
// history'ye aynı transaction içinde yazar.
func (r *FinkedaRepository) Upsert(ctx context.Context, req *models.UpdateFinkedaSettingsRequest) (*models.FinkedaSettings, error) {
	var id int64
	err := db.WithTransaction(ctx, r.db, func(tx *sql.Tx) error {
		current, err := r.latest(ctx, tx, " FOR UPDATE")
		if err != nil {
			return err
		}

		if current == nil {
			err := tx.QueryRowContext(ctx,
				`INSERT INTO finkeda_settings (rupay_card_charge_amount, master_card_charge_amount) VALUES ($1, $2) RETURNING id`,
				req.RupayCardChargeAmount, req.MasterCardChargeAmount,
			).Scan(&id)
			if err != nil {
				return classifyWriteError(err, "finkeda ayarları oluşturulamadı")
			}
			return nil
		}

		id = current.ID
		_, err = tx.ExecContext(ctx,
			`UPDATE finkeda_settings SET rupay_card_charge_amount = $1, master_card_charge_amount = $2, `+touchColumns+` WHERE id = $3`,
			req.RupayCardChargeAmount, req.MasterCardChargeAmount, id,
		)
		if err != nil {
			return classifyWriteError(err, "finkeda ayarları güncellenemedi")
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO finkeda_settings_history (
				settings_id, previous_rupay_amount, previous_master_amount, new_rupay_amount, new_master_amount
			)
			VALUES ($1, $2, $3, $4, $5)`,
			id,
			current.RupayCardChargeAmount,
			current.MasterCardChargeAmount,
			req.RupayCardChargeAmount,
			req.MasterCardChargeAmount,
		)
		if err != nil {
			return errors.NewDatabaseError("finkeda history yazılamadı", err)
		}
		return nil
	})
	if err != nil {
		return nil, keepAPIError(err, "finkeda ayarları kaydedilemedi")
	}

	settings, err := scanFinkedaSettings(r.db.QueryRowContext(ctx,
		`SELECT `+finkedaColumns+` FROM finkeda_settings fs WHERE fs.id = $1`, id))
	if err != nil {
		return nil, notFoundOr(err, "finkeda ayarları", id)
	}
	return settings, nil
}

// History değişiklik geçmişi, en yeni önce
func (r *FinkedaRepository) History(ctx context.Context) ([]*models.FinkedaSettingsHistory, error) {
	query := `
		SELECT id, settings_id, previous_rupay_amount, previous_master_amount,
			new_rupay_amount, new_master_amount,
			TO_CHAR(create_date, 'YYYY-MM-DD'), TO_CHAR(create_time, 'HH24:MI:SS')
		FROM finkeda_settings_history
		ORDER BY id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.NewDatabaseError("finkeda history getirilemedi", err)
	}
	defer rows.Close()

	history, err := listing.Collect(rows, func(row listing.RowScanner) (*models.FinkedaSettingsHistory, error) {
		var h models.FinkedaSettingsHistory
		err := row.Scan(
			&h.ID,
			&h.SettingsID,
			&h.PreviousRupayAmount,
			&h.PreviousMasterAmount,
			&h.NewRupayAmount,
			&h.NewMasterAmount,
			&h.CreateDate,
			&h.CreateTime,
		)
		return &h, err
	})
	if err != nil {
		return nil, errors.NewDatabaseError("finkeda history satırı okunamadı", err)
	}
	return history, nil
}
