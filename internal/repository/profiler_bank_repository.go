package repository

import (
	"context"
	"database/sql"

	"github.com/onerilhan/bookkeeping-api/internal/interfaces"
	"github.com/onerilhan/bookkeeping-api/internal/listing"
	"github.com/onerilhan/bookkeeping-api/internal/middleware/errors"
	"github.com/onerilhan/bookkeeping-api/internal/models"
)

var profilerBankColumns = "pb.id, pb.bank_name, " +
	"(SELECT COUNT(*) FROM profiler_profiles p WHERE p.bank_id = pb.id) AS profile_count, " +
	timestampColumns("pb")

var profilerBankListing = &listing.Spec{
	Entity:        "profiler banka",
	Select:        profilerBankColumns,
	From:          "profiler_banks pb",
	IDColumn:      "pb.id",
	NameColumn:    "pb.bank_name",
	SearchColumns: []string{"pb.bank_name"},
	SortColumns: map[string]string{
		"bank_name":     "LOWER(pb.bank_name)",
		"create_date":   "pb.create_date",
		"profile_count": "profile_count",
	},
	DefaultSort:  "bank_name",
	DefaultOrder: listing.Asc,
}

var profilerBankSuggestions = &listing.AutocompleteSpec{
	Entity:   "profiler banka",
	From:     "profiler_banks",
	IDColumn: "id",
	NameExpr: "bank_name",
}

// ProfilerBankRepository profiler bankaları
type ProfilerBankRepository struct {
	db *sql.DB
}

func NewProfilerBankRepository(db *sql.DB) interfaces.ProfilerBankRepositoryInterface {
	return &ProfilerBankRepository{db: db}
}

func scanProfilerBank(row listing.RowScanner) (*models.ProfilerBank, error) {
	var b models.ProfilerBank
	err := row.Scan(&b.ID, &b.BankName, &b.ProfileCount, &b.CreateDate, &b.CreateTime, &b.ModifyDate, &b.ModifyTime)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *ProfilerBankRepository) Create(ctx context.Context, req *models.CreateProfilerBankRequest) (*models.ProfilerBank, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `INSERT INTO profiler_banks (bank_name) VALUES ($1) RETURNING id`, req.BankName).Scan(&id)
	if err != nil {
		return nil, classifyWriteError(err, "profiler banka oluşturulamadı")
	}
	return r.GetByID(ctx, id)
}

func (r *ProfilerBankRepository) GetByID(ctx context.Context, id int64) (*models.ProfilerBank, error) {
	bank, err := scanProfilerBank(r.db.QueryRowContext(ctx,
		`SELECT `+profilerBankColumns+` FROM profiler_banks pb WHERE pb.id = $1`, id))
	if err != nil {
		return nil, notFoundOr(err, "profiler banka", id)
	}
	return bank, nil
}

func (r *ProfilerBankRepository) Update(ctx context.Context, req *models.UpdateProfilerBankRequest) (*models.ProfilerBank, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE profiler_banks SET bank_name = $1, `+touchColumns+` WHERE id = $2`,
		req.BankName, req.ID)
	if err != nil {
		return nil, classifyWriteError(err, "profiler banka güncellenemedi")
	}
	if err := expectOneRow(result, "profiler banka", req.ID); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, req.ID)
}

func (r *ProfilerBankRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM profiler_banks WHERE id = $1`, id)
	if err != nil {
		return errors.NewDatabaseError("profiler banka silinemedi", err)
	}
	return expectOneRow(result, "profiler banka", id)
}

func (r *ProfilerBankRepository) List(ctx context.Context) ([]*models.ProfilerBank, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+profilerBankColumns+` FROM profiler_banks pb ORDER BY LOWER(pb.bank_name) ASC, pb.id ASC`)
	if err != nil {
		return nil, errors.NewDatabaseError("profiler bankalar getirilemedi", err)
	}
	defer rows.Close()

	banks, err := listing.Collect(rows, scanProfilerBank)
	if err != nil {
		return nil, errors.NewDatabaseError("profiler banka satırı okunamadı", err)
	}
	return banks, nil
}

func (r *ProfilerBankRepository) Paginate(ctx context.Context, p listing.Params) (*listing.Page[*models.ProfilerBank], error) {
	return listing.Run(ctx, r.db, profilerBankListing, p, scanProfilerBank)
}

func (r *ProfilerBankRepository) Autocomplete(ctx context.Context, p listing.AutocompleteParams) (*listing.AutocompleteResult, error) {
	return listing.RunAutocomplete(ctx, r.db, profilerBankSuggestions, p)
}

// CountProfiles bankaya bağlı profile sayısı
func (r *ProfilerBankRepository) CountProfiles(ctx context.Context, id int64) (int64, error) {
	return countRows(r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM profiler_profiles WHERE bank_id = $1`, id), "banka profilleri")
}
