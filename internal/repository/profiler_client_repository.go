package repository

import (
	"context"
	"database/sql"

	"github.com/onerilhan/bookkeeping-api/internal/interfaces"
	"github.com/onerilhan/bookkeeping-api/internal/listing"
	"github.com/onerilhan/bookkeeping-api/internal/middleware/errors"
	"github.com/onerilhan/bookkeeping-api/internal/models"
)

var profilerClientColumns = "pc.id, pc.name, pc.email, pc.mobile, pc.aadhaar_card_number, pc.notes, " +
	"(SELECT COUNT(*) FROM profiler_profiles p WHERE p.client_id = pc.id) AS profile_count, " +
	timestampColumns("pc")

var profilerClientListing = &listing.Spec{
	Entity:        "profiler müşteri",
	Select:        profilerClientColumns,
	From:          "profiler_clients pc",
	IDColumn:      "pc.id",
	NameColumn:    "pc.name",
	SearchColumns: []string{"pc.name", "pc.email", "pc.mobile", "pc.aadhaar_card_number", "pc.notes"},
	SortColumns: map[string]string{
		"name":          "LOWER(pc.name)",
		"create_date":   "pc.create_date",
		"profile_count": "profile_count",
	},
	DefaultSort:  "name",
	DefaultOrder: listing.Asc,
}

var profilerClientSuggestions = &listing.AutocompleteSpec{
	Entity:   "profiler müşteri",
	From:     "profiler_clients",
	IDColumn: "id",
	NameExpr: "name",
}

// ProfilerClientRepository, ProfilerClientRepositoryInterface'in somut halidir.
type ProfilerClientRepository struct {
	db *sql.DB
}

// NewProfilerClientRepository yeni bir repository oluşturur.
func NewProfilerClientRepository(db *sql.DB) interfaces.ProfilerClientRepositoryInterface {
	return &ProfilerClientRepository{db: db}
}

func scanProfilerClient(row listing.RowScanner) (*models.ProfilerClient, error) {
	var c models.ProfilerClient
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.Mobile,
		&c.AadhaarCardNumber,
		&c.Notes,
		&c.ProfileCount,
		&c.CreateDate,
		&c.CreateTime,
		&c.ModifyDate,
		&c.ModifyTime,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create yeni profiler müşterisi oluşturur
func (r *ProfilerClientRepository) Create(ctx context.Context, req *models.CreateProfilerClientRequest) (*models.ProfilerClient, error) {
	query := `
		INSERT INTO profiler_clients (name, email, mobile, aadhaar_card_number, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query, req.Name, req.Email, req.Mobile, req.AadhaarCardNumber, req.Notes).Scan(&id)
	if err != nil {
		return nil, classifyWriteError(err, "profiler müşteri oluşturulamadı")
	}
	return r.GetByID(ctx, id)
}

// GetByID ID ile profiler müşterisi getirir
func (r *ProfilerClientRepository) GetByID(ctx context.Context, id int64) (*models.ProfilerClient, error) {
	client, err := scanProfilerClient(r.db.QueryRowContext(ctx,
		`SELECT `+profilerClientColumns+` FROM profiler_clients pc WHERE pc.id = $1`, id))
	if err != nil {
		return nil, notFoundOr(err, "profiler müşteri", id)
	}
	return client, nil
}

// Update kısmi güncelleme
func (r *ProfilerClientRepository) Update(ctx context.Context, req *models.UpdateProfilerClientRequest) (*models.ProfilerClient, error) {
	query := `
		UPDATE profiler_clients SET
			name = COALESCE($1, name),
			email = COALESCE($2, email),
			mobile = COALESCE($3, mobile),
			aadhaar_card_number = COALESCE($4, aadhaar_card_number),
			notes = COALESCE($5, notes),
			` + touchColumns + `
		WHERE id = $6
	`

	result, err := r.db.ExecContext(ctx, query, req.Name, req.Email, req.Mobile, req.AadhaarCardNumber, req.Notes, req.ID)
	if err != nil {
		return nil, classifyWriteError(err, "profiler müşteri güncellenemedi")
	}
	if err := expectOneRow(result, "profiler müşteri", req.ID); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, req.ID)
}

// Delete profiler müşterisini siler
func (r *ProfilerClientRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM profiler_clients WHERE id = $1`, id)
	if err != nil {
		return errors.NewDatabaseError("profiler müşteri silinemedi", err)
	}
	return expectOneRow(result, "profiler müşteri", id)
}

// List tüm profiler müşterileri
func (r *ProfilerClientRepository) List(ctx context.Context) ([]*models.ProfilerClient, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+profilerClientColumns+` FROM profiler_clients pc ORDER BY LOWER(pc.name) ASC, pc.id ASC`)
	if err != nil {
		return nil, errors.NewDatabaseError("profiler müşteriler getirilemedi", err)
	}
	defer rows.Close()

	clients, err := listing.Collect(rows, scanProfilerClient)
	if err != nil {
		return nil, errors.NewDatabaseError("profiler müşteri satırı okunamadı", err)
	}
	return clients, nil
}

// Paginate sayfalı liste
func (r *ProfilerClientRepository) Paginate(ctx context.Context, p listing.Params) (*listing.Page[*models.ProfilerClient], error) {
	return listing.Run(ctx, r.db, profilerClientListing, p, scanProfilerClient)
}

// Autocomplete isim önerileri
func (r *ProfilerClientRepository) Autocomplete(ctx context.Context, p listing.AutocompleteParams) (*listing.AutocompleteResult, error) {
	return listing.RunAutocomplete(ctx, r.db, profilerClientSuggestions, p)
}

// CountProfiles müşteriye bağlı profile sayısı
func (r *ProfilerClientRepository) CountProfiles(ctx context.Context, id int64) (int64, error) {
	return countRows(r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM profiler_profiles WHERE client_id = $1`, id), "müşteri profilleri")
}
