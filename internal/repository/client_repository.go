package repository

import (
	"context"
	"database/sql"

	"github.com/onerilhan/bookkeeping-api/internal/interfaces"
	"github.com/onerilhan/bookkeeping-api/internal/listing"
	"github.com/onerilhan/bookkeeping-api/internal/middleware/errors"
	"github.com/onerilhan/bookkeeping-api/internal/models"
)

var clientColumns = "cl.id, cl.name, cl.email, cl.mobile, cl.address, cl.notes, " +
	"(SELECT COUNT(*) FROM transactions t WHERE t.client_id = cl.id) AS transaction_count, " +
	timestampColumns("cl")

var clientListing = &listing.Spec{
	Entity:        "müşteri",
	Select:        clientColumns,
	From:          "clients cl",
	IDColumn:      "cl.id",
	NameColumn:    "cl.name",
	SearchColumns: []string{"cl.name", "cl.email", "cl.mobile", "cl.notes"},
	SortColumns: map[string]string{
		"name":              "LOWER(cl.name)",
		"create_date":       "cl.create_date",
		"transaction_count": "transaction_count",
	},
	DefaultSort:  "name",
	DefaultOrder: listing.Asc,
}

var clientSuggestions = &listing.AutocompleteSpec{
	Entity:   "müşteri",
	From:     "clients",
	IDColumn: "id",
	NameExpr: "name",
}

// ClientRepository, ClientRepositoryInterface'in somut halidir.
type ClientRepository struct {
	db *sql.DB
}

// NewClientRepository yeni bir repository oluşturur ve arayüz olarak döndürür.
func NewClientRepository(db *sql.DB) interfaces.ClientRepositoryInterface {
	return &ClientRepository{db: db}
}

func scanClient(row listing.RowScanner) (*models.Client, error) {
	var c models.Client
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.Mobile,
		&c.Address,
		&c.Notes,
		&c.TransactionCount,
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

// Create yeni müşteri oluşturur
func (r *ClientRepository) Create(ctx context.Context, req *models.CreateClientRequest) (*models.Client, error) {
	query := `
		INSERT INTO clients (name, email, mobile, address, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query, req.Name, req.Email, req.Mobile, req.Address, req.Notes).Scan(&id)
	if err != nil {
		return nil, classifyWriteError(err, "müşteri oluşturulamadı")
	}
	return r.GetByID(ctx, id)
}

// GetByID ID ile müşteri getirir
func (r *ClientRepository) GetByID(ctx context.Context, id int64) (*models.Client, error) {
	client, err := scanClient(r.db.QueryRowContext(ctx, `SELECT `+clientColumns+` FROM clients cl WHERE cl.id = $1`, id))
	if err != nil {
		return nil, notFoundOr(err, "müşteri", id)
	}
	return client, nil
}

// Update kısmi güncelleme; NULL gelen parametre eski değeri korur
func (r *ClientRepository) Update(ctx context.Context, req *models.UpdateClientRequest) (*models.Client, error) {
	query := `
		UPDATE clients SET
			name = COALESCE($1, name),
			email = COALESCE($2, email),
			mobile = COALESCE($3, mobile),
			address = COALESCE($4, address),
			notes = COALESCE($5, notes),
			` + touchColumns + `
		WHERE id = $6
	`

	result, err := r.db.ExecContext(ctx, query, req.Name, req.Email, req.Mobile, req.Address, req.Notes, req.ID)
	if err != nil {
		return nil, classifyWriteError(err, "müşteri güncellenemedi")
	}
	if err := expectOneRow(result, "müşteri", req.ID); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, req.ID)
}

// Delete müşteriyi siler
func (r *ClientRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return errors.NewDatabaseError("müşteri silinemedi", err)
	}
	return expectOneRow(result, "müşteri", id)
}

// List tüm müşteriler
func (r *ClientRepository) List(ctx context.Context) ([]*models.Client, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+clientColumns+` FROM clients cl ORDER BY LOWER(cl.name) ASC, cl.id ASC`)
	if err != nil {
		return nil, errors.NewDatabaseError("müşteriler getirilemedi", err)
	}
	defer rows.Close()

	clients, err := listing.Collect(rows, scanClient)
	if err != nil {
		return nil, errors.NewDatabaseError("müşteri satırı okunamadı", err)
	}
	return clients, nil
}

func (r *ClientRepository) Paginate(ctx context.Context, p listing.Params) (*listing.Page[*models.Client], error) {
	return listing.Run(ctx, r.db, clientListing, p, scanClient)
}

func (r *ClientRepository) Autocomplete(ctx context.Context, p listing.AutocompleteParams) (*listing.AutocompleteResult, error) {
	return listing.RunAutocomplete(ctx, r.db, clientSuggestions, p)
}

// CountTransactions müşteriye bağlı transaction sayısı
func (r *ClientRepository) CountTransactions(ctx context.Context, id int64) (int64, error) {
	return countRows(r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions WHERE client_id = $1`, id), "müşteri transaction'ları")
}
