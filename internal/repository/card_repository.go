package repository

import (
	"context"
	"database/sql"

	"github.com/onerilhan/bookkeeping-api/internal/interfaces"
	"github.com/onerilhan/bookkeeping-api/internal/listing"
	"github.com/onerilhan/bookkeeping-api/internal/middleware/errors"
	"github.com/onerilhan/bookkeeping-api/internal/models"
)

var cardColumns = "c.id, c.name, (SELECT COUNT(*) FROM transactions t WHERE t.card_id = c.id) AS transaction_count, " +
	timestampColumns("c")

var cardListing = &listing.Spec{
	Entity:        "kart",
	Select:        cardColumns,
	From:          "cards c",
	IDColumn:      "c.id",
	NameColumn:    "c.name",
	SearchColumns: []string{"c.name"},
	SortColumns: map[string]string{
		"name":              "LOWER(c.name)",
		"create_date":       "c.create_date",
		"transaction_count": "transaction_count",
	},
	DefaultSort:  "name",
	DefaultOrder: listing.Asc,
}

var cardSuggestions = &listing.AutocompleteSpec{
	Entity:   "kart",
	From:     "cards",
	IDColumn: "id",
	NameExpr: "name",
}

// CardRepository, CardRepositoryInterface'in somut halidir.
type CardRepository struct {
	db *sql.DB
}

// NewCardRepository yeni bir repository oluşturur ve arayüz olarak döndürür.
func NewCardRepository(db *sql.DB) interfaces.CardRepositoryInterface {
	return &CardRepository{db: db}
}

func scanCard(row listing.RowScanner) (*models.Card, error) {
	var c models.Card
	err := row.Scan(&c.ID, &c.Name, &c.TransactionCount, &c.CreateDate, &c.CreateTime, &c.ModifyDate, &c.ModifyTime)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create yeni kart oluşturur
func (r *CardRepository) Create(ctx context.Context, req *models.CreateCardRequest) (*models.Card, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `INSERT INTO cards (name) VALUES ($1) RETURNING id`, req.Name).Scan(&id)
	if err != nil {
		return nil, classifyWriteError(err, "kart oluşturulamadı")
	}
	return r.GetByID(ctx, id)
}

// GetByID ID ile kart getirir
func (r *CardRepository) GetByID(ctx context.Context, id int64) (*models.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards c WHERE c.id = $1`

	card, err := scanCard(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFoundOr(err, "kart", id)
	}
	return card, nil
}

// Update kart adını günceller
func (r *CardRepository) Update(ctx context.Context, req *models.UpdateCardRequest) (*models.Card, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE cards SET name = $1, `+touchColumns+` WHERE id = $2`,
		req.Name, req.ID)
	if err != nil {
		return nil, classifyWriteError(err, "kart güncellenemedi")
	}
	if err := expectOneRow(result, "kart", req.ID); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, req.ID)
}

// Delete kartı siler
func (r *CardRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM cards WHERE id = $1`, id)
	if err != nil {
		return errors.NewDatabaseError("kart silinemedi", err)
	}
	return expectOneRow(result, "kart", id)
}

// List tüm kartları isim sırasıyla getirir
func (r *CardRepository) List(ctx context.Context) ([]*models.Card, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+cardColumns+` FROM cards c ORDER BY LOWER(c.name) ASC, c.id ASC`)
	if err != nil {
		return nil, errors.NewDatabaseError("kartlar getirilemedi", err)
	}
	defer rows.Close()

	cards, err := listing.Collect(rows, scanCard)
	if err != nil {
		return nil, errors.NewDatabaseError("kart satırı okunamadı", err)
	}
	return cards, nil
}

func (r *CardRepository) Paginate(ctx context.Context, p listing.Params) (*listing.Page[*models.Card], error) {
	return listing.Run(ctx, r.db, cardListing, p, scanCard)
}

func (r *CardRepository) Autocomplete(ctx context.Context, p listing.AutocompleteParams) (*listing.AutocompleteResult, error) {
	return listing.RunAutocomplete(ctx, r.db, cardSuggestions, p)
}

// CountTransactions karta bağlı transaction sayısı
func (r *CardRepository) CountTransactions(ctx context.Context, id int64) (int64, error) {
	return countRows(r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions WHERE card_id = $1`, id), "kart transaction'ları")
}
