package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"shegamart/internal/apperr"
	"shegamart/internal/domain"
)

const productColumns = `id, seller_id, title, category, price, description, image_url, created_at`

// ProductRepo represents catalogue repository.
type ProductRepo struct {
	db *pgxpool.Pool
}

// NewProductRepo creates a new ProductRepo.
func NewProductRepo(db *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{db: db}
}

func scanProduct(row scanner) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.SellerID, &p.Title, &p.Category, &p.Price, &p.Description, &p.ImageURL, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create - stores a new listing and fills its generated fields.
func (r *ProductRepo) Create(ctx context.Context, p *domain.Product) error {
	err := r.db.QueryRow(ctx, `
        INSERT INTO products (seller_id, title, category, price, description, image_url)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `,
		p.SellerID, p.Title, p.Category, p.Price, p.Description, p.ImageURL,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("seller %d: %w", p.SellerID, apperr.ErrNotFound)
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// List returns every listing, newest first.
func (r *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.Query(ctx, `
        SELECT `+productColumns+`
        FROM products
        ORDER BY created_at DESC, id DESC
    `)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}
