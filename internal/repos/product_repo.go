package repos

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"quickbasket/internal/domain"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

// Get returns ok=false when no row exists for the SKU.
func (r *ProductRepo) Get(sku string) (domain.Product, bool, error) {
	var p domain.Product
	err := r.db.Get(&p, `
	  SELECT sku, name, unit_price, offer_quantity, offer_price
	  FROM products
	  WHERE sku = ?
	`, sku)
	if err == sql.ErrNoRows {
		return domain.Product{}, false, nil
	}
	if err != nil {
		return domain.Product{}, false, err
	}
	return p, true, nil
}

// Upsert creates or fully replaces the catalog entry for p.SKU.
func (r *ProductRepo) Upsert(p domain.Product) error {
	_, err := r.db.Exec(`
	  INSERT INTO products(sku, name, unit_price, offer_quantity, offer_price)
	  VALUES(?, ?, ?, ?, ?)
	  ON CONFLICT(sku) DO UPDATE SET
	    name = excluded.name,
	    unit_price = excluded.unit_price,
	    offer_quantity = excluded.offer_quantity,
	    offer_price = excluded.offer_price,
	    updated_at = CURRENT_TIMESTAMP
	`, p.SKU, p.Name, p.UnitPrice, p.OfferQuantity, p.OfferPrice)
	return err
}

// Delete is idempotent; deleting an unknown SKU is not an error.
func (r *ProductRepo) Delete(sku string) error {
	_, err := r.db.Exec(`DELETE FROM products WHERE sku = ?`, sku)
	return err
}
