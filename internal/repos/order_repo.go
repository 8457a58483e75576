package repos

import (
	"github.com/jmoiron/sqlx"

	"quickbasket/internal/domain"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

// CreateWithItems persists an order header and one line per basket
// entry in a single transaction, so a header never exists without its
// items. Returns the stored header and lines.
func (r *OrderRepo) CreateWithItems(finalPrice int, items map[string]int) (domain.Order, []domain.OrderItem, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return domain.Order{}, nil, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`
	  INSERT INTO orders(final_price, created_at)
	  VALUES(?, CURRENT_TIMESTAMP)
	`, finalPrice)
	if err != nil {
		return domain.Order{}, nil, err
	}
	orderID, err := res.LastInsertId()
	if err != nil {
		return domain.Order{}, nil, err
	}

	lines := make([]domain.OrderItem, 0, len(items))
	for sku, qty := range items {
		res, err := tx.Exec(`
		  INSERT INTO order_items(order_id, product_sku, quantity)
		  VALUES(?, ?, ?)
		`, orderID, sku, qty)
		if err != nil {
			return domain.Order{}, nil, err
		}
		itemID, err := res.LastInsertId()
		if err != nil {
			return domain.Order{}, nil, err
		}
		lines = append(lines, domain.OrderItem{ID: itemID, OrderID: orderID, ProductSKU: sku, Quantity: qty})
	}

	var createdAt string
	if err := tx.Get(&createdAt, `SELECT created_at FROM orders WHERE id = ?`, orderID); err != nil {
		return domain.Order{}, nil, err
	}

	if err := tx.Commit(); err != nil {
		return domain.Order{}, nil, err
	}
	return domain.Order{ID: orderID, FinalPrice: finalPrice, CreatedAt: createdAt}, lines, nil
}

// Get loads a persisted order and its lines.
func (r *OrderRepo) Get(orderID int64) (domain.Order, []domain.OrderItem, error) {
	var o domain.Order
	if err := r.db.Get(&o, `
	  SELECT id, final_price, created_at FROM orders WHERE id = ?
	`, orderID); err != nil {
		return domain.Order{}, nil, err
	}

	var items []domain.OrderItem
	if err := r.db.Select(&items, `
	  SELECT id, order_id, product_sku, quantity
	  FROM order_items
	  WHERE order_id = ?
	  ORDER BY product_sku
	`, orderID); err != nil {
		return domain.Order{}, nil, err
	}

	return o, items, nil
}
