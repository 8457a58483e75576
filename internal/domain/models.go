package domain

// Product is a catalog entry keyed by its SKU. Prices are in minor
// currency units. OfferQuantity/OfferPrice are either both set or both
// nil; when set, OfferQuantity units together cost OfferPrice.
type Product struct {
	SKU           string `db:"sku" json:"sku"`
	Name          string `db:"name" json:"name"`
	UnitPrice     int    `db:"unit_price" json:"unitPrice"`
	OfferQuantity *int   `db:"offer_quantity" json:"offerQuantity,omitempty"`
	OfferPrice    *int   `db:"offer_price" json:"offerPrice,omitempty"`
}

// HasSpecialOffer is false for a non-positive offer quantity, so
// pricing can divide by it unconditionally.
func (p Product) HasSpecialOffer() bool {
	return p.OfferQuantity != nil && p.OfferPrice != nil && *p.OfferQuantity > 0
}

// Basket is an ephemeral shopping session held in the kv store.
// TotalPrice is derived: recomputed from Items on every mutation, never
// used as an input. Version increments on every successful write and
// backs the optimistic swap.
type Basket struct {
	ID         string         `json:"id"`
	Items      map[string]int `json:"items"`
	TotalPrice int            `json:"totalPrice"`
	Version    int            `json:"version"`
}

func NewBasket(id string) *Basket {
	return &Basket{ID: id, Items: map[string]int{}}
}

type Order struct {
	ID         int64  `db:"id" json:"id"`
	FinalPrice int    `db:"final_price" json:"finalPrice"`
	CreatedAt  string `db:"created_at" json:"createdAt"`
}

type OrderItem struct {
	ID         int64  `db:"id" json:"id"`
	OrderID    int64  `db:"order_id" json:"orderId"`
	ProductSKU string `db:"product_sku" json:"productSku"`
	Quantity   int    `db:"quantity" json:"quantity"`
}

// OrderSummary is what a successful checkout returns to the caller.
type OrderSummary struct {
	ID         int64       `json:"id"`
	FinalPrice int         `json:"finalPrice"`
	Items      []OrderItem `json:"items"`
	CreatedAt  string      `json:"createdAt"`
}
