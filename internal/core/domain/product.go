package domain

// Product is a catalog item. Stock and price are not validated beyond
// presence at the transport layer; the store keeps whatever was supplied.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
}
