package products

// ProductDoc повторяет строение документа в коллекции products.
type ProductDoc struct {
	Name       string   `json:"name"`
	Price      float64  `json:"price"`
	Category   string   `json:"category"`
	Images     []string `json:"images"`
	IsOnSale   bool     `json:"isOnSale"`
	IsFeatured bool     `json:"isFeatured"`
	Tags       []string `json:"tags"`
}
