package products

import (
	"encoding/json"
	"fmt"

	"storefront/internal/entities"
)

func ToDomain(id string, doc []byte) (*entities.Product, error) {
	var productDoc ProductDoc
	if err := json.Unmarshal(doc, &productDoc); err != nil {
		return nil, fmt.Errorf("decode product document %s: %w", id, err)
	}

	return &entities.Product{
		ID:         id,
		Name:       productDoc.Name,
		Price:      productDoc.Price,
		Category:   entities.ProductCategoryType(productDoc.Category),
		Images:     productDoc.Images,
		IsOnSale:   productDoc.IsOnSale,
		IsFeatured: productDoc.IsFeatured,
		Tags:       productDoc.Tags,
	}, nil
}
