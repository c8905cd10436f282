package entities

type Product struct {
	ID         string
	Name       string
	Price      float64
	Category   ProductCategoryType
	Images     []string
	IsOnSale   bool
	IsFeatured bool
	Tags       []string
}

type ProductCategoryType string

const (
	CategoryFruits     ProductCategoryType = "fruits"
	CategoryVegetables ProductCategoryType = "vegetables"
	CategoryDairy      ProductCategoryType = "dairy"
	CategoryBakery     ProductCategoryType = "bakery"
	CategoryMeat       ProductCategoryType = "meat"
	CategoryPantry     ProductCategoryType = "pantry"
	CategoryBeverages  ProductCategoryType = "beverages"
	CategorySnacks     ProductCategoryType = "snacks"
)

func (c ProductCategoryType) String() string {
	return string(c)
}

// ProductSales — производный агрегат "сколько продано" по одному товару.
type ProductSales struct {
	ProductID string
	Name      string
	TotalSold int64
	Revenue   float64
}
