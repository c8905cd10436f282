package analytics

import (
	"fmt"
	"sort"

	"storefront/internal/entities"
)

// IncludedOrders возвращает базу для всех денежных агрегатов: заказы,
// попавшие в период и не отмененные. Отмененный заказ не вносит ничего,
// какой бы датой он ни был создан.
func IncludedOrders(orderEntities []entities.Order, period entities.PeriodFilter) []entities.Order {
	included := make([]entities.Order, 0, len(orderEntities))
	for _, orderEntity := range orderEntities {
		if orderEntity.Status == entities.OrderCancelled {
			continue
		}
		if !period.Matches(orderEntity.CreatedAt) {
			continue
		}
		included = append(included, orderEntity)
	}
	return included
}

// RecentOrders сортирует заказы по убыванию даты создания и отдает первые
// limit. Статус не учитывается: отмененные заказы в ленте видны.
func RecentOrders(orderEntities []entities.Order, limit int) []entities.Order {
	recent := make([]entities.Order, len(orderEntities))
	copy(recent, orderEntities)

	sort.Slice(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})

	if limit > 0 && len(recent) > limit {
		recent = recent[:limit]
	}
	return recent
}

// SalesByProduct суммирует количество и выручку по каждому товару из строк
// переданных заказов (вызывающий уже отфильтровал отмененные). Результат
// отсортирован по убыванию проданных единиц; товары каталога без продаж
// идут в хвосте с нулями. limit <= 0 означает "без ограничения".
func SalesByProduct(orderEntities []entities.Order, productEntities []entities.Product, limit int) []entities.ProductSales {
	type tally struct {
		sold    int64
		revenue float64
	}

	tallies := make(map[string]*tally, len(productEntities))
	for _, orderEntity := range orderEntities {
		for _, item := range orderEntity.Items {
			t, ok := tallies[item.ProductID]
			if !ok {
				t = &tally{}
				tallies[item.ProductID] = t
			}
			t.sold += item.Quantity
			t.revenue += item.Price * float64(item.Quantity)
		}
	}

	names := make(map[string]string, len(productEntities))
	for _, productEntity := range productEntities {
		names[productEntity.ID] = productEntity.Name
	}

	sales := make([]entities.ProductSales, 0, len(tallies))
	for productID, t := range tallies {
		if t.sold == 0 {
			continue
		}
		sales = append(sales, entities.ProductSales{
			ProductID: productID,
			Name:      resolveProductName(names, productID),
			TotalSold: t.sold,
			Revenue:   t.revenue,
		})
	}

	sort.Slice(sales, func(i, j int) bool {
		return sales[i].TotalSold > sales[j].TotalSold
	})

	// добиваем хвост товарами без продаж
	for _, productEntity := range productEntities {
		if limit > 0 && len(sales) >= limit {
			break
		}
		if t, ok := tallies[productEntity.ID]; ok && t.sold > 0 {
			continue
		}
		sales = append(sales, entities.ProductSales{
			ProductID: productEntity.ID,
			Name:      resolveProductName(names, productEntity.ID),
			TotalSold: 0,
			Revenue:   0,
		})
	}

	if limit > 0 && len(sales) > limit {
		sales = sales[:limit]
	}
	return sales
}

func resolveProductName(names map[string]string, productID string) string {
	if name, ok := names[productID]; ok && name != "" {
		return name
	}

	// товар могли удалить из каталога, строки заказа остаются
	label := productID
	if len(label) > 8 {
		label = label[:8]
	}
	return fmt.Sprintf("Product %s", label)
}
