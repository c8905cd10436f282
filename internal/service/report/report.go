package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"storefront/internal/entities"
	"storefront/internal/service/analytics"
)

const (
	sheetSummary      = "Summary"
	sheetOrders       = "Orders"
	sheetProductSales = "Product Sales"
)

// File — готовая к отдаче книга.
type File struct {
	Name string
	Data []byte
}

type Report struct {
	orderRepository   OrderRepository
	userRepository    UserRepository
	productRepository ProductRepository
	txManager         TxManager
}

func New(
	orderRepository OrderRepository,
	userRepository UserRepository,
	productRepository ProductRepository,
	txManager TxManager,
) *Report {
	return &Report{
		orderRepository:   orderRepository,
		userRepository:    userRepository,
		productRepository: productRepository,
		txManager:         txManager,
	}
}

// Build собирает xlsx-отчет о продажах за период. Три коллекции читаются
// внутри одной serializable-транзакции, чтобы листы не разъехались между
// собой, если кто-то пишет в магазин прямо во время выгрузки.
func (s *Report) Build(ctx context.Context, callerID string, period entities.PeriodFilter) (*File, error) {
	if err := analytics.ValidatePeriod(period); err != nil {
		return nil, err
	}

	var (
		orderEntities   []entities.Order
		userEntities    []entities.User
		productEntities []entities.Product
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		if orderEntities, err = s.orderRepository.GetAll(ctx); err != nil {
			return fmt.Errorf("failed to load orders: %w", err)
		}
		if userEntities, err = s.userRepository.GetAll(ctx); err != nil {
			return fmt.Errorf("failed to load users: %w", err)
		}
		if productEntities, err = s.productRepository.GetAll(ctx); err != nil {
			return fmt.Errorf("failed to load products: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	included := analytics.IncludedOrders(orderEntities, period)

	data, err := buildWorkbook(included, userEntities, productEntities, callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to export report: %w", err)
	}

	return &File{
		Name: fmt.Sprintf("sales-report-%s.xlsx", time.Now().UTC().Format("2006-01-02")),
		Data: data,
	}, nil
}

func buildWorkbook(
	included []entities.Order,
	userEntities []entities.User,
	productEntities []entities.Product,
	callerID string,
) ([]byte, error) {
	workbook := excelize.NewFile()
	defer workbook.Close()

	if err := workbook.SetSheetName("Sheet1", sheetSummary); err != nil {
		return nil, err
	}
	if err := writeSummarySheet(workbook, included, userEntities, productEntities, callerID); err != nil {
		return nil, err
	}
	if err := writeOrdersSheet(workbook, included); err != nil {
		return nil, err
	}
	if err := writeProductSalesSheet(workbook, included, productEntities); err != nil {
		return nil, err
	}

	buf, err := workbook.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSummarySheet(
	workbook *excelize.File,
	included []entities.Order,
	userEntities []entities.User,
	productEntities []entities.Product,
	callerID string,
) error {
	var totalRevenue float64
	for _, orderEntity := range included {
		totalRevenue += orderEntity.Total
	}

	var totalCustomers int64
	for _, userEntity := range userEntities {
		if userEntity.Role == entities.RoleUser && userEntity.ID != callerID {
			totalCustomers++
		}
	}

	// средний чек: при нуле заказов отдаем 0, а не делим на ноль
	var averageOrderValue float64
	if len(included) > 0 {
		averageOrderValue = totalRevenue / float64(len(included))
	}

	rows := [][]interface{}{
		{"Metric", "Value"},
		{"Total Revenue", totalRevenue},
		{"Total Orders", len(included)},
		{"Total Customers", totalCustomers},
		{"Total Products", len(productEntities)},
		{"Average Order Value", averageOrderValue},
	}
	return writeRows(workbook, sheetSummary, rows)
}

func writeOrdersSheet(workbook *excelize.File, included []entities.Order) error {
	if _, err := workbook.NewSheet(sheetOrders); err != nil {
		return err
	}

	rows := make([][]interface{}, 0, len(included)+1)
	rows = append(rows, []interface{}{
		"Order ID", "Date", "Customer", "Email", "Phone", "Address",
		"Payment Method", "Status", "Subtotal", "Shipping", "Total", "Items",
	})

	for _, orderEntity := range included {
		rows = append(rows, []interface{}{
			orderEntity.ID,
			formatDate(orderEntity.CreatedAt),
			fallbackNA(orderEntity.ShippingAddress.Name),
			fallbackNA(orderEntity.Email),
			fallbackNA(orderEntity.ShippingAddress.Phone),
			fallbackNA(formatAddress(orderEntity.ShippingAddress)),
			fallbackNA(orderEntity.PaymentMethod),
			orderEntity.Status.String(),
			orderEntity.Subtotal,
			orderEntity.ShippingCost,
			orderEntity.Total,
			len(orderEntity.Items),
		})
	}
	return writeRows(workbook, sheetOrders, rows)
}

func writeProductSalesSheet(workbook *excelize.File, included []entities.Order, productEntities []entities.Product) error {
	if _, err := workbook.NewSheet(sheetProductSales); err != nil {
		return err
	}

	sales := analytics.SalesByProduct(included, productEntities, 0)

	rows := make([][]interface{}, 0, len(sales)+1)
	rows = append(rows, []interface{}{"Product ID", "Name", "Units Sold", "Revenue"})
	for _, productSales := range sales {
		rows = append(rows, []interface{}{
			productSales.ProductID,
			productSales.Name,
			productSales.TotalSold,
			productSales.Revenue,
		})
	}
	return writeRows(workbook, sheetProductSales, rows)
}

func writeRows(workbook *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := workbook.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format("2006-01-02 15:04")
}

func formatAddress(address entities.ShippingAddress) string {
	parts := make([]string, 0, 4)
	for _, part := range []string{address.Street, address.City, address.State, address.PostalCode} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}

func fallbackNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}
