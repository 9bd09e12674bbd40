package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/tinta-academy-api/internal/models"
)

func ordersFixture() []models.Order {
	day := func(d int) time.Time { return time.Date(2024, 10, d, 10, 0, 0, 0, time.UTC) }
	return []models.Order{
		{ID: "ord-1", Amount: 290, Currency: models.CurrencyUSD, PaymentMethod: models.PaymentMercadoPago, Status: models.OrderPaid, CreatedAt: day(1)},
		{ID: "ord-2", Amount: 0, Currency: models.CurrencyUSD, PaymentMethod: models.PaymentFree, Status: models.OrderPaid, CreatedAt: day(20)},
		{ID: "ord-3", Amount: 1800, Currency: models.CurrencyUYU, PaymentMethod: models.PaymentTransfer, Status: models.OrderPaid, CreatedAt: day(5)},
		{ID: "ord-4", Amount: 2200, Currency: models.CurrencyUYU, PaymentMethod: models.PaymentTransfer, Status: models.OrderPaymentSent, CreatedAt: day(20)},
	}
}

func TestSummarizeOrders(t *testing.T) {
	summary := SummarizeOrders(ordersFixture(), DefaultUYUPerUSD)

	assert.Equal(t, 3, summary.PaidCount)
	assert.InDelta(t, 335.0, summary.TotalPaid, 1e-9)
	assert.Equal(t, "USD", summary.Currency)
	assert.Equal(t, "$335 USD", summary.Label)
}

func TestSummarizeOrdersRate(t *testing.T) {
	assert.InDelta(t, 330.0, SummarizeOrders(ordersFixture(), 45).TotalPaid, 1e-9)
	assert.Equal(t, DefaultUYUPerUSD, SummarizeOrders(ordersFixture(), 0).UYUPerUSD)
	assert.Equal(t, "$0 USD", SummarizeOrders(nil, 40).Label)
}

func TestSortOrders(t *testing.T) {
	orders := ordersFixture()

	sorted := SortOrders(orders)

	ids := make([]string, 0, len(sorted))
	for _, o := range sorted {
		ids = append(ids, o.ID)
	}
	assert.Equal(t, []string{"ord-2", "ord-4", "ord-3", "ord-1"}, ids)
	assert.Equal(t, "ord-1", orders[0].ID)
}

func TestOrderLabels(t *testing.T) {
	assert.Equal(t, "Pago enviado", OrderStatusLabel(models.OrderPaymentSent))
	assert.Equal(t, "Pagado", OrderStatusLabel(models.OrderPaid))
	assert.Equal(t, "disputed", OrderStatusLabel(models.OrderStatus("disputed")))
	assert.Equal(t, "Transferencia", PaymentMethodLabel(models.PaymentTransfer))
	assert.Equal(t, "Gratis", AmountLabel(0, models.CurrencyUSD))
	assert.Equal(t, "US$ 290", AmountLabel(290, models.CurrencyUSD))
	assert.Contains(t, AmountLabel(1800, models.CurrencyUYU), "$ ")
}
