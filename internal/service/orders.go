package service

import (
	"sort"

	"github.com/noah-isme/tinta-academy-api/internal/dto"
	"github.com/noah-isme/tinta-academy-api/internal/models"
)

// DefaultUYUPerUSD converts peso amounts when no rate is configured.
const DefaultUYUPerUSD = 40.0

// SummarizeOrders sums paid orders, dividing UYU amounts by uyuPerUSD.
func SummarizeOrders(orders []models.Order, uyuPerUSD float64) dto.OrderSummary {
	if uyuPerUSD <= 0 {
		uyuPerUSD = DefaultUYUPerUSD
	}
	summary := dto.OrderSummary{Currency: string(models.CurrencyUSD), UYUPerUSD: uyuPerUSD}
	for _, o := range orders {
		if o.Status != models.OrderPaid {
			continue
		}
		summary.PaidCount++
		if o.Currency == models.CurrencyUYU {
			summary.TotalPaid += o.Amount / uyuPerUSD
			continue
		}
		summary.TotalPaid += o.Amount
	}
	summary.Label = "$" + formatWhole(summary.TotalPaid) + " USD"
	return summary
}

// SortOrders returns orders newest first; ties keep input order.
func SortOrders(orders []models.Order) []models.Order {
	out := append([]models.Order(nil), orders...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

var orderStatusLabels = map[models.OrderStatus]string{
	models.OrderCreated:     "Creada",
	models.OrderPending:     "Pendiente",
	models.OrderPaymentSent: "Pago enviado",
	models.OrderPaid:        "Pagado",
	models.OrderRejected:    "Rechazado",
	models.OrderRefunded:    "Reembolsado",
	models.OrderCancelled:   "Cancelado",
}

var paymentMethodLabels = map[models.PaymentMethod]string{
	models.PaymentMercadoPago: "MercadoPago",
	models.PaymentTransfer:    "Transferencia",
	models.PaymentFree:        "Gratuito",
}

// OrderStatusLabel is the Spanish status badge text.
func OrderStatusLabel(s models.OrderStatus) string {
	if label, ok := orderStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// PaymentMethodLabel is the Spanish payment method text.
func PaymentMethodLabel(m models.PaymentMethod) string {
	if label, ok := paymentMethodLabels[m]; ok {
		return label
	}
	return string(m)
}

// AmountLabel renders an order amount; zero is shown as free.
func AmountLabel(amount float64, currency models.Currency) string {
	if amount == 0 {
		return "Gratis"
	}
	if currency == models.CurrencyUYU {
		return formatUYU(amount)
	}
	return formatUSD(amount)
}
