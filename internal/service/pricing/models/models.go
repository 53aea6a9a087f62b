package models

import (
	"time"

	"github.com/hartvaneindhoven/HVE-BookingService/internal/domain"
)

// QuoteRequest запрос на расчёт цены
type QuoteRequest struct {
	ActivityID      int64     // ID активности
	StartAt         time.Time // Момент начала (UTC) — определяет peak/off-peak
	Size            int       // Размер группы
	DurationMinutes *int      // Длительность; nil = длительность активности по умолчанию
	AddOnIDs        []int64   // Выбранные дополнения в порядке запроса
}

// QuoteItem одна строка расчёта
type QuoteItem struct {
	Label string
	Cents int64
}

// QuoteResponse рассчитанная цена с разбивкой по строкам
type QuoteResponse struct {
	ActivityID      int64
	ActivityName    string
	StartAt         time.Time
	Size            int
	DurationMinutes int
	Peak            bool

	BaseCents   int64
	AddOnsCents int64
	TotalCents  int64
	Items       []QuoteItem
}

// ToDomainQuote конвертирует ответ в доменную модель
func (r *QuoteResponse) ToDomainQuote() *domain.Quote {
	items := make([]domain.QuoteItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = domain.QuoteItem{Label: item.Label, Cents: item.Cents}
	}
	return &domain.Quote{
		BaseCents:   r.BaseCents,
		AddOnsCents: r.AddOnsCents,
		TotalCents:  r.TotalCents,
		Items:       items,
	}
}
