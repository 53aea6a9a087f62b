package get_available_slots

import (
	"time"

	"github.com/hartvaneindhoven/HVE-BookingService/pkg/types"
)

// Request запрос доступных слотов на день
type Request struct {
	ActivityID      int64
	Date            time.Time // Календарный день площадки
	DurationMinutes *int      // nil = длительность активности по умолчанию
	PartySize       *int      // nil = без фильтра по вместимости
}

// Slot один доступный слот старта
type Slot struct {
	StartTime types.TimeString // Время начала на стене площадки
	Remaining int              // Сколько ресурсов ещё свободно на этот слот
	Total     int              // Сколько ресурсов вообще подходит под запрос
}

// Response доступные слоты за день
type Response struct {
	ActivityID      int64
	Date            time.Time
	DurationMinutes int
	Slots           []Slot
}
