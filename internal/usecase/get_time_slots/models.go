package get_time_slots

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Kind вид запрошенных слотов
type Kind string

const (
	KindStart Kind = "start"
	KindEnd   Kind = "end"
)

// Request модель запроса слотов
type Request struct {
	Date     time.Time  // Календарная дата (используется только год, месяц, день)
	Start    *time.Time // Выбранное время начала; если указано, возвращаются слоты окончания
	TimeZone string     // IANA часовой пояс клиента; пусто - часовой пояс по умолчанию
}

// Response модель ответа со слотами
type Response struct {
	Date     time.Time
	Kind     Kind
	Location *time.Location
	Slots    []domain.TimeSlot
}
