package appointments

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// weekOf возвращает неделю с воскресенья по субботу, содержащую now, в часовом поясе now
func weekOf(now time.Time) domain.Period {
	y, m, d := now.Date()
	sunday := d - int(now.Weekday())
	return domain.Period{
		From: time.Date(y, m, sunday, 0, 0, 0, 0, now.Location()),
		To:   time.Date(y, m, sunday+7, 0, 0, 0, 0, now.Location()),
	}
}

// monthOf возвращает календарный месяц, содержащий now, в часовом поясе now
func monthOf(now time.Time) domain.Period {
	y, m, _ := now.Date()
	return domain.Period{
		From: time.Date(y, m, 1, 0, 0, 0, 0, now.Location()),
		To:   time.Date(y, m+1, 1, 0, 0, 0, 0, now.Location()),
	}
}
