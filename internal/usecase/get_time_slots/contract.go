package get_time_slots

import "time"

// SlotGenerator генератор слотов рабочего времени
type SlotGenerator interface {
	StartSlots(date time.Time, local *time.Location) []time.Time
	EndSlots(date, start time.Time, local *time.Location) []time.Time
	Label(t time.Time, local *time.Location) string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
