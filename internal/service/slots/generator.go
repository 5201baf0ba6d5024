// Package slots перечисляет 15-минутные границы, на которых встречи могут начинаться и заканчиваться.
//
// Рабочие часы задаются в опорном часовом поясе. Каждый слот строится по настенным
// часам опорного пояса на запрошенную дату и только затем переводится в пояс
// клиента, поэтому переход на летнее время ни в одном поясе не дублирует и не теряет слоты.
package slots

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Generator строит слоты начала и окончания для календарной даты.
// Не хранит изменяемого состояния, безопасен для конкурентного использования.
type Generator struct {
	business *time.Location
	hours    domain.BusinessHours
}

// NewGenerator проверяет рабочие часы и загружает опорный часовой пояс
func NewGenerator(hours domain.BusinessHours) (*Generator, error) {
	if err := hours.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHours, err)
	}

	loc, err := time.LoadLocation(hours.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnknownTimeZone, hours.TimeZone, err)
	}

	return &Generator{business: loc, hours: hours}, nil
}

// Location возвращает опорный часовой пояс рабочих часов
func (g *Generator) Location() *time.Location {
	return g.business
}

// StartSlots возвращает слоты от открытия до закрытия (не включая) на дату date,
// переведенные в local. Из date берется только календарная дата.
func (g *Generator) StartSlots(date time.Time, local *time.Location) []time.Time {
	return g.enumerate(date, g.hours.Open, local)
}

// EndSlots возвращает слоты после start на дату date: start+step, start+2*step, ...
// до закрытия (не включая). Пусто, если start не раньше закрытия в опорном поясе.
func (g *Generator) EndSlots(date, start time.Time, local *time.Location) []time.Time {
	wall := start.In(g.business)
	offset := time.Duration(wall.Hour())*time.Hour +
		time.Duration(wall.Minute())*time.Minute +
		time.Duration(wall.Second())*time.Second

	return g.enumerate(date, offset+g.hours.Step, local)
}

// Contains сообщает, лежит ли [start, end) внутри рабочего окна одного дня
// опорного пояса
func (g *Generator) Contains(start, end time.Time) bool {
	if !start.Before(end) {
		return false
	}

	s := start.In(g.business)
	y, m, d := s.Date()
	open := g.at(y, m, d, g.hours.Open)
	closing := g.at(y, m, d, g.hours.Close)

	return !start.Before(open) && !end.After(closing)
}

// Label форматирует t в 12-часовом формате в поясе local
func (g *Generator) Label(t time.Time, local *time.Location) string {
	return t.In(local).Format(domain.SlotLabelFormat)
}

// enumerate идет по настенным часам опорного пояса от from до закрытия с шагом step
func (g *Generator) enumerate(date time.Time, from time.Duration, local *time.Location) []time.Time {
	if local == nil {
		local = g.business
	}

	if from >= g.hours.Close {
		return []time.Time{}
	}

	y, m, d := date.Date()
	result := make([]time.Time, 0, int((g.hours.Close-from)/g.hours.Step)+1)

	for offset := from; offset < g.hours.Close; offset += g.hours.Step {
		result = append(result, g.at(y, m, d, offset).In(local))
	}

	return result
}

func (g *Generator) at(y int, m time.Month, d int, offset time.Duration) time.Time {
	minutes := int(offset / time.Minute)
	seconds := int((offset % time.Minute) / time.Second)
	return time.Date(y, m, d, 0, minutes, seconds, 0, g.business)
}
