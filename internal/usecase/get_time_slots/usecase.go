package get_time_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// UseCase use case для получения слотов начала и окончания встречи
type UseCase struct {
	generator   SlotGenerator
	defaultZone *time.Location
	logger      Logger
}

// NewUseCase создает новый экземпляр use case.
// defaultZone используется, если клиент не передал свой часовой пояс.
func NewUseCase(generator SlotGenerator, defaultZone *time.Location, logger Logger) *UseCase {
	if defaultZone == nil {
		defaultZone = time.UTC
	}
	return &UseCase{
		generator:   generator,
		defaultZone: defaultZone,
		logger:      logger,
	}
}

// Execute возвращает слоты начала на дату, либо, если указан Start, слоты окончания
// для пары (дата, начало). Результат зависит только от входных данных.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.Start != nil && req.Start.IsZero() {
		return nil, fmt.Errorf("%w: start must not be zero", ErrInvalidInput)
	}

	// 2. Определяем часовой пояс клиента
	local, err := uc.resolveZone(req.TimeZone)
	if err != nil {
		uc.logger.Warn("GetTimeSlots: %v", err)
		return nil, err
	}

	resp := &Response{Date: req.Date, Location: local}

	// 3. Генерируем слоты
	var times []time.Time
	if req.Start == nil {
		resp.Kind = KindStart
		times = uc.generator.StartSlots(req.Date, local)
	} else {
		resp.Kind = KindEnd
		times = uc.generator.EndSlots(req.Date, *req.Start, local)
	}

	// 4. Добавляем подписи для отображения
	resp.Slots = make([]domain.TimeSlot, len(times))
	for i, t := range times {
		resp.Slots[i] = domain.TimeSlot{Time: t, Label: uc.generator.Label(t, local)}
	}

	uc.logger.Info("GetTimeSlots: kind=%s, date=%s, tz=%s, slots=%d",
		resp.Kind, req.Date.Format(domain.DateFormat), local, len(resp.Slots))

	return resp, nil
}

func (uc *UseCase) resolveZone(name string) (*time.Location, error) {
	if name == "" {
		return uc.defaultZone, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTimeZone, name)
	}
	return loc, nil
}
