package reports

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
)

const (
	typesSheet        = "Types by month"
	maxSheetNameRunes = 31
	scheduleTimeFmt   = "2006-01-02 15:04"
)

var sheetNameReplacer = strings.NewReplacer(
	":", " ", "\\", " ", "/", " ", "?", " ", "*", " ", "[", "(", "]", ")",
)

// ExportWorkbook строит xlsx-книгу за год: лист с количеством встреч по типам и месяцам
// и по одному листу с расписанием на каждый контакт
func (s *Service) ExportWorkbook(ctx context.Context, year int) (*bytes.Buffer, error) {
	if year < 1 || year > 9999 {
		return nil, fmt.Errorf("%w: year must be between 1 and 9999", ErrInvalidInput)
	}

	s.logger.Info("ExportWorkbook: building workbook for year=%d, tz=%s", year, s.zone)

	// 1. Собираем данные
	counts, err := s.appointmentRepo.CountByTypePerMonth(ctx, year, s.zone.String())
	if err != nil {
		s.logger.Error("ExportWorkbook: failed to count appointments: %v", err)
		return nil, fmt.Errorf("%w: ExportWorkbook - count appointments: %v", ErrInternal, err)
	}

	contacts, err := s.contactRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("ExportWorkbook: failed to get contacts: %v", err)
		return nil, fmt.Errorf("%w: ExportWorkbook - get contacts: %v", ErrInternal, err)
	}

	period := domain.Period{
		From: time.Date(year, time.January, 1, 0, 0, 0, 0, s.zone),
		To:   time.Date(year+1, time.January, 1, 0, 0, 0, 0, s.zone),
	}

	// 2. Строим книгу
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Warn("ExportWorkbook: failed to close workbook: %v", err)
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(0), typesSheet); err != nil {
		return nil, fmt.Errorf("%w: ExportWorkbook - rename sheet: %v", ErrInternal, err)
	}
	if err := writeTypeMatrix(f, counts); err != nil {
		s.logger.Error("ExportWorkbook: failed to write type matrix: %v", err)
		return nil, fmt.Errorf("%w: ExportWorkbook - write type matrix: %v", ErrInternal, err)
	}

	for _, contact := range contacts {
		appointments, err := s.appointmentRepo.List(ctx, domain.AppointmentFilter{
			ContactID: ptr.Ptr(contact.ID),
			Period:    &period,
		})
		if err != nil {
			s.logger.Error("ExportWorkbook: failed to list appointments for contact id=%d: %v", contact.ID, err)
			return nil, fmt.Errorf("%w: ExportWorkbook - list appointments: %v", ErrInternal, err)
		}

		if err := writeSchedule(f, scheduleSheetName(contact), appointments, s.zone); err != nil {
			s.logger.Error("ExportWorkbook: failed to write schedule for contact id=%d: %v", contact.ID, err)
			return nil, fmt.Errorf("%w: ExportWorkbook - write schedule: %v", ErrInternal, err)
		}
	}

	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("ExportWorkbook: failed to serialize workbook: %v", err)
		return nil, fmt.Errorf("%w: ExportWorkbook - write buffer: %v", ErrInternal, err)
	}

	s.logger.Info("ExportWorkbook: workbook for year=%d built, %d contacts, %d bytes", year, len(contacts), buf.Len())
	return buf, nil
}

// writeTypeMatrix пишет таблицу "тип x месяц" с итогом по строке
func writeTypeMatrix(f *excelize.File, counts []domain.TypeMonthCount) error {
	header := make([]interface{}, 0, 14)
	header = append(header, "Type")
	for m := time.January; m <= time.December; m++ {
		header = append(header, m.String())
	}
	header = append(header, "Total")
	if err := f.SetSheetRow(typesSheet, "A1", &header); err != nil {
		return err
	}

	byType := make(map[string]*[12]int)
	for _, c := range counts {
		if c.Month < time.January || c.Month > time.December {
			continue
		}
		row, ok := byType[c.Type]
		if !ok {
			row = &[12]int{}
			byType[c.Type] = row
		}
		row[c.Month-1] += c.Count
	}

	types := make([]string, 0, len(byType))
	for t := range byType {
		types = append(types, t)
	}
	sort.Strings(types)

	for i, t := range types {
		values := make([]interface{}, 0, 14)
		values = append(values, t)
		total := 0
		for _, n := range byType[t] {
			values = append(values, n)
			total += n
		}
		values = append(values, total)

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(typesSheet, cell, &values); err != nil {
			return err
		}
	}

	return f.SetColWidth(typesSheet, "A", "A", 24)
}

// writeSchedule создает лист с расписанием контакта
func writeSchedule(f *excelize.File, sheet string, appointments []*domain.Appointment, loc *time.Location) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	header := []interface{}{"ID", "Title", "Type", "Description", "Start", "End", "Customer ID"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, a := range appointments {
		row := []interface{}{
			a.ID,
			a.Title,
			a.Type,
			a.Description,
			a.Start.In(loc).Format(scheduleTimeFmt),
			a.End.In(loc).Format(scheduleTimeFmt),
			a.CustomerID,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheet, "B", "F", 20)
}

// scheduleSheetName строит уникальное допустимое имя листа для контакта
func scheduleSheetName(contact *domain.Contact) string {
	name := fmt.Sprintf("%d %s", contact.ID, sheetNameReplacer.Replace(contact.Name))
	runes := []rune(strings.TrimSpace(name))
	if len(runes) > maxSheetNameRunes {
		runes = runes[:maxSheetNameRunes]
	}
	return string(runes)
}
