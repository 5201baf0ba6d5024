package reports

import (
	"bytes"
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/service/reports/models"
)

type ReportService interface {
	AppointmentTypes(ctx context.Context) (*models.TypesResponse, error)
	CountByTypeAndMonth(ctx context.Context, appointmentType string, month time.Month) (*models.TypeMonthCountResponse, error)
	ContactSchedule(ctx context.Context, contactID int64, loc *time.Location) (*models.ContactScheduleResponse, error)
	CustomersByCountry(ctx context.Context, countryID int64) (*models.CountryCustomersResponse, error)
	ExportWorkbook(ctx context.Context, year int) (*bytes.Buffer, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
