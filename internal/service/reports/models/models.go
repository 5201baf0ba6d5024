package models

import (
	"time"

	appointmentModels "github.com/m04kA/SMC-ScheduleService/internal/service/appointments/models"
)

// TypesResponse список различных типов встреч
type TypesResponse struct {
	Types []string `json:"types"`
}

// TypeMonthCountResponse количество встреч типа за месяц
type TypeMonthCountResponse struct {
	Type  string `json:"type"`
	Month string `json:"month"`
	Count int    `json:"count"`
}

// ContactScheduleResponse расписание контакта
type ContactScheduleResponse struct {
	ContactID    int64                                   `json:"contactId"`
	ContactName  string                                  `json:"contactName"`
	Appointments []appointmentModels.AppointmentResponse `json:"appointments"`
}

// CountryCustomersResponse количество клиентов в стране
type CountryCustomersResponse struct {
	CountryID   int64  `json:"countryId"`
	CountryName string `json:"countryName"`
	Customers   int    `json:"customers"`
}

// NewTypeMonthCount формирует ответ с названием месяца
func NewTypeMonthCount(appointmentType string, month time.Month, count int) *TypeMonthCountResponse {
	return &TypeMonthCountResponse{Type: appointmentType, Month: month.String(), Count: count}
}
