package models

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

var (
	// ErrInvalidCustomer возвращается, когда поля клиента не прошли проверку
	ErrInvalidCustomer = errors.New("invalid customer")
)

// Request модели

// CustomerRequest запрос на создание или изменение клиента
type CustomerRequest struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	PostalCode string `json:"postalCode"`
	Phone      string `json:"phone"`
	DivisionID int64  `json:"divisionId"`
}

// Validate проверяет, что все поля заполнены и не превышают допустимую длину
func (r *CustomerRequest) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"name", r.Name, domain.MaxNameLength},
		{"address", r.Address, domain.MaxAddressLength},
		{"postalCode", r.PostalCode, domain.MaxPostalCodeLength},
		{"phone", r.Phone, domain.MaxPhoneLength},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidCustomer, f.name)
		}
		if utf8.RuneCountInString(f.value) > f.max {
			return fmt.Errorf("%w: %s is longer than %d characters", ErrInvalidCustomer, f.name, f.max)
		}
	}
	if r.DivisionID <= 0 {
		return fmt.Errorf("%w: divisionId must be positive", ErrInvalidCustomer)
	}
	return nil
}

// ToDomain конвертирует запрос в domain модель
func (r *CustomerRequest) ToDomain(id int64, userName string) *domain.Customer {
	return &domain.Customer{
		ID:            id,
		Name:          strings.TrimSpace(r.Name),
		Address:       strings.TrimSpace(r.Address),
		PostalCode:    strings.TrimSpace(r.PostalCode),
		Phone:         strings.TrimSpace(r.Phone),
		DivisionID:    r.DivisionID,
		CreatedBy:     userName,
		LastUpdatedBy: userName,
	}
}

// Response модели

// CustomerResponse ответ с данными клиента
type CustomerResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	PostalCode   string `json:"postalCode"`
	Phone        string `json:"phone"`
	DivisionID   int64  `json:"divisionId"`
	DivisionName string `json:"divisionName,omitempty"`
	CountryID    int64  `json:"countryId,omitempty"`
	CountryName  string `json:"countryName,omitempty"`
	CreatedBy    string `json:"createdBy"`
	LastUpdateBy string `json:"lastUpdatedBy"`
}

// CustomerListResponse ответ со списком клиентов
type CustomerListResponse struct {
	Customers []CustomerResponse `json:"customers"`
}

// FromDomainCustomer конвертирует domain модель в DTO
func FromDomainCustomer(c *domain.Customer) *CustomerResponse {
	if c == nil {
		return nil
	}
	return &CustomerResponse{
		ID:           c.ID,
		Name:         c.Name,
		Address:      c.Address,
		PostalCode:   c.PostalCode,
		Phone:        c.Phone,
		DivisionID:   c.DivisionID,
		DivisionName: c.DivisionName,
		CountryID:    c.CountryID,
		CountryName:  c.CountryName,
		CreatedBy:    c.CreatedBy,
		LastUpdateBy: c.LastUpdatedBy,
	}
}

// FromDomainCustomerList конвертирует список domain моделей в DTO
func FromDomainCustomerList(customers []*domain.Customer) *CustomerListResponse {
	resp := &CustomerListResponse{Customers: make([]CustomerResponse, 0, len(customers))}
	for _, c := range customers {
		if dto := FromDomainCustomer(c); dto != nil {
			resp.Customers = append(resp.Customers, *dto)
		}
	}
	return resp
}
