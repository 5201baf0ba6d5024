package models

import "github.com/m04kA/SMC-ScheduleService/internal/domain"

// ContactResponse контакт, с которым проводится встреча
type ContactResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserResponse пользователь приложения
type UserResponse struct {
	ID       int64  `json:"id"`
	UserName string `json:"userName"`
}

// CountryResponse страна
type CountryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// DivisionResponse регион страны
type DivisionResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CountryID int64  `json:"countryId"`
}

func FromDomainContacts(contacts []*domain.Contact) []ContactResponse {
	result := make([]ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		result = append(result, ContactResponse{ID: c.ID, Name: c.Name, Email: c.Email})
	}
	return result
}

func FromDomainUsers(users []*domain.User) []UserResponse {
	result := make([]UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, UserResponse{ID: u.ID, UserName: u.UserName})
	}
	return result
}

func FromDomainCountries(countries []*domain.Country) []CountryResponse {
	result := make([]CountryResponse, 0, len(countries))
	for _, c := range countries {
		result = append(result, CountryResponse{ID: c.ID, Name: c.Name})
	}
	return result
}

func FromDomainDivisions(divisions []*domain.Division) []DivisionResponse {
	result := make([]DivisionResponse, 0, len(divisions))
	for _, d := range divisions {
		result = append(result, DivisionResponse{ID: d.ID, Name: d.Name, CountryID: d.CountryID})
	}
	return result
}
