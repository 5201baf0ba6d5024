package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// ErrInvalidID возвращается, когда идентификатор не является положительным числом
var ErrInvalidID = errors.New("id must be a positive integer")

// PathID извлекает положительный int64 из параметра пути
func PathID(r *http.Request, name string) (int64, error) {
	return parseID(mux.Vars(r)[name])
}

// QueryID извлекает необязательный положительный int64 из query-параметра.
// Возвращает nil, если параметр не передан.
func QueryID(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	id, err := parseID(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
