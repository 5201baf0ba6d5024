package delete_customer

// Request модель запроса на удаление клиента
type Request struct {
	CustomerID int64
	// DeleteAppointments подтверждает удаление всех встреч клиента вместе с ним
	DeleteAppointments bool
}

// Response модель ответа после удаления клиента
type Response struct {
	CustomerID          int64
	CustomerName        string
	DeletedAppointments int64
}
