package cancel_booking

// CancelResponse ответ на успешную отмену бронирования
type CancelResponse struct {
	Status string `json:"status"`
}
