package get_available_rooms

import (
	usecase "github.com/m04kA/SMC-HotelService/internal/usecase/get_available_rooms"
)

// AvailableRoomResponse информация о доступной комнате
type AvailableRoomResponse struct {
	Number   string `json:"number"`
	RoomType string `json:"roomType"`
	Capacity int    `json:"capacity"`
	Price    int    `json:"price"`
}

// AvailableRoomListResponse ответ со списком доступных комнат
type AvailableRoomListResponse struct {
	Rooms []AvailableRoomResponse `json:"rooms"`
}

// FromUseCaseResponse конвертирует usecase ответ в API ответ
func FromUseCaseResponse(resp *usecase.Response) *AvailableRoomListResponse {
	out := &AvailableRoomListResponse{
		Rooms: make([]AvailableRoomResponse, 0, len(resp.Rooms)),
	}

	for _, r := range resp.Rooms {
		out.Rooms = append(out.Rooms, AvailableRoomResponse{
			Number:   r.Number,
			RoomType: string(r.RoomType),
			Capacity: r.Capacity,
			Price:    r.Price,
		})
	}

	return out
}
