package models

import "github.com/m04kA/SMC-HotelService/internal/domain"

// RoomResponse ответ с данными комнаты
type RoomResponse struct {
	Number   string `json:"number"`
	RoomType string `json:"roomType"`
	Capacity int    `json:"capacity"`
	Price    int    `json:"price"`
}

// RoomListResponse ответ со списком комнат
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(r *domain.Room) *RoomResponse {
	if r == nil {
		return nil
	}

	return &RoomResponse{
		Number:   r.Number,
		RoomType: string(r.Type),
		Capacity: r.Type.Capacity(),
		Price:    r.Type.Price(),
	}
}

// FromDomainRoomList конвертирует список domain моделей в DTO
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	resp := &RoomListResponse{
		Rooms: make([]RoomResponse, 0, len(rooms)),
	}

	for _, r := range rooms {
		if roomResp := FromDomainRoom(r); roomResp != nil {
			resp.Rooms = append(resp.Rooms, *roomResp)
		}
	}

	return resp
}
