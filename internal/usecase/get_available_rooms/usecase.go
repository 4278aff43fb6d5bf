package get_available_rooms

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// UseCase use case для получения комнат, свободных в заданном интервале дат
type UseCase struct {
	roomRepo    RoomRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(roomRepo RoomRepository, bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute возвращает все комнаты без неотмененных бронирований,
// пересекающих полуоткрытый интервал [start, end)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableRooms: start=%s, end=%s",
		req.Start.Format(domain.DateFormat), req.End.Format(domain.DateFormat))

	if req.Start.IsZero() || req.End.IsZero() || !req.Start.Before(req.End) {
		uc.logger.Warn("GetAvailableRooms: invalid date range")
		return nil, ErrInvalidDateRange
	}

	rooms, err := uc.roomRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableRooms: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.ListBetween(ctx, req.Start, req.End)
	if err != nil {
		uc.logger.Error("GetAvailableRooms: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	// Комнаты с хотя бы одним неотмененным пересекающимся бронированием заняты
	booked := make(map[string]struct{}, len(bookings))
	for _, b := range bookings {
		if b.Cancelled {
			continue
		}
		booked[b.RoomNumber] = struct{}{}
	}

	available := make([]RoomInfo, 0, len(rooms))
	for _, r := range rooms {
		if _, ok := booked[r.Number]; ok {
			continue
		}
		available = append(available, RoomInfo{
			Number:   r.Number,
			RoomType: r.Type,
			Capacity: r.Type.Capacity(),
			Price:    r.Type.Price(),
		})
	}

	uc.logger.Info("GetAvailableRooms: %d of %d rooms available", len(available), len(rooms))

	return &Response{Rooms: available}, nil
}
