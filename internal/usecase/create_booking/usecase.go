package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	guestRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/guest"
)

// Длина референса бронирования: первые 10 символов UUID
const referenceLength = 10

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	guestRepo    GuestRepository
	roomRepo     RoomRepository
	policy       *domain.BookingPolicy
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	guestRepo GuestRepository,
	roomRepo RoomRepository,
	policy *domain.BookingPolicy,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		guestRepo:    guestRepo,
		roomRepo:     roomRepo,
		policy:       policy,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Все операции с БД идут в сериализуемой транзакции, чтобы два
// конкурентных запроса на пересекающиеся даты не прошли проверку одновременно.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: guest=%s, room=%s, type=%s, check_in=%s, check_out=%s, guests=%d",
		req.GuestID, req.RoomNumber, req.RoomType,
		req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat), req.Guests)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3. Ищем гостя; если его нет — создаем из данных запроса
		guest, err := uc.guestRepo.GetByID(txCtx, req.GuestID)
		switch {
		case errors.Is(err, guestRepo.ErrGuestNotFound):
			guest = &domain.Guest{
				ID:          req.GuestID,
				FirstName:   req.FirstName,
				LastName:    req.LastName,
				DateOfBirth: req.DateOfBirth,
			}
			if err := uc.guestRepo.Create(txCtx, guest); err != nil {
				uc.logger.Error("CreateBooking: failed to create guest id=%s: %v", req.GuestID, err)
				return fmt.Errorf("%w: failed to create guest: %v", ErrInternal, err)
			}
			uc.logger.Info("CreateBooking: created new guest id=%s", req.GuestID)
		case err != nil:
			uc.logger.Error("CreateBooking: failed to get guest id=%s: %v", req.GuestID, err)
			return fmt.Errorf("%w: failed to get guest: %v", ErrInternal, err)
		default:
			// 4. Гость существует — данные запроса должны полностью совпадать
			if guest.FirstName != req.FirstName ||
				guest.LastName != req.LastName ||
				!sameDate(guest.DateOfBirth, req.DateOfBirth) {
				uc.logger.Warn("CreateBooking: guest details mismatch for id=%s", req.GuestID)
				return ErrGuestMismatch
			}
		}

		// 5. Проверяем комнату: существует и совпадает по типу
		room, err := uc.roomRepo.GetByNumber(txCtx, req.RoomNumber)
		if err != nil {
			uc.logger.Warn("CreateBooking: room %s not found", req.RoomNumber)
			return ErrRoomNotFound
		}
		if room.Type != req.RoomType {
			uc.logger.Warn("CreateBooking: room %s has type %s, requested %s",
				req.RoomNumber, room.Type, req.RoomType)
			return ErrRoomTypeMismatch
		}

		// 6. Получаем неотмененные бронирования комнаты с блокировкой (FOR UPDATE)
		existing, err := uc.bookingRepo.ListForRoom(txCtx, req.RoomNumber)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list bookings for room %s: %v", req.RoomNumber, err)
			return fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
		}

		// 7. Собираем кандидата со свежим референсом
		candidate := &domain.Booking{
			Reference:      newReference(),
			GuestID:        req.GuestID,
			FirstName:      req.FirstName,
			LastName:       req.LastName,
			DateOfBirth:    req.DateOfBirth,
			RoomType:       req.RoomType,
			RoomNumber:     req.RoomNumber,
			NumberOfGuests: req.Guests,
			CheckIn:        req.CheckIn,
			CheckOut:       req.CheckOut,
			Paid:           req.Paid,
			Cancelled:      req.Cancelled,
			CheckedIn:      req.CheckedIn,
			CheckedOut:     req.CheckedOut,
			CreatedAt:      now.UTC(),
		}

		// 8. Прогоняем политику бронирования; первая нарушенная проверка
		// откатывает транзакцию целиком
		if err := uc.policy.ValidateNewBooking(guest, existing, candidate, now); err != nil {
			uc.logger.Warn("CreateBooking: policy rejected booking for room %s: %v", req.RoomNumber, err)
			return err
		}

		// 9. Сохраняем бронирование
		if err := uc.bookingRepo.Create(txCtx, candidate); err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = candidate
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking reference=%s", result.Reference)

	return fromDomainBooking(result), nil
}

// newReference генерирует непредсказуемый референс бронирования
func newReference() string {
	return uuid.NewString()[:referenceLength]
}
