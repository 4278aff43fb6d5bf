package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-HotelService/internal/service/bookings/models"
)

// Service сервис для работы с жизненным циклом бронирований
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByReference получает бронирование по референсу
func (s *Service) GetByReference(ctx context.Context, reference string) (*models.BookingResponse, error) {
	s.logger.Info("GetByReference: fetching booking reference=%s", reference)

	booking, err := s.bookingRepo.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByReference: booking reference=%s not found", reference)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByReference: repository error for reference=%s: %v", reference, err)
		return nil, fmt.Errorf("%w: GetByReference - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetGuestBookings получает историю бронирований гостя, включая отмененные
func (s *Service) GetGuestBookings(ctx context.Context, guestID string) (*models.BookingListResponse, error) {
	s.logger.Info("GetGuestBookings: fetching bookings for guest=%s", guestID)

	bookings, err := s.bookingRepo.ListForGuest(ctx, guestID)
	if err != nil {
		s.logger.Error("GetGuestBookings: repository error for guest=%s: %v", guestID, err)
		return nil, fmt.Errorf("%w: GetGuestBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetGuestBookings: successfully fetched %d bookings for guest=%s", len(bookings), guestID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование.
// Реализовано как физическое удаление строки: после отмены бронирование
// больше не находится по референсу.
func (s *Service) Cancel(ctx context.Context, reference string) error {
	s.logger.Info("Cancel: cancelling booking reference=%s", reference)

	// Бронирование должно существовать
	if _, err := s.bookingRepo.GetByReference(ctx, reference); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking reference=%s not found", reference)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for reference=%s: %v", reference, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if err := s.bookingRepo.Delete(ctx, reference); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking reference=%s not found during delete", reference)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for reference=%s: %v", reference, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking reference=%s", reference)
	return nil
}

// CheckIn отмечает заезд гостя. Повторный вызов не считается ошибкой:
// флаг просто остается установленным.
func (s *Service) CheckIn(ctx context.Context, reference string) (*models.BookingResponse, error) {
	return s.setFlag(ctx, reference, "CheckIn", func(b *domain.Booking) {
		b.CheckedIn = true
	})
}

// CheckOut отмечает выезд гостя. Так же идемпотентен, как CheckIn.
func (s *Service) CheckOut(ctx context.Context, reference string) (*models.BookingResponse, error) {
	return s.setFlag(ctx, reference, "CheckOut", func(b *domain.Booking) {
		b.CheckedOut = true
	})
}

// setFlag общий путь для check-in/check-out: получить, изменить флаг, сохранить
func (s *Service) setFlag(ctx context.Context, reference, op string, mutate func(b *domain.Booking)) (*models.BookingResponse, error) {
	s.logger.Info("%s: booking reference=%s", op, reference)

	booking, err := s.bookingRepo.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking reference=%s not found", op, reference)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for reference=%s: %v", op, reference, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	mutate(booking)

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking reference=%s not found during update", op, reference)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for reference=%s: %v", op, reference, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	s.logger.Info("%s: successfully updated booking reference=%s", op, reference)
	return models.FromDomainBooking(booking), nil
}
