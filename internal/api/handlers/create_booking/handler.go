package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/domain"
	createBooking "github.com/m04kA/SMC-HotelService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRequest     = "некорректные данные бронирования"
	msgGuestMismatch      = "данные гостя не совпадают с зарегистрированными"
	msgRoomNotFound       = "комната не найдена"
	msgRoomTypeMismatch   = "тип комнаты не совпадает с запрошенным"
	msgGuestUnderage      = "гость должен быть совершеннолетним"
	msgTooManyGuests      = "превышено максимальное количество гостей"
	msgStayTooLong        = "превышена максимальная длительность проживания"
	msgInsufficientNotice = "бронирование возможно минимум за 24 часа до заезда"
	msgRoomUnavailable    = "комната уже забронирована на выбранные даты"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат и типа комнаты)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: guest_id=%s, room=%s", req.GuestID, req.RoomNumber)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, createBooking.ErrGuestMismatch):
			h.logger.Warn("POST /bookings - Guest details mismatch: guest_id=%s", req.GuestID)
			handlers.RespondBadRequest(w, msgGuestMismatch)

		case errors.Is(err, createBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: room=%s", req.RoomNumber)
			handlers.RespondBadRequest(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrRoomTypeMismatch):
			h.logger.Warn("POST /bookings - Room type mismatch: room=%s, type=%s", req.RoomNumber, req.RoomType)
			handlers.RespondBadRequest(w, msgRoomTypeMismatch)

		case errors.Is(err, domain.ErrGuestUnderage):
			h.logger.Warn("POST /bookings - Guest underage: guest_id=%s", req.GuestID)
			handlers.RespondBadRequest(w, msgGuestUnderage)

		case errors.Is(err, domain.ErrTooManyGuests):
			h.logger.Warn("POST /bookings - Too many guests: guest_id=%s, guests=%d", req.GuestID, req.NumberOfGuests)
			handlers.RespondBadRequest(w, msgTooManyGuests)

		case errors.Is(err, domain.ErrStayTooLong):
			h.logger.Warn("POST /bookings - Stay too long: guest_id=%s, room=%s", req.GuestID, req.RoomNumber)
			handlers.RespondBadRequest(w, msgStayTooLong)

		case errors.Is(err, domain.ErrInsufficientNotice):
			h.logger.Warn("POST /bookings - Insufficient notice: guest_id=%s, check_in=%s", req.GuestID, req.CheckIn)
			handlers.RespondBadRequest(w, msgInsufficientNotice)

		case errors.Is(err, domain.ErrRoomUnavailable):
			h.logger.Warn("POST /bookings - Room unavailable: room=%s, check_in=%s, check_out=%s",
				req.RoomNumber, req.CheckIn, req.CheckOut)
			handlers.RespondBadRequest(w, msgRoomUnavailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: guest_id=%s, room=%s, error=%v",
				req.GuestID, req.RoomNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: reference=%s, guest_id=%s, room=%s",
		result.Reference, req.GuestID, req.RoomNumber)
	handlers.RespondJSON(w, http.StatusOK, response)
}
