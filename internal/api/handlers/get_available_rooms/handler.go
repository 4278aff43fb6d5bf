package get_available_rooms

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/domain"
	usecase "github.com/m04kA/SMC-HotelService/internal/usecase/get_available_rooms"
)

const (
	msgInvalidDates     = "некорректные параметры start/end, ожидается формат YYYY-MM-DD"
	msgInvalidDateRange = "дата start должна быть раньше даты end"
)

type Handler struct {
	useCase GetAvailableRoomsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableRoomsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/availability?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	start, err := time.Parse(domain.DateFormat, query.Get("start"))
	if err != nil {
		h.logger.Warn("GET /rooms/availability - Invalid start parameter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	end, err := time.Parse(domain.DateFormat, query.Get("end"))
	if err != nil {
		h.logger.Warn("GET /rooms/availability - Invalid end parameter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	response, err := h.useCase.Execute(r.Context(), &usecase.Request{Start: start, End: end})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidDateRange):
			h.logger.Warn("GET /rooms/availability - Invalid date range: start=%s, end=%s",
				query.Get("start"), query.Get("end"))
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		default:
			h.logger.Error("GET /rooms/availability - Failed to get available rooms: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/availability - Available rooms retrieved successfully: count=%d", len(response.Rooms))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(response))
}
