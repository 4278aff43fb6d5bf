package get_guest_bookings

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/guests/{guestId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	guestID := vars["guestId"]

	response, err := h.service.GetGuestBookings(r.Context(), guestID)
	if err != nil {
		h.logger.Error("GET /guests/{guestId}/bookings - Failed to get bookings: guest=%s, error=%v", guestID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /guests/{guestId}/bookings - Bookings retrieved successfully: guest=%s, count=%d", guestID, len(response.Bookings))
	handlers.RespondJSON(w, http.StatusOK, response)
}
