package create_guest

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/service/guests"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRequest     = "некорректные данные гостя"
	msgAlreadyExists      = "гость с таким идентификатором уже зарегистрирован"
)

type Handler struct {
	service GuestService
	logger  Logger
}

func NewHandler(service GuestService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/guests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateGuestRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /guests - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /guests - Invalid request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	guest, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, guests.ErrGuestAlreadyExists):
			h.logger.Warn("POST /guests - Guest already exists: id=%s", serviceReq.ID)
			handlers.RespondBadRequest(w, msgAlreadyExists)

		default:
			h.logger.Error("POST /guests - Failed to create guest: id=%s, error=%v", serviceReq.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /guests - Guest registered successfully: id=%s", guest.ID)
	handlers.RespondJSON(w, http.StatusOK, guest)
}
