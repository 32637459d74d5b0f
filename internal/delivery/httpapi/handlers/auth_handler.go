package handlers

import (
	"net/http"
	"strconv"

	"github.com/oplata-app/escrow-service/internal/delivery/httpapi/dto"
	"github.com/oplata-app/escrow-service/internal/domain"
	"github.com/oplata-app/escrow-service/internal/usecase"
	identitydto "github.com/oplata-app/escrow-service/internal/usecase/dto/identity"
)

type AuthHandler struct {
	identityUsecase usecase.IdentityUsecase
}

func NewAuthHandler(identityUsecase usecase.IdentityUsecase) *AuthHandler {
	return &AuthHandler{identityUsecase: identityUsecase}
}

func (h *AuthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.login(w, r)
	case http.MethodGet:
		h.getUser(w, r)
	default:
		writeMethodNotAllowed(w)
	}
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var request dto.LoginRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, domain.ErrValidation)
		return
	}

	output, err := h.identityUsecase.Login(identitydto.LoginInput{
		TelegramID: request.TelegramID,
		Username:   request.Username,
		Email:      request.Email,
		AuthData:   request.AuthData,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.LoginResponse{
		User:  dto.ToUserResponse(output.User),
		Token: output.Token,
	})
}

func (h *AuthHandler) getUser(w http.ResponseWriter, r *http.Request) {
	telegramIDParam := r.URL.Query().Get("telegramId")
	if telegramIDParam == "" {
		writeError(w, domain.ErrValidation)
		return
	}
	telegramID, err := strconv.ParseInt(telegramIDParam, 10, 64)
	if err != nil {
		writeError(w, domain.ErrValidation)
		return
	}

	user, err := h.identityUsecase.GetUserByTelegramID(telegramID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.GetUserResponse{User: dto.ToUserResponse(user)})
}
