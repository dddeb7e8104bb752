package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aivahq/aiva/internal/app"
	"github.com/aivahq/aiva/internal/logger"
	"github.com/aivahq/aiva/internal/service"
	"github.com/aivahq/aiva/internal/utils"
	"github.com/aivahq/aiva/models"
)

type createAvatarRequest struct {
	Name        string `json:"name"`
	Creator     string `json:"creator"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

func (h *Handler) listAvatars(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	category := models.Category(r.URL.Query().Get("category"))

	avatars, err := h.services.AvatarService.GetAvatars(ctx, category)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Str("category", string(category)).Msg("unknown category requested")
			utils.WriteJSONError(w, app.MsgUnknownCategory, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during avatar listing")
			utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.AvatarsResponse{Avatars: avatars}, http.StatusOK)
}

func (h *Handler) createAvatar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req createAvatarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	created, err := h.services.AvatarService.CreateAvatar(ctx, models.Avatar{
		Name:        req.Name,
		Creator:     req.Creator,
		Price:       req.Price,
		Category:    models.Category(req.Category),
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid avatar data provided")
			utils.WriteJSONError(w, app.MsgAvatarFieldsRequired, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during avatar creation")
			utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.AvatarResponse{Avatar: created}, http.StatusCreated)
}
