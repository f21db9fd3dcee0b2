package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tabletop-events-api/internal/auth"
	"tabletop-events-api/internal/dto"
	"tabletop-events-api/internal/response"
	"tabletop-events-api/internal/service"
)

type ParticipantHandler struct {
	participantService service.ParticipantService
}

func NewParticipantHandler(participantService service.ParticipantService) *ParticipantHandler {
	return &ParticipantHandler{participantService: participantService}
}

// GetParticipants handles GET /participants?eventId=
func (h *ParticipantHandler) GetParticipants(c *gin.Context) {
	eventID, ok := requiredQueryID(c, "eventId")
	if !ok {
		return
	}
	participants, err := h.participantService.ListParticipants(c.Request.Context(), eventID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, participants)
}

// JoinEvent handles POST /participants
func (h *ParticipantHandler) JoinEvent(c *gin.Context) {
	caller, ok := auth.CallerFrom(c)
	if !ok {
		sendUnauthorized(c)
		return
	}
	var req dto.EventRefRequest
	if !bindJSON(c, &req) {
		return
	}

	participant, err := h.participantService.Join(c.Request.Context(), req.EventID, caller.AccountID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, participant)
}

// LeaveEvent handles DELETE /participants?eventId=
func (h *ParticipantHandler) LeaveEvent(c *gin.Context) {
	caller, ok := auth.CallerFrom(c)
	if !ok {
		sendUnauthorized(c)
		return
	}
	eventID, ok := requiredQueryID(c, "eventId")
	if !ok {
		return
	}

	if err := h.participantService.Leave(c.Request.Context(), eventID, caller.AccountID); err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendMessage(c, http.StatusOK, "Left event successfully")
}

type FavoriteHandler struct {
	favoriteService service.FavoriteService
}

func NewFavoriteHandler(favoriteService service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// GetFavorites handles GET /favorites. ?eventId= lists who favorited an
// event, ?userId= lists a member's favorites, and no query lists the
// caller's own.
func (h *FavoriteHandler) GetFavorites(c *gin.Context) {
	eventID, hasEvent, ok := queryID(c, "eventId")
	if !ok {
		return
	}
	userID, hasUser, ok := queryID(c, "userId")
	if !ok {
		return
	}

	var (
		favorites []*dto.FavoriteResponse
		err       error
	)
	switch {
	case hasEvent:
		favorites, err = h.favoriteService.ListByEvent(c.Request.Context(), eventID)
	case hasUser:
		favorites, err = h.favoriteService.ListByUser(c.Request.Context(), userID)
	default:
		caller, authed := auth.CallerFrom(c)
		if !authed {
			sendUnauthorized(c)
			return
		}
		favorites, err = h.favoriteService.ListByUser(c.Request.Context(), caller.AccountID)
	}
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, dto.FavoritesResponse{Favorites: favorites})
}

// AddFavorite handles POST /favorites
func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	caller, ok := auth.CallerFrom(c)
	if !ok {
		sendUnauthorized(c)
		return
	}
	var req dto.EventRefRequest
	if !bindJSON(c, &req) {
		return
	}

	favorite, err := h.favoriteService.Add(c.Request.Context(), req.EventID, caller.AccountID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, dto.FavoriteCreatedResponse{Favorite: favorite})
}

// RemoveFavorite handles DELETE /favorites?eventId=
func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	caller, ok := auth.CallerFrom(c)
	if !ok {
		sendUnauthorized(c)
		return
	}
	eventID, ok := requiredQueryID(c, "eventId")
	if !ok {
		return
	}

	if err := h.favoriteService.Remove(c.Request.Context(), eventID, caller.AccountID); err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendMessage(c, http.StatusOK, "Favorite removed successfully")
}
