package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tabletop-events-api/internal/auth"
	"tabletop-events-api/internal/dto"
	"tabletop-events-api/internal/response"
	"tabletop-events-api/internal/service"
)

type GameHandler struct {
	gameService service.GameService
}

func NewGameHandler(gameService service.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

func (h *GameHandler) GetGames(c *gin.Context) {
	games, err := h.gameService.GetGames(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, games)
}

func (h *GameHandler) GetGame(c *gin.Context) {
	id, ok := pathID(c, "game")
	if !ok {
		return
	}
	game, err := h.gameService.GetGame(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, game)
}

func (h *GameHandler) CreateGame(c *gin.Context) {
	caller, _ := auth.CallerFrom(c)
	var req dto.CreateGameRequest
	if !bindJSON(c, &req) {
		return
	}
	game, err := h.gameService.CreateGame(c.Request.Context(), caller, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, game)
}

func (h *GameHandler) UpdateGame(c *gin.Context) {
	caller, _ := auth.CallerFrom(c)
	id, ok := pathID(c, "game")
	if !ok {
		return
	}
	var req dto.UpdateGameRequest
	if !bindJSON(c, &req) {
		return
	}
	game, err := h.gameService.UpdateGame(c.Request.Context(), caller, id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if game == nil {
		sendNotFound(c, "Game")
		return
	}
	response.SendSuccess(c, http.StatusOK, game)
}

func (h *GameHandler) DeleteGame(c *gin.Context) {
	caller, _ := auth.CallerFrom(c)
	id, ok := pathID(c, "game")
	if !ok {
		return
	}
	game, err := h.gameService.DeleteGame(c.Request.Context(), caller, id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if game == nil {
		sendNotFound(c, "Game")
		return
	}
	response.SendMessage(c, http.StatusOK, "Game deleted successfully")
}

type LocationHandler struct {
	locationService service.LocationService
}

func NewLocationHandler(locationService service.LocationService) *LocationHandler {
	return &LocationHandler{locationService: locationService}
}

func (h *LocationHandler) GetLocations(c *gin.Context) {
	locations, err := h.locationService.GetLocations(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, locations)
}

func (h *LocationHandler) GetLocation(c *gin.Context) {
	id, ok := pathID(c, "location")
	if !ok {
		return
	}
	location, err := h.locationService.GetLocation(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, location)
}

func (h *LocationHandler) CreateLocation(c *gin.Context) {
	caller, _ := auth.CallerFrom(c)
	var req dto.CreateLocationRequest
	if !bindJSON(c, &req) {
		return
	}
	location, err := h.locationService.CreateLocation(c.Request.Context(), caller, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, location)
}

func (h *LocationHandler) UpdateLocation(c *gin.Context) {
	caller, _ := auth.CallerFrom(c)
	id, ok := pathID(c, "location")
	if !ok {
		return
	}
	var req dto.UpdateLocationRequest
	if !bindJSON(c, &req) {
		return
	}
	location, err := h.locationService.UpdateLocation(c.Request.Context(), caller, id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if location == nil {
		sendNotFound(c, "Location")
		return
	}
	response.SendSuccess(c, http.StatusOK, location)
}

func (h *LocationHandler) DeleteLocation(c *gin.Context) {
	caller, _ := auth.CallerFrom(c)
	id, ok := pathID(c, "location")
	if !ok {
		return
	}
	location, err := h.locationService.DeleteLocation(c.Request.Context(), caller, id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if location == nil {
		sendNotFound(c, "Location")
		return
	}
	response.SendMessage(c, http.StatusOK, "Location deleted successfully")
}

type OptionsHandler struct {
	optionsService service.OptionsService
}

func NewOptionsHandler(optionsService service.OptionsService) *OptionsHandler {
	return &OptionsHandler{optionsService: optionsService}
}

// GetOptions handles GET /options
func (h *OptionsHandler) GetOptions(c *gin.Context) {
	options, err := h.optionsService.GetOptions(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, options)
}
