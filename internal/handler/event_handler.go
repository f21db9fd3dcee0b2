package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"tabletop-events-api/internal/auth"
	"tabletop-events-api/internal/dto"
	"tabletop-events-api/internal/geo"
	"tabletop-events-api/internal/response"
	"tabletop-events-api/internal/service"
)

type EventHandler struct {
	eventService service.EventService
	now          func() time.Time
}

func NewEventHandler(eventService service.EventService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		now:          time.Now,
	}
}

// GetEvents handles GET /events. With ?id= it returns that event in detail
// form, otherwise every event in list form.
func (h *EventHandler) GetEvents(c *gin.Context) {
	id, present, ok := queryID(c, "id")
	if !ok {
		return
	}
	if present {
		h.respondWithEvent(c, id)
		return
	}

	events, err := h.eventService.GetAllEvents(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, events)
}

// GetEvent handles GET /events/:id
func (h *EventHandler) GetEvent(c *gin.Context) {
	id, ok := pathID(c, "event")
	if !ok {
		return
	}
	h.respondWithEvent(c, id)
}

func (h *EventHandler) respondWithEvent(c *gin.Context, id int64) {
	event, err := h.eventService.GetOneEvent(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, event)
}

// CreateEvent handles POST /events. The caller becomes the host.
func (h *EventHandler) CreateEvent(c *gin.Context) {
	caller, ok := auth.CallerFrom(c)
	if !ok {
		sendUnauthorized(c)
		return
	}
	var req dto.CreateEventRequest
	if !bindJSON(c, &req) {
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), caller, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, event)
}

// UpdateEvent handles PUT /events/:id
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	caller, ok := auth.CallerFrom(c)
	if !ok {
		sendUnauthorized(c)
		return
	}
	id, ok := pathID(c, "event")
	if !ok {
		return
	}
	var req dto.UpdateEventRequest
	if !bindJSON(c, &req) {
		return
	}

	event, err := h.eventService.UpdateEvent(c.Request.Context(), caller, id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, event)
}

// DeleteEvent handles DELETE /events?id= and DELETE /events/:id
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	caller, ok := auth.CallerFrom(c)
	if !ok {
		sendUnauthorized(c)
		return
	}

	var id int64
	if c.Param("id") != "" {
		if id, ok = pathID(c, "event"); !ok {
			return
		}
	} else if id, ok = requiredQueryID(c, "id"); !ok {
		return
	}

	if _, err := h.eventService.RemoveEvent(c.Request.Context(), caller, id); err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendMessage(c, http.StatusOK, "Event deleted successfully")
}

// TodayEvents handles GET /events/today
func (h *EventHandler) TodayEvents(c *gin.Context) {
	events, err := h.eventService.TodayEvents(c.Request.Context(), h.now())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, events)
}

// PopularEvents handles GET /events/popular?limit=
func (h *EventHandler) PopularEvents(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > 100 {
			response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "limit must be between 1 and 100")
			return
		}
		limit = n
	}

	events, err := h.eventService.PopularEvents(c.Request.Context(), h.now(), limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, events)
}

// NearbyEvents handles GET /events/nearby?lat=&lng=
func (h *EventHandler) NearbyEvents(c *gin.Context) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "lat and lng are required numbers")
		return
	}

	events, err := h.eventService.NearbyEvents(c.Request.Context(), h.now(), geo.Point{Lat: lat, Lng: lng})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, events)
}
