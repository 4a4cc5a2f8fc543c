package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type setLevelRequest struct {
	Level *int `json:"level" binding:"required"`
}

// @Summary      Virtual home state
// @Description  Current bulb level per room (0 off, 1 warm, 2 bright); seeded from stored preferences on first access
// @Tags         home
// @Produce      json
// @Param        userId  path  string  true  "Profile ID"
// @Success      200  {object}  map[string]int
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /home-state/{userId} [get]
func (h *Handler) homeState(c *gin.Context) {
	userID := c.Param("userId")
	if _, err := uuid.Parse(userID); err != nil {
		h.badRequest(c, errInvalidUserID)
		return
	}

	state, err := h.services.Home.State(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, "home_state_failed", err, "userId", userID)
		return
	}
	c.JSON(http.StatusOK, state)
}

// @Summary      Set room level
// @Description  Manual slider override; never written back to preferences
// @Tags         home
// @Accept       json
// @Produce      json
// @Param        userId  path  string  true  "Profile ID"
// @Param        room    path  string  true  "Room name or UI alias"
// @Param        body    body  setLevelRequest  true  "Level 0..2"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /home-state/{userId}/{room} [put]
func (h *Handler) setRoomLevel(c *gin.Context) {
	userID := c.Param("userId")
	if _, err := uuid.Parse(userID); err != nil {
		h.badRequest(c, errInvalidUserID)
		return
	}

	var req setLevelRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	room := c.Param("room")
	if err := h.services.Home.SetLevel(c.Request.Context(), userID, room, *req.Level); err != nil {
		h.fail(c, "home_set_level_failed", err, "userId", userID, "room", room)
		return
	}
	c.JSON(http.StatusOK, gin.H{"room": room, "level": *req.Level})
}
