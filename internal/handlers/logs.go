package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary      Conversation history
// @Description  The 10 newest transcriptions for a profile, newest first
// @Tags         voice
// @Produce      json
// @Param        userId  path  string  true  "Profile ID"
// @Success      200  {array}   models.ConversationLog
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /conversation-logs/{userId} [get]
func (h *Handler) conversationLogs(c *gin.Context) {
	userID := c.Param("userId")
	if _, err := uuid.Parse(userID); err != nil {
		h.badRequest(c, errInvalidUserID)
		return
	}

	logs, err := h.services.Conversations.List(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, "conversation_logs_failed", err, "userId", userID)
		return
	}
	if len(logs) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no conversations found for this user"})
		return
	}
	c.JSON(http.StatusOK, logs)
}
