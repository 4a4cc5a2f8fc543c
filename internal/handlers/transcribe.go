package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary      Transcribe a voice command
// @Description  Stores the recording, transcribes it, classifies the lighting command and applies it to the virtual home. An utterance without a recognizable room answers with null fields and is neither logged nor applied.
// @Tags         voice
// @Accept       multipart/form-data
// @Produce      json
// @Param        userId     path      string  true  "Profile ID"
// @Param        audioFile  formData  file    true  "WAV recording"
// @Success      200  {object}  map[string]interface{}  "room, intent, intensity, text, response, action, level"
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /transcribe/{userId} [post]
func (h *Handler) transcribe(c *gin.Context) {
	userID := c.Param("userId")
	if _, err := uuid.Parse(userID); err != nil {
		h.badRequest(c, errInvalidUserID)
		return
	}

	file, err := c.FormFile("audioFile")
	if err != nil {
		h.badRequest(c, "no audio file provided")
		return
	}
	if file.Filename == "" {
		h.badRequest(c, "audio file name is empty")
		return
	}

	src, err := file.Open()
	if err != nil {
		h.fail(c, "transcribe_open_upload_failed", err, "userId", userID)
		return
	}
	defer src.Close()

	res, err := h.services.Transcriber.Process(c.Request.Context(), userID, file.Filename, src)
	if err != nil {
		h.fail(c, "transcribe_failed", err, "userId", userID, "file", file.Filename)
		return
	}

	// Null command fields when no room was recognized, matching what
	// the panel expects.
	resp := gin.H{
		"room":      nil,
		"intent":    nil,
		"intensity": nil,
		"text":      res.Text,
		"response":  res.Response,
		"action":    nil,
	}
	if res.Command.Recognized() {
		resp["room"] = res.Command.Room
		resp["intent"] = res.Command.Intent
		if res.Command.Intensity != "" {
			resp["intensity"] = res.Command.Intensity
		}
	}
	if res.Applied {
		resp["action"] = res.Action
		resp["level"] = int(res.Level)
	}
	c.JSON(http.StatusOK, resp)
}
