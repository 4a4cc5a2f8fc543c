package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voice_control_system/internal/models"
	"voice_control_system/internal/service"
)

type registerRequest struct {
	Name         string              `json:"name" binding:"required"`
	Username     string              `json:"username" binding:"required"`
	Password     string              `json:"password" binding:"required"`
	HouseAddress string              `json:"houseAddress"`
	Preferences  []models.Preference `json:"preferences"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// @Summary      Register admin account
// @Description  Creates the account plus its owner profile carrying the submitted room preferences
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  registerRequest  true  "Account payload"
// @Success      201  {object}  map[string]string  "adminId, name"
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /register [post]
func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	adminID, err := h.services.Register(c.Request.Context(), service.RegisterParams{
		Name:         req.Name,
		Username:     req.Username,
		Password:     req.Password,
		HouseAddress: req.HouseAddress,
		Preferences:  req.Preferences,
	})
	if err != nil {
		h.fail(c, "register_failed", err, "username", req.Username)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"adminId": adminID, "name": req.Name})
}

// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  loginRequest  true  "Credentials"
// @Success      200  {object}  map[string]string  "adminId, name, token"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /login [post]
func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	admin, token, err := h.services.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.fail(c, "login_failed", err, "username", req.Username)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"adminId": admin.AdminID,
		"name":    admin.Name,
		"token":   token,
	})
}

// @Summary      Account details
// @Tags         auth
// @Produce      json
// @Success      200  {object}  models.Admin
// @Failure      401  {object}  map[string]string
// @Router       /account [get]
// @Security     BearerAuth
func (h *Handler) account(c *gin.Context) {
	adminID := c.GetString(ctxAdminID)
	admin, err := h.services.Account(c.Request.Context(), adminID)
	if err != nil {
		h.fail(c, "account_lookup_failed", err, "adminId", adminID)
		return
	}
	c.JSON(http.StatusOK, admin)
}
