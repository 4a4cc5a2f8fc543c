package handlers

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"voice_control_system/internal/models"
	"voice_control_system/internal/service"
)

const (
	errInvalidAdminID     = "invalid admin ID format"
	errInvalidUserID      = "invalid user ID format"
	errInvalidPreferences = "invalid preferences payload"
)

// profileForm is the multipart payload shared by add and edit. The
// preferences field is a JSON-encoded array; a missing field means
// "keep what is stored" on edit.
type profileForm struct {
	name        string
	preferences []models.Preference // nil when the field was absent
	imagePath   string
}

func (h *Handler) parseProfileForm(c *gin.Context) (profileForm, bool) {
	var form profileForm
	form.name = c.PostForm("name")

	if raw, ok := c.GetPostForm("preferences"); ok {
		form.preferences = []models.Preference{}
		if raw != "" {
			if err := json.Unmarshal([]byte(raw), &form.preferences); err != nil {
				h.badRequest(c, errInvalidPreferences)
				return form, false
			}
		}
	}

	file, err := c.FormFile("image")
	if err != nil && err != http.ErrMissingFile {
		h.badRequest(c, "invalid image upload")
		return form, false
	}
	if file != nil {
		path, err := h.saveImage(c, file)
		if err != nil {
			h.fail(c, "profile_image_save_failed", err)
			return form, false
		}
		form.imagePath = path
	}
	return form, true
}

// saveImage stores the upload under uploads/images with a unique name
// and returns the relative path the client uses to fetch it back.
func (h *Handler) saveImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	dir := filepath.Join(h.uploadsDir, "images")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := uuid.NewString() + "_" + filepath.Base(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		return "", err
	}
	return "uploads/images/" + name, nil
}

// @Summary      List profiles
// @Description  Profiles under an admin account, owner first then by name
// @Tags         profiles
// @Produce      json
// @Param        adminId  path  string  true  "Admin ID"
// @Success      200  {array}   models.Profile
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{adminId} [get]
func (h *Handler) listProfiles(c *gin.Context) {
	adminID := c.Param("adminId")
	if _, err := uuid.Parse(adminID); err != nil {
		h.badRequest(c, errInvalidAdminID)
		return
	}

	profiles, err := h.services.Profiles.List(c.Request.Context(), adminID)
	if err != nil {
		h.fail(c, "profiles_list_failed", err, "adminId", adminID)
		return
	}
	if len(profiles) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no profiles found for this admin"})
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// @Summary      Add profile
// @Description  Creates a resident profile; at most 4 profiles per admin
// @Tags         profiles
// @Accept       multipart/form-data
// @Produce      json
// @Param        adminId      path      string  true   "Admin ID"
// @Param        name         formData  string  true   "Profile name"
// @Param        preferences  formData  string  false  "JSON array of room preferences"
// @Param        image        formData  file    false  "Profile photo"
// @Success      201  {object}  models.Profile
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /add-profile/{adminId} [post]
func (h *Handler) addProfile(c *gin.Context) {
	adminID := c.Param("adminId")
	if _, err := uuid.Parse(adminID); err != nil {
		h.badRequest(c, errInvalidAdminID)
		return
	}

	form, ok := h.parseProfileForm(c)
	if !ok {
		return
	}

	profile, err := h.services.Profiles.Add(c.Request.Context(), adminID, service.ProfileParams{
		Name:        form.name,
		ImagePath:   form.imagePath,
		Preferences: form.preferences,
	})
	if err != nil {
		h.fail(c, "profile_add_failed", err, "adminId", adminID)
		return
	}
	c.JSON(http.StatusCreated, profile)
}

// @Summary      Edit profile
// @Description  Owner profiles are fixed; omitting preferences or image keeps the stored values
// @Tags         profiles
// @Accept       multipart/form-data
// @Produce      json
// @Param        userId       path      string  true   "Profile ID"
// @Param        name         formData  string  true   "Profile name"
// @Param        preferences  formData  string  false  "JSON array of room preferences"
// @Param        image        formData  file    false  "Profile photo"
// @Success      200  {object}  models.Profile
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /edit-profile/{userId} [put]
func (h *Handler) editProfile(c *gin.Context) {
	userID := c.Param("userId")
	if _, err := uuid.Parse(userID); err != nil {
		h.badRequest(c, errInvalidUserID)
		return
	}

	form, ok := h.parseProfileForm(c)
	if !ok {
		return
	}

	profile, err := h.services.Profiles.Edit(c.Request.Context(), userID, service.ProfileParams{
		Name:        form.name,
		ImagePath:   form.imagePath,
		Preferences: form.preferences,
	})
	if err != nil {
		h.fail(c, "profile_edit_failed", err, "userId", userID)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// @Summary      Profile details
// @Description  One profile with its room preferences
// @Tags         profiles
// @Produce      json
// @Param        userId  path  string  true  "Profile ID"
// @Success      200  {object}  models.Profile
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /user-details/{userId} [get]
func (h *Handler) userDetails(c *gin.Context) {
	userID := c.Param("userId")
	if _, err := uuid.Parse(userID); err != nil {
		h.badRequest(c, errInvalidUserID)
		return
	}

	profile, err := h.services.Profiles.Get(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, "profile_get_failed", err, "userId", userID)
		return
	}
	c.JSON(http.StatusOK, profile)
}
