package v1

import (
	"net/http"
	"strconv"
	"strings"

	"go-profile-service/internal/delivery/http/response"
	"go-profile-service/internal/domain"
	"go-profile-service/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(r *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	profiles := r.Group("/profiles")
	{
		profiles.POST("", handler.Create)
		profiles.GET("", handler.List)
		profiles.GET("/:id", handler.Get)
		profiles.PUT("/:id", handler.Update)
		profiles.GET("/user/:userId", handler.GetByUserID)
	}
}

// Create godoc
// @Summary      Create a candidate profile
// @Description  Create a new candidate profile (candidates only, for themselves)
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        profile  body      domain.Profile  true  "Profile JSON"
// @Success      201  {object}  response.Response{data=domain.Profile}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /profiles [post]
// @Security     BearerAuth
func (h *ProfileHandler) Create(c *gin.Context) {
	var profile domain.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	created, err := h.profileUC.CreateProfile(c.Request.Context(), &profile)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Profile created successfully", gin.H{"profile": created})
}

// Get godoc
// @Summary      Get profile by ID
// @Tags         profiles
// @Produce      json
// @Param        id   path      string  true  "Profile ID"
// @Success      200  {object}  response.Response{data=domain.Profile}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /profiles/{id} [get]
// @Security     BearerAuth
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.profileUC.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile details", gin.H{"profile": profile})
}

// List godoc
// @Summary      List profiles
// @Description  List profiles with filters and pagination, scoped to what the caller may see
// @Tags         profiles
// @Produce      json
// @Param        userId          query  string  false  "Filter by user ID"
// @Param        organizationId  query  string  false  "Filter by organization ID"
// @Param        location        query  string  false  "Filter by location (partial match)"
// @Param        skills          query  string  false  "Comma-separated skills"
// @Param        isActive        query  bool    false  "Filter by active status"
// @Param        page            query  int     false  "Page number"
// @Param        limit           query  int     false  "Items per page"
// @Success      200  {object}  response.Response
// @Router       /profiles [get]
// @Security     BearerAuth
func (h *ProfileHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	// Mirror the query-side bounds so the pagination block reports the
	// window actually used.
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	filter := domain.ProfileFilter{
		UserID:         c.Query("userId"),
		OrganizationID: c.Query("organizationId"),
		Location:       c.Query("location"),
		Page:           page,
		Limit:          limit,
	}
	if skills := c.Query("skills"); skills != "" {
		filter.Skills = strings.Split(skills, ",")
	}
	if v := c.Query("isActive"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			c.Error(apperror.BadRequest("Invalid isActive value"))
			return
		}
		filter.IsActive = &active
	}

	profiles, total, err := h.profileUC.ListProfiles(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile list", gin.H{
		"profiles":   profiles,
		"pagination": response.NewPagination(filter.Page, filter.Limit, total),
	})
}

// Update godoc
// @Summary      Update profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        id       path      string                true  "Profile ID"
// @Param        profile  body      domain.ProfileUpdate  true  "Fields to update"
// @Success      200  {object}  response.Response{data=domain.Profile}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /profiles/{id} [put]
// @Security     BearerAuth
func (h *ProfileHandler) Update(c *gin.Context) {
	var update domain.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	updated, err := h.profileUC.UpdateProfile(c.Request.Context(), c.Param("id"), &update)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated successfully", gin.H{"profile": updated})
}

// GetByUserID godoc
// @Summary      Get profile by user ID
// @Tags         profiles
// @Produce      json
// @Param        userId  path      string  true  "User ID"
// @Success      200  {object}  response.Response{data=domain.Profile}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /profiles/user/{userId} [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetByUserID(c *gin.Context) {
	profile, err := h.profileUC.GetProfileByUserID(c.Request.Context(), c.Param("userId"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile details", gin.H{"profile": profile})
}
