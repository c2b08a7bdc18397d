package v1

import (
	"net/http"
	"strconv"

	"go-profile-service/internal/delivery/http/response"
	"go-profile-service/internal/domain"
	"go-profile-service/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ResumeHandler struct {
	resumeUC domain.ResumeUsecase
}

func NewResumeHandler(r *gin.RouterGroup, resumeUC domain.ResumeUsecase) {
	handler := &ResumeHandler{resumeUC: resumeUC}

	resumes := r.Group("/resumes")
	{
		resumes.POST("", handler.Create)
		resumes.GET("", handler.List)
		resumes.GET("/:id", handler.Get)
		resumes.PUT("/:id", handler.Update)
		resumes.DELETE("/:id", handler.Delete)
	}
}

type CreateResumeRequest struct {
	ProfileID string  `json:"profileId" binding:"required"`
	FileName  string  `json:"fileName" binding:"required"`
	FileSize  int64   `json:"fileSize" binding:"min=0"`
	MimeType  string  `json:"mimeType" binding:"required"`
	S3Key     *string `json:"s3Key"`
	S3Bucket  *string `json:"s3Bucket"`
	IsActive  *bool   `json:"isActive"`
	IsPrimary bool    `json:"isPrimary"`
	Notes     *string `json:"notes"`
}

// Create godoc
// @Summary      Create resume metadata
// @Description  Register resume file metadata for a profile (upload itself is handled elsewhere)
// @Tags         resumes
// @Accept       json
// @Produce      json
// @Param        resume  body      CreateResumeRequest  true  "Resume metadata JSON"
// @Success      201  {object}  response.Response{data=domain.ResumeMetadata}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /resumes [post]
// @Security     BearerAuth
func (h *ResumeHandler) Create(c *gin.Context) {
	var req CreateResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	resume := &domain.ResumeMetadata{
		ProfileID: req.ProfileID,
		FileName:  req.FileName,
		FileSize:  req.FileSize,
		MimeType:  req.MimeType,
		S3Key:     req.S3Key,
		S3Bucket:  req.S3Bucket,
		IsActive:  isActive,
		IsPrimary: req.IsPrimary,
		Notes:     req.Notes,
	}

	created, err := h.resumeUC.CreateResume(c.Request.Context(), resume)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Resume metadata created successfully", gin.H{"resume": created})
}

// Get godoc
// @Summary      Get resume metadata by ID
// @Tags         resumes
// @Produce      json
// @Param        id   path      string  true  "Resume ID"
// @Success      200  {object}  response.Response{data=domain.ResumeMetadata}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /resumes/{id} [get]
// @Security     BearerAuth
func (h *ResumeHandler) Get(c *gin.Context) {
	resume, err := h.resumeUC.GetResume(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume details", gin.H{"resume": resume})
}

// List godoc
// @Summary      List resume metadata
// @Description  List resumes with filters, scoped to profiles the caller may see
// @Tags         resumes
// @Produce      json
// @Param        profileId  query  string  false  "Filter by profile ID"
// @Param        isActive   query  bool    false  "Filter by active status"
// @Param        isPrimary  query  bool    false  "Filter by primary status"
// @Success      200  {object}  response.Response
// @Router       /resumes [get]
// @Security     BearerAuth
func (h *ResumeHandler) List(c *gin.Context) {
	var isActive, isPrimary *bool
	if v := c.Query("isActive"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			c.Error(apperror.BadRequest("Invalid isActive value"))
			return
		}
		isActive = &b
	}
	if v := c.Query("isPrimary"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			c.Error(apperror.BadRequest("Invalid isPrimary value"))
			return
		}
		isPrimary = &b
	}

	resumes, err := h.resumeUC.ListResumes(c.Request.Context(), c.Query("profileId"), isActive, isPrimary)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume list", gin.H{"resumes": resumes})
}

// Update godoc
// @Summary      Update resume metadata
// @Tags         resumes
// @Accept       json
// @Produce      json
// @Param        id      path      string               true  "Resume ID"
// @Param        resume  body      domain.ResumeUpdate  true  "Fields to update"
// @Success      200  {object}  response.Response{data=domain.ResumeMetadata}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /resumes/{id} [put]
// @Security     BearerAuth
func (h *ResumeHandler) Update(c *gin.Context) {
	var update domain.ResumeUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	updated, err := h.resumeUC.UpdateResume(c.Request.Context(), c.Param("id"), &update)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume metadata updated successfully", gin.H{"resume": updated})
}

// Delete godoc
// @Summary      Soft delete resume metadata
// @Description  Marks the resume inactive; the record is retained and no other resume is promoted to primary
// @Tags         resumes
// @Produce      json
// @Param        id   path      string  true  "Resume ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /resumes/{id} [delete]
// @Security     BearerAuth
func (h *ResumeHandler) Delete(c *gin.Context) {
	if err := h.resumeUC.DeleteResume(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume metadata deleted successfully", nil)
}
