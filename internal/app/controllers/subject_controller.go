package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/unitutor/internal/app/models/dto"
	"github.com/yigit/unitutor/internal/app/services"
	"github.com/yigit/unitutor/internal/middleware"
)

// SubjectController handles subject related operations
type SubjectController struct {
	subjectService services.SubjectService
}

// NewSubjectController creates a new subject controller
func NewSubjectController(subjectService services.SubjectService) *SubjectController {
	return &SubjectController{
		subjectService: subjectService,
	}
}

// CreateSubject creates a new subject
// @Summary Create a subject
// @Description Creates a subject identified by its url slug
// @Tags subjects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSubjectRequest true "Subject"
// @Success 200 {object} dto.MessageResponse "Subject created successfully."
// @Failure 400 {object} dto.ErrorResponse "Missing title, url or description"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 409 {object} dto.ErrorResponse "A subject with this url already exists"
// @Failure 500 {object} dto.ErrorResponse "An error occurred while creating the subject."
// @Router /subject [post]
func (c *SubjectController) CreateSubject(ctx *gin.Context) {
	var req dto.CreateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.subjectService.CreateSubject(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIErrorWithMessage(ctx, err, "An error occurred while creating the subject.")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Subject created successfully."))
}

// GetSubjectByURL returns a subject and its professors
// @Summary Get subject by url
// @Description Returns the subject with this exact slug and every professor whose subjects mention it
// @Tags subjects
// @Produce json
// @Security BearerAuth
// @Param url path string true "Subject slug"
// @Success 200 {object} dto.SubjectDetailResponse "Subject found."
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Subject not found."
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subject/{url} [get]
func (c *SubjectController) GetSubjectByURL(ctx *gin.Context) {
	resp, err := c.subjectService.GetSubjectByURL(ctx.Request.Context(), ctx.Param("url"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// GetAllSubjects lists every subject
// @Summary List subjects
// @Description Lists every subject in creation order
// @Tags subjects
// @Produce json
// @Success 200 {object} dto.SubjectsResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subjects [get]
func (c *SubjectController) GetAllSubjects(ctx *gin.Context) {
	resp, err := c.subjectService.GetAllSubjects(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
