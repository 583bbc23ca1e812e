package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/unitutor/internal/app/models/dto"
	"github.com/yigit/unitutor/internal/app/services"
	"github.com/yigit/unitutor/internal/middleware"
)

// InstructionController handles instruction session requests
type InstructionController struct {
	instructionService services.InstructionService
}

// NewInstructionController creates a new instruction controller
func NewInstructionController(instructionService services.InstructionService) *InstructionController {
	return &InstructionController{
		instructionService: instructionService,
	}
}

// ScheduleSession requests a session with a professor for the authenticated student
// @Summary Schedule an instruction session
// @Description Records a session request from the authenticated student. Overlapping requests are accepted.
// @Tags instructions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ScheduleSessionRequest true "Session time and professor"
// @Success 200 {object} dto.MessageResponse "Instruction session scheduled successfully."
// @Failure 400 {object} dto.ErrorResponse "Missing date or professorId"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Student not found."
// @Failure 500 {object} dto.ErrorResponse "An error occurred while scheduling the instruction session."
// @Router /instructions [post]
func (c *InstructionController) ScheduleSession(ctx *gin.Context) {
	var req dto.ScheduleSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	// A missing email resolves to no student
	email, _ := middleware.CurrentUserEmail(ctx)

	if err := c.instructionService.ScheduleSession(ctx.Request.Context(), email, &req); err != nil {
		middleware.HandleAPIErrorWithMessage(ctx, err, "An error occurred while scheduling the instruction session.")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Instruction session scheduled successfully."))
}

// ListSessions lists every instruction session
// @Summary List instruction sessions
// @Description Lists the time and professor of every session
// @Tags instructions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.InstructionSessionsResponse
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /instructions [get]
func (c *InstructionController) ListSessions(ctx *gin.Context) {
	resp, err := c.instructionService.ListSessions(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
