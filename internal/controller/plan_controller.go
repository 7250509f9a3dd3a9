package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"github.com/quangkhoi2628-alt/Learn-Together-123/internal/dto"
	"github.com/quangkhoi2628-alt/Learn-Together-123/internal/model"
)

// GetPlanHandler godoc
// @Summary Get the saved weekly study plan
// @Tags plan
// @Produce json
// @Success 200 {object} model.WeeklyPlan
// @Failure 404 {object} dto.ErrorResponse "No plan saved yet"
// @Router /plan [get]
func (ctrl *Controller) GetPlanHandler(c *gin.Context) {
	plan, err := ctrl.planSvc.Get()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// GeneratePlanHandler godoc
// @Summary Generate a fresh weekly plan from the practice history
// @Tags plan
// @Produce json
// @Success 200 {object} model.WeeklyPlan
// @Failure 429 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /plan/generate [post]
func (ctrl *Controller) GeneratePlanHandler(c *gin.Context) {
	plan, err := ctrl.planSvc.Generate(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// PlanChatHandler godoc
// @Summary Rearrange the plan through a natural-language request
// @Tags plan
// @Accept json
// @Produce json
// @Param request body dto.PlanChatRequest true "What to change"
// @Success 200 {object} model.PlanUpdate
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /plan/chat [post]
func (ctrl *Controller) PlanChatHandler(c *gin.Context) {
	var req dto.PlanChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	update, err := ctrl.planSvc.UpdateByChat(c.Request.Context(), req.Request)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, update)
}

// EditPlanSessionHandler godoc
// @Summary Edit or clear one half-day slot of the plan
// @Tags plan
// @Accept json
// @Produce json
// @Param edit body dto.PlanEditRequest true "Slot and new content, null session clears"
// @Success 200 {object} model.WeeklyPlan
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /plan/session [put]
func (ctrl *Controller) EditPlanSessionHandler(c *gin.Context) {
	var req dto.PlanEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	var studySession *model.StudyPlanSession
	if req.Session != nil {
		studySession = &model.StudyPlanSession{}
		if err := copier.Copy(studySession, req.Session); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
	}
	plan, err := ctrl.planSvc.EditSession(req.DayIndex, req.Period, studySession)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// PlanPracticeRequestHandler godoc
// @Summary Resolve a plan slot into a practice generation request
// @Tags plan
// @Accept json
// @Produce json
// @Param slot body dto.PlanSlotRequest true "Plan slot"
// @Success 200 {object} model.PlanPracticeRequest
// @Failure 400 {object} dto.ErrorResponse "Slot is empty or out of range"
// @Failure 404 {object} dto.ErrorResponse
// @Router /plan/practice-request [post]
func (ctrl *Controller) PlanPracticeRequestHandler(c *gin.Context) {
	var req dto.PlanSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	practiceReq, err := ctrl.planSvc.PracticeRequest(req.DayIndex, req.Period)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, practiceReq)
}
