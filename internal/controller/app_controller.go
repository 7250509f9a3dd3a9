package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quangkhoi2628-alt/Learn-Together-123/internal/dto"
)

// BootstrapHandler godoc
// @Summary Load everything the client needs on startup
// @Tags app
// @Produce json
// @Success 200 {object} service.BootstrapState
// @Failure 500 {object} dto.ErrorResponse
// @Router /app/bootstrap [get]
func (ctrl *Controller) BootstrapHandler(c *gin.Context) {
	state, err := ctrl.appSvc.Bootstrap()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// SetViewHandler godoc
// @Summary Persist the active view
// @Tags app
// @Accept json
// @Param view body dto.SetViewRequest true "View name"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse
// @Router /app/view [put]
func (ctrl *Controller) SetViewHandler(c *gin.Context) {
	var req dto.SetViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	if err := ctrl.appSvc.SetActiveView(req.View); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
