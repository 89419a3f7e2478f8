package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tripwise/internal/models/request_models"
	"tripwise/internal/services"
	"tripwise/pkg/utils"
)

type PlannerController struct {
	plannerService services.PlannerServiceInterface
}

func NewPlannerController(plannerService services.PlannerServiceInterface) *PlannerController {
	return &PlannerController{
		plannerService: plannerService,
	}
}

func (pc *PlannerController) PlanTripHandler(c *gin.Context) {
	var req request_models.PlanTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := pc.plannerService.PlanTrip(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Trip planned successfully")
}
