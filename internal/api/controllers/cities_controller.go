package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tripwise/internal/models/request_models"
	"tripwise/internal/models/response_models"
	"tripwise/internal/services"
	"tripwise/pkg/utils"
)

type CityController struct {
	resolver services.CityResolverInterface
}

func NewCityController(resolver services.CityResolverInterface) *CityController {
	return &CityController{
		resolver: resolver,
	}
}

func (cc *CityController) ResolveCityHandler(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		utils.RespondError(c, http.StatusBadRequest, "name query parameter is required")
		return
	}

	code, err := cc.resolver.Resolve(c.Request.Context(), name)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.CityCodeResponse{City: name, Code: code}, "City code resolved")
}

func (cc *CityController) ResolveCitiesHandler(c *gin.Context) {
	var req request_models.ResolveCitiesRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Names) == 0 {
		utils.RespondError(c, http.StatusBadRequest, "names is required")
		return
	}

	codes, err := cc.resolver.ResolveBatch(c.Request.Context(), req.Names)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, codes, "City codes resolved")
}
