package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"tripwise/internal/models/response_models"
	"tripwise/internal/services"
	"tripwise/pkg/utils"
)

type HotelController struct {
	hotelService services.HotelServiceInterface
}

func NewHotelController(hotelService services.HotelServiceInterface) *HotelController {
	return &HotelController{
		hotelService: hotelService,
	}
}

func (hc *HotelController) SearchOffersHandler(c *gin.Context) {
	location := c.Query("location")
	checkin := c.Query("checkin")
	checkout := c.Query("checkout")
	if location == "" || checkin == "" || checkout == "" {
		utils.RespondError(c, http.StatusBadRequest, "location, checkin and checkout are required")
		return
	}

	adults, err := strconv.Atoi(c.DefaultQuery("adults", "2"))
	if err != nil || adults < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid adults count")
		return
	}
	rooms, err := strconv.Atoi(c.DefaultQuery("rooms", "1"))
	if err != nil || rooms < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid rooms count")
		return
	}
	max, err := strconv.Atoi(c.DefaultQuery("max", "10"))
	if err != nil || max < 1 || max > 50 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid max results (must be 1-50)")
		return
	}

	offers, err := hc.hotelService.SearchOffers(c.Request.Context(), location, checkin, checkout, adults, rooms, max)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	resp := make([]response_models.HotelOfferResponse, 0, len(offers))
	for _, o := range offers {
		resp = append(resp, response_models.FromHotelOffer(o))
	}
	utils.RespondSuccess(c, resp, "Fetched hotel offers successfully")
}

func (hc *HotelController) CheapestHotelHandler(c *gin.Context) {
	location := c.Query("location")
	checkin := c.Query("checkin")
	checkout := c.Query("checkout")
	if location == "" || checkin == "" || checkout == "" {
		utils.RespondError(c, http.StatusBadRequest, "location, checkin and checkout are required")
		return
	}

	offer, err := hc.hotelService.FindCheapestHotel(c.Request.Context(), location, checkin, checkout, 2, 1, 10)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.FromHotelOffer(*offer), "Fetched cheapest hotel")
}
