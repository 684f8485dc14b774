package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	dbm "tabi/internal/models/db_models"
	"tabi/internal/services"
	"tabi/pkg/utils"
)

type TravelController struct {
	travelService services.TravelServiceInterface
}

func NewTravelController(travelService services.TravelServiceInterface) *TravelController {
	return &TravelController{
		travelService: travelService,
	}
}

// ListTravels godoc
// @Summary List the caller's travels
// @Description Newest first
// @Tags Travels
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/travels [get]
func (t *TravelController) ListTravels(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	travels, err := t.travelService.List(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, travels, "Travels fetched successfully")
}

// GetTravel godoc
// @Summary Get a travel by ID
// @Tags Travels
// @Produce json
// @Param travelId path string true "Travel ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/travels/{travelId} [get]
func (t *TravelController) GetTravel(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	travelID, ok := uuidParam(c, "travelId")
	if !ok {
		return
	}

	travel, err := t.travelService.Get(c.Request.Context(), userID, travelID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, travel, "Travel fetched successfully")
}

// CreateTravel godoc
// @Summary Create a travel
// @Tags Travels
// @Accept json
// @Produce json
// @Param request body db_models.Travel true "Travel"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/travels [post]
func (t *TravelController) CreateTravel(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dbm.Travel
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	travel, err := t.travelService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondWithCode(c, http.StatusCreated, travel, "Travel created successfully")
}

// UpdateTravel godoc
// @Summary Update a travel
// @Description Only the fields present in the body change
// @Tags Travels
// @Accept json
// @Produce json
// @Param travelId path string true "Travel ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/travels/{travelId} [put]
func (t *TravelController) UpdateTravel(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	travelID, ok := uuidParam(c, "travelId")
	if !ok {
		return
	}

	patch, err := c.GetRawData()
	if err != nil || len(patch) == 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	travel, err := t.travelService.Update(c.Request.Context(), userID, travelID, patch)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, travel, "Travel updated successfully")
}

// DeleteTravel godoc
// @Summary Delete a travel and everything attached to it
// @Tags Travels
// @Produce json
// @Param travelId path string true "Travel ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/travels/{travelId} [delete]
func (t *TravelController) DeleteTravel(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	travelID, ok := uuidParam(c, "travelId")
	if !ok {
		return
	}

	if err := t.travelService.Delete(c.Request.Context(), userID, travelID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "旅行が削除されました")
}
