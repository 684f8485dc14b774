package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"tabi/internal/models/request_models"
	"tabi/internal/services"
	"tabi/pkg/utils"
)

type TemplateController struct {
	templateService services.TemplateServiceInterface
}

func NewTemplateController(templateService services.TemplateServiceInterface) *TemplateController {
	return &TemplateController{
		templateService: templateService,
	}
}

// GenerateTemplate godoc
// @Summary Build a starter template for a trip
// @Description Room split, daily schedule skeleton, budget estimate and packing list
// @Tags Templates
// @Accept json
// @Produce json
// @Param request body request_models.TemplateRequest true "Trip basics"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/templates [post]
func (t *TemplateController) GenerateTemplate(c *gin.Context) {
	var req request_models.TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	template, err := t.templateService.Generate(req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, template, "Template generated successfully")
}
