package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"tabi/internal/repositories"
	"tabi/internal/services"
	"tabi/pkg/utils"
)

// TripItemRoutes mounts one trip-item resource under the travels group.
type TripItemRoutes interface {
	Register(travels *gin.RouterGroup)
}

// TripItemController serves /api/travels/:travelId/<resource> for one record
// kind.
type TripItemController[T any, P repositories.TripItemPtr[T]] struct {
	resource string
	service  services.TripItemServiceInterface[T, P]
}

func NewTripItemController[T any, P repositories.TripItemPtr[T]](
	resource string,
	service services.TripItemServiceInterface[T, P],
) *TripItemController[T, P] {
	return &TripItemController[T, P]{resource: resource, service: service}
}

func (t *TripItemController[T, P]) Register(travels *gin.RouterGroup) {
	items := travels.Group("/:travelId/" + t.resource)
	items.GET("", t.List)
	items.POST("", t.Create)
	items.PUT("/:itemId", t.Update)
	items.PATCH("/:itemId", t.Update)
	items.DELETE("/:itemId", t.Delete)
}

func (t *TripItemController[T, P]) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	travelID, ok := uuidParam(c, "travelId")
	if !ok {
		return
	}

	items, err := t.service.List(c.Request.Context(), userID, travelID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "Fetched "+t.resource)
}

func (t *TripItemController[T, P]) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	travelID, ok := uuidParam(c, "travelId")
	if !ok {
		return
	}

	item := P(new(T))
	if err := c.ShouldBindJSON(item); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	created, err := t.service.Create(c.Request.Context(), userID, travelID, item)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondWithCode(c, http.StatusCreated, created, "Created")
}

func (t *TripItemController[T, P]) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	travelID, ok := uuidParam(c, "travelId")
	if !ok {
		return
	}
	itemID, ok := uuidParam(c, "itemId")
	if !ok {
		return
	}

	patch, err := c.GetRawData()
	if err != nil || len(patch) == 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	updated, err := t.service.Update(c.Request.Context(), userID, travelID, itemID, patch)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, updated, "Updated")
}

func (t *TripItemController[T, P]) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	travelID, ok := uuidParam(c, "travelId")
	if !ok {
		return
	}
	itemID, ok := uuidParam(c, "itemId")
	if !ok {
		return
	}

	if err := t.service.Delete(c.Request.Context(), userID, travelID, itemID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Deleted")
}
