package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"tabi/internal/api/controllers"
	"tabi/pkg/config"
	mem "tabi/pkg/memcache"
	"tabi/pkg/middleware"
	"tabi/pkg/utils"
)

type RouterParams struct {
	fx.In

	Config  *config.Config
	Logger  *zap.Logger
	Tokens  *utils.TokenManager
	Revoked mem.RevokedTokenStore
	Limiter *middleware.RateLimiter

	Planner   *controllers.PlannerController
	Travels   *controllers.TravelController
	Accounts  *controllers.AccountController
	Templates *controllers.TemplateController
	TripItems []controllers.TripItemRoutes `group:"trip_item_routes"`
}

func ProvideRouter(p RouterParams) *gin.Engine {
	if p.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(p.Logger))
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		p.Logger.Error("Panic recovered",
			zap.Any("panic", recovered),
			zap.String("trace_id", c.GetString("trace_id")))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "サーバーエラーが発生しました"})
	}))
	r.Use(cors.New(cors.Config{
		AllowOrigins:  p.Config.AllowedOrigins(),
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type", middleware.TraceHeader},
		ExposeHeaders: []string{"Content-Length", middleware.TraceHeader},
		MaxAge:        12 * time.Hour,
	}))

	RegisterRoutes(r, p)
	return r
}

func RegisterRoutes(r *gin.Engine, p RouterParams) {
	auth := middleware.JWTAuthMiddleware(p.Tokens, p.Revoked)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Travel App API is running"})
	})

	accountGroup := r.Group("/accounts")
	accountGroup.POST("/register", p.Accounts.Register)
	accountGroup.POST("/login", p.Accounts.Login)
	accountGroup.POST("/logout", auth, p.Accounts.Logout)
	accountGroup.GET("/me", auth, p.Accounts.Me)

	aiGroup := r.Group("/api/ai", p.Limiter.Middleware(p.Logger))
	aiGroup.POST("/generate-plan", p.Planner.GeneratePlanHandler)
	aiGroup.POST("/recommend", p.Planner.RecommendHandler)

	r.POST("/api/templates", p.Templates.GenerateTemplate)

	travelGroup := r.Group("/api/travels", auth)
	travelGroup.GET("", p.Travels.ListTravels)
	travelGroup.POST("", p.Travels.CreateTravel)
	travelGroup.GET("/:travelId", p.Travels.GetTravel)
	travelGroup.PUT("/:travelId", p.Travels.UpdateTravel)
	travelGroup.PATCH("/:travelId", p.Travels.UpdateTravel)
	travelGroup.DELETE("/:travelId", p.Travels.DeleteTravel)
	for _, items := range p.TripItems {
		items.Register(travelGroup)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "エンドポイントが見つかりません"})
	})
}
