package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/placementportal/internal/app/controllers"
	"github.com/yigit/placementportal/internal/app/models"
	"github.com/yigit/placementportal/internal/middleware"
)

// Controllers groups the HTTP handlers mounted under /api
type Controllers struct {
	Auth         *controllers.AuthController
	Placement    *controllers.PlacementController
	Admin        *controllers.AdminController
	CompanyVisit *controllers.CompanyVisitController
	SuperAdmin   *controllers.SuperAdminController
}

// Options tunes per-route middleware
type Options struct {
	// AuthLimiter throttles login and registration per client IP; nil disables it
	AuthLimiter    *middleware.RateLimiter
	MaxUploadBytes int64
}

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	ctrls *Controllers,
	authMiddleware *middleware.AuthMiddleware,
	opts Options,
) {
	api := router.Group("/api")

	throttle := func(c *gin.Context) { c.Next() }
	if opts.AuthLimiter != nil {
		throttle = opts.AuthLimiter.Middleware()
	}

	// --- Public Auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", throttle, ctrls.Auth.Register)
		auth.POST("/register-admin", throttle, ctrls.Auth.RegisterAdmin)
		auth.POST("/register-superadmin", throttle, ctrls.Auth.RegisterSuperAdmin)
		auth.POST("/login", throttle, ctrls.Auth.Login)
		auth.GET("/me", authMiddleware.JWTAuth(), ctrls.Auth.Me)
	}

	// --- Placements ---
	placements := api.Group("/placements")
	{
		placements.GET("", ctrls.Placement.ListApproved)

		authenticated := placements.Group("")
		authenticated.Use(authMiddleware.JWTAuth())
		{
			submit := []gin.HandlerFunc{ctrls.Placement.Submit}
			if opts.MaxUploadBytes > 0 {
				submit = append([]gin.HandlerFunc{middleware.MaxBodyBytes(opts.MaxUploadBytes)}, submit...)
			}
			authenticated.POST("/submit", submit...)
			authenticated.GET("/my", ctrls.Placement.ListMine)
		}

		placements.GET("/:id", ctrls.Placement.GetApproved)
	}

	// --- Placement moderation (admin and superadmin) ---
	admin := api.Group("/admin")
	admin.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/placements/pending", ctrls.Admin.ListPending)
		admin.GET("/placements", ctrls.Admin.ListAll)
		admin.PUT("/placements/:id/approve", ctrls.Admin.Approve)
		admin.PUT("/placements/:id/reject", ctrls.Admin.Reject)
	}

	// --- Company visits ---
	visits := api.Group("/company-visits")
	{
		visits.GET("", ctrls.CompanyVisit.List)
		visits.GET("/:id", ctrls.CompanyVisit.Get)

		staff := visits.Group("")
		staff.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(models.RoleAdmin))
		{
			staff.POST("", ctrls.CompanyVisit.Create)
			staff.PUT("/:id", ctrls.CompanyVisit.Update)
			staff.DELETE("/:id", ctrls.CompanyVisit.Delete)
			staff.PUT("/:id/archive", ctrls.CompanyVisit.Archive)
		}
	}

	// --- Account administration (superadmin only) ---
	superadmin := api.Group("/superadmin")
	superadmin.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(models.RoleSuperAdmin))
	{
		superadmin.GET("/users", ctrls.SuperAdmin.ListUsers)
		superadmin.GET("/stats", ctrls.SuperAdmin.Stats)
		superadmin.GET("/users/:userId", ctrls.SuperAdmin.GetUser)
		superadmin.PUT("/users/:userId/block", ctrls.SuperAdmin.Block)
		superadmin.PUT("/users/:userId/unblock", ctrls.SuperAdmin.Unblock)
		superadmin.DELETE("/users/:userId", ctrls.SuperAdmin.Delete)
	}
}
