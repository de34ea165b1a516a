package main

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"societyhub/internal/config"
	"societyhub/internal/database"
	"societyhub/internal/domain"
	"societyhub/internal/modules/approval"
	"societyhub/internal/modules/auth"
	"societyhub/internal/modules/billing"
	"societyhub/internal/modules/booking"
	"societyhub/internal/modules/facility"
	"societyhub/internal/modules/realtime"
	jwtsvc "societyhub/internal/pkg/jwt"
	"societyhub/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	unitRepo := repository.NewUnitRepository(db)
	facilityRepo := repository.NewFacilityRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	feeRepo := repository.NewFeeRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	hub := realtime.NewHub()
	defer hub.Close()

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	facilityService := facility.NewService(facilityRepo, bookingRepo)
	facilityHandler := facility.NewHandler(facilityService)

	billingService := billing.NewService(feeRepo, unitRepo)
	billingHandler := billing.NewHandler(billingService)

	bookingService := booking.NewService(bookingRepo, facilityRepo, requestRepo, billingService, hub)
	bookingHandler := booking.NewHandler(bookingService)

	approvalService := approval.NewService(requestRepo, bookingRepo, facilityRepo, userRepo, billingService, hub)
	approvalHandler := approval.NewHandler(approvalService)

	realtimeHandler := realtime.NewHandler(hub)

	r := gin.Default()

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)

		// any signed-in role
		protected := v1.Group("/")
		protected.Use(authMiddleware(j))
		{
			facilityHandler.RegisterRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			billingHandler.RegisterRoutes(protected)
			realtimeHandler.RegisterRoutes(protected)
		}

		// admin-only surfaces
		admin := v1.Group("/admin")
		admin.Use(authMiddleware(j), requireAdmin())
		{
			authHandler.RegisterAdminRoutes(admin)
			facilityHandler.RegisterAdminRoutes(admin)
			billingHandler.RegisterAdminRoutes(admin)
			approvalHandler.RegisterRoutes(admin)
		}
	}

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}

func authMiddleware(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Missing or invalid Authorization header",
				},
			})
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Invalid token",
				},
			})
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		if claims.UnitID != nil {
			c.Set("unit_id", *claims.UnitID)
		}

		c.Next()
	}
}

func requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := domain.UserRole(c.GetString("role"))
		if !domain.IsAdminRole(role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "FORBIDDEN",
					"message": "Admin role required",
				},
			})
			return
		}
		c.Next()
	}
}
