package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/KirolosTawadros/IMSC-HIP-Booking/config"
	"github.com/KirolosTawadros/IMSC-HIP-Booking/internal/api/handler"
	"github.com/KirolosTawadros/IMSC-HIP-Booking/internal/api/middleware"
	"github.com/KirolosTawadros/IMSC-HIP-Booking/internal/model"
	"github.com/KirolosTawadros/IMSC-HIP-Booking/pkg/jwt"
	"github.com/KirolosTawadros/IMSC-HIP-Booking/pkg/redis"
)

// Setup builds the Gin engine with every route registered.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// doctor accounts (phone-based, no token)
		users := api.Group("/users")
		{
			users.POST("/register", h.User.Register)
			users.POST("/login", middleware.RateLimit(rdb, 10, time.Minute), h.User.Login)
			users.GET("", h.User.ListUsers)
			users.GET("/pending", h.User.ListPendingUsers)
			users.PATCH("/:id/status", h.User.UpdateUserStatus)
			users.PUT("/:id", h.User.UpdateUser)
			users.DELETE("/:id",
				middleware.JWTAuth(jwtMgr, rdb),
				middleware.RoleAuth(model.StaffRoleAdmin),
				h.User.DeleteUser)
		}

		// staff auth
		auth := api.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
			auth.POST("/register", h.Auth.Register)
			auth.POST("/logout", middleware.JWTAuth(jwtMgr, rdb), h.Auth.Logout)
		}

		// hospital directory
		hospitals := api.Group("/hospitals")
		{
			hospitals.GET("", h.Hospital.ListHospitals)
			hospitals.POST("", h.Hospital.CreateHospital)
			hospitals.PUT("/:id", h.Hospital.UpdateHospital)
			hospitals.DELETE("/:id", h.Hospital.DeleteHospital)
		}

		// joint types and capacity rules
		jointTypes := api.Group("/joint-types")
		{
			jointTypes.GET("", h.JointType.ListJointTypes)
			jointTypes.POST("", h.JointType.CreateJointType)
			jointTypes.GET("/capacities", h.JointType.ListCapacities)
			jointTypes.POST("/capacities", h.JointType.CreateCapacity)
			jointTypes.PUT("/capacities/:id", h.JointType.UpdateCapacity)
			jointTypes.DELETE("/capacities/:id", h.JointType.DeleteCapacity)
			jointTypes.PUT("/:id", h.JointType.UpdateJointType)
			jointTypes.DELETE("/:id", h.JointType.DeleteJointType)
			jointTypes.GET("/:id/capacities/with-slots", h.JointType.SlotsWithStatus)
		}

		// time slots
		timeSlots := api.Group("/time-slots")
		{
			timeSlots.GET("", h.TimeSlot.ListTimeSlots)
			timeSlots.POST("", h.TimeSlot.CreateTimeSlot)
			timeSlots.PUT("/:id", h.TimeSlot.UpdateTimeSlot)
			timeSlots.DELETE("/:id", h.TimeSlot.DeleteTimeSlot)
		}

		// bookings (doctor-facing)
		bookings := api.Group("/bookings")
		{
			bookings.POST("", h.Booking.CreateBooking)
			bookings.GET("/availability", h.Booking.Availability)
			bookings.GET("/user/:userId", h.Booking.ListUserBookings)
			bookings.DELETE("/:bookingId", h.Booking.CancelBooking)
		}

		// notifications
		notifications := api.Group("/notifications")
		{
			notifications.GET("/user/:userId", h.Notification.ListUserNotifications)
			notifications.POST("", h.Notification.CreateNotification)
			notifications.PUT("/user/:userId/read-all", h.Notification.MarkAllRead)
			notifications.PUT("/:id/read", h.Notification.MarkRead)
			notifications.DELETE("/:id", h.Notification.DeleteNotification)
		}

		// staff decision endpoints (JWT protected)
		staff := api.Group("/staff")
		staff.Use(middleware.JWTAuth(jwtMgr, rdb))
		staff.Use(middleware.RoleAuth(model.StaffRoleAdmin, model.StaffRoleStaff))
		{
			staff.GET("/bookings", h.Booking.ListBookings)
			staff.GET("/bookings/pending", h.Booking.ListPendingBookings)
			staff.PUT("/bookings/:id/approve", h.Booking.ApproveBooking)
			staff.PUT("/bookings/:id/reject", h.Booking.RejectBooking)
			staff.GET("/bookings/:id/events", h.Booking.ListBookingEvents)
		}
	}

	return r
}
