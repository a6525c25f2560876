package router

import (
	"seatflow/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupUserRoutes(api *echo.Group, handler *rest.UserHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc, selfOrAdmin echo.MiddlewareFunc) {
	users := api.Group("/users")

	users.GET("/email-verification/:code", handler.VerifyEmail)
	users.POST("/register", handler.Register)
	users.POST("/login", handler.Login)

	users.POST("/logout", handler.Logout, authRequired)
	users.PUT("/:id", handler.UpdateUser, authRequired, selfOrAdmin)
	users.GET("", handler.GetAllUsers, authRequired, adminOnly)
	users.GET("/:id", handler.GetUserByID, authRequired, selfOrAdmin)
	users.DELETE("/:id", handler.DeleteUser, authRequired, adminOnly)
}

func SetupSeatRoutes(api *echo.Group, handler *rest.SeatHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	seats := api.Group("/seats")

	seats.GET("", handler.GetAllSeats, authRequired)
	seats.GET("/:id", handler.GetSeatByID, authRequired)
	seats.GET("/:id/availability", handler.GetAvailability, authRequired)

	seats.POST("", handler.CreateSeat, authRequired, adminOnly)
	seats.PUT("/:id/status", handler.UpdateSeatStatus, authRequired, adminOnly)
}

func SetupBookingRoutes(api *echo.Group, handler *rest.BookingHandler, authRequired echo.MiddlewareFunc) {
	bookings := api.Group("/bookings", authRequired)

	bookings.POST("", handler.CreateBooking)
	bookings.GET("", handler.GetMyBookings)
	bookings.PUT("/:id/cancel", handler.CancelBooking)
	bookings.PUT("/:id/checkin", handler.CheckIn)
	bookings.POST("/:id/rating", handler.RateBooking)
}

func SetupAllocationRoutes(api *echo.Group, handler *rest.AllocationHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	allocation := api.Group("/allocation", authRequired, adminOnly)

	allocation.POST("/optimize", handler.Optimize)
}

func SetupRecommendationRoutes(api *echo.Group, handler *rest.RecommendHandler, authRequired echo.MiddlewareFunc) {
	reco := api.Group("/recommendations", authRequired)

	reco.GET("", handler.Recommend)
}

func SetupAnalyticsRoutes(api *echo.Group, handler *rest.AnalyticsHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	analytics := api.Group("/analytics", authRequired, adminOnly)

	analytics.GET("/occupancy", handler.Occupancy)
	analytics.GET("/popular-seats", handler.PopularSeats)
}
