package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/alwaha/restaurant-backend/internal/handlers"
	"github.com/alwaha/restaurant-backend/internal/jwtmiddleware"
)

type Deps struct {
	MenuHandler        *handlers.MenuHandler
	OrderHandler       *handlers.OrderHandler
	ReservationHandler *handlers.ReservationHandler
	SiteHandler        *handlers.SiteHandler
	AuthHandler        *handlers.AuthHandler
	SearchHandler      *handlers.SearchHandler
	JWTSecret          []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	v1 := e.Group("/api/v1")

	site := v1.Group("/site")
	site.GET("/all", d.SiteHandler.GetAll)
	site.GET("/info", d.SiteHandler.GetInfo)
	site.GET("/contact", d.SiteHandler.GetContact)
	site.GET("/social", d.SiteHandler.GetSocial)
	site.GET("/settings", d.SiteHandler.GetSettings)

	menu := v1.Group("/menu")
	menu.GET("", d.MenuHandler.GetMenu)
	menu.GET("/all", d.MenuHandler.GetMenuAll)
	menu.GET("/categories", d.MenuHandler.GetCategories)
	menu.GET("/search", d.SearchHandler.SearchMenu)
	menu.GET("/:id", d.MenuHandler.GetMenuItem)

	orders := v1.Group("/orders")
	orders.POST("", d.OrderHandler.CreateOrder)
	orders.GET("/:id", d.OrderHandler.GetOrder)
	orders.GET("/number/:orderNumber", d.OrderHandler.GetOrderByNumber)
	orders.GET("/customer/:email", d.OrderHandler.GetOrdersByCustomer)

	v1.POST("/reservations", d.ReservationHandler.CreateReservation)

	v1.POST("/admin/login", d.AuthHandler.Login)

	admin := v1.Group("/admin", jwtmiddleware.AdminOnly(d.JWTSecret))

	admin.GET("/menu", d.MenuHandler.AdminList)
	admin.POST("/menu", d.MenuHandler.CreateMenuItem)
	admin.PUT("/menu/:id", d.MenuHandler.UpdateMenuItem)
	admin.DELETE("/menu/:id", d.MenuHandler.DeleteMenuItem)

	admin.GET("/orders", d.OrderHandler.ListOrders)
	admin.PATCH("/orders/:id/status", d.OrderHandler.UpdateOrderStatus)

	admin.GET("/reservations", d.ReservationHandler.ListReservations)
	admin.GET("/reservations/today", d.ReservationHandler.TodayReservations)
	admin.GET("/reservations/upcoming", d.ReservationHandler.UpcomingReservations)
	admin.PATCH("/reservations/:id", d.ReservationHandler.UpdateReservation)
	admin.PATCH("/reservations/:id/status", d.ReservationHandler.UpdateReservationStatus)
	admin.DELETE("/reservations/:id", d.ReservationHandler.DeleteReservation)
}
