package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	PathClients   = "/clients"
	PathCars      = "/cars"
	PathEmployees = "/employees"
	PathServices  = "/services"
	PathOrders    = "/orders"
	PathDashboard = "/dashboard"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addShopRoutes(rg *gin.RouterGroup, h Handlers) {
	clients := rg.Group(PathClients)
	{
		clients.GET("", h.Clients.ListClients)
		clients.POST("", h.Clients.CreateClient)
		clients.GET("/:id", h.Clients.GetClient)
		clients.PUT("/:id", h.Clients.UpdateClient)
		clients.DELETE("/:id", h.Clients.DeleteClient)
		clients.GET("/:id/cars", h.Clients.ListClientCars)
	}

	cars := rg.Group(PathCars)
	{
		cars.GET("", h.Cars.ListCars)
		cars.POST("", h.Cars.CreateCar)
		cars.GET("/:id", h.Cars.GetCar)
		cars.PUT("/:id", h.Cars.UpdateCar)
		cars.DELETE("/:id", h.Cars.DeleteCar)
	}

	employees := rg.Group(PathEmployees)
	{
		employees.GET("", h.Employees.ListEmployees)
		employees.POST("", h.Employees.CreateEmployee)
		employees.GET("/:id", h.Employees.GetEmployee)
		employees.PUT("/:id", h.Employees.UpdateEmployee)
		employees.PATCH("/:id/toggle", h.Employees.ToggleEmployee)
		employees.DELETE("/:id", h.Employees.DeleteEmployee)
	}

	services := rg.Group(PathServices)
	{
		services.GET("", h.Services.ListServices)
		services.GET("/categories", h.Services.ListCategories)
		services.POST("", h.Services.CreateService)
		services.GET("/:id", h.Services.GetService)
		services.PUT("/:id", h.Services.UpdateService)
		services.PATCH("/:id/toggle", h.Services.ToggleService)
		services.DELETE("/:id", h.Services.DeleteService)
	}

	orders := rg.Group(PathOrders)
	{
		orders.GET("", h.Orders.ListOrders)
		orders.POST("", h.Orders.CreateOrder)
		orders.GET("/:id", h.Orders.GetOrder)
		orders.PUT("/:id", h.Orders.UpdateOrder)
		orders.DELETE("/:id", h.Orders.DeleteOrder)
		orders.PATCH("/:id/status", h.Orders.ChangeStatus)
		orders.GET("/:id/print", h.Orders.PrintOrder)
		orders.POST("/:id/items", h.Orders.AddItem)
		orders.DELETE("/:id/items/:serviceId", h.Orders.RemoveItem)
	}

	rg.GET(PathDashboard, h.Dashboard.GetDashboard)
}
