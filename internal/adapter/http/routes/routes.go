package routes

import (
	_ "oficina_nova_brasil/docs" // registers the OpenAPI document
	"oficina_nova_brasil/internal/adapter/http/handlers"
	"oficina_nova_brasil/internal/adapter/persistence/repository"
	"oficina_nova_brasil/internal/usecase"
	"oficina_nova_brasil/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups every HTTP handler mounted under /v1.
type Handlers struct {
	Clients   *handlers.ClientHandler
	Cars      *handlers.CarHandler
	Employees *handlers.EmployeeHandler
	Services  *handlers.ServiceHandler
	Orders    *handlers.ServiceOrderHandler
	Dashboard *handlers.DashboardHandler
}

// NewHandlers wires repositories and use cases over one backing store.
func NewHandlers(store interfaces.IKeyValueStore, log *zap.Logger) Handlers {
	clientRepo := repository.NewClientRepository(store)
	carRepo := repository.NewCarRepository(store)
	employeeRepo := repository.NewEmployeeRepository(store)
	serviceRepo := repository.NewServiceRepository(store)
	orderRepo := repository.NewServiceOrderRepository(store)

	resolver := usecase.NewReferenceResolver(clientRepo, carRepo, employeeRepo, serviceRepo, log.Named("resolver"))

	clientUseCase := usecase.NewClientUseCase(clientRepo, log)
	carUseCase := usecase.NewCarUseCase(carRepo, clientRepo, log)
	employeeUseCase := usecase.NewEmployeeUseCase(employeeRepo, log)
	serviceUseCase := usecase.NewServiceUseCase(serviceRepo, employeeRepo, log)
	orderUseCase := usecase.NewServiceOrderUseCase(orderRepo, clientRepo, carRepo, serviceRepo, resolver, log)
	dashboardUseCase := usecase.NewDashboardUseCase(clientRepo, carRepo, employeeRepo, serviceRepo, orderRepo)

	return Handlers{
		Clients:   handlers.NewClientHandler(clientUseCase, carUseCase, log),
		Cars:      handlers.NewCarHandler(carUseCase, resolver, log),
		Employees: handlers.NewEmployeeHandler(employeeUseCase, log),
		Services:  handlers.NewServiceHandler(serviceUseCase, resolver, log),
		Orders:    handlers.NewServiceOrderHandler(orderUseCase, resolver, log),
		Dashboard: handlers.NewDashboardHandler(dashboardUseCase, log),
	}
}

// NewRouter builds the gin engine with middlewares, swagger and /v1 routes.
func NewRouter(log *zap.Logger, h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, log)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addShopRoutes(v1, h)
	return router
}

func setMiddlewares(router *gin.Engine, log *zap.Logger) {
	router.Use(requestLogger(log))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(500)
	}))
}
