package provider

import (
	"github.com/flipzokart/api/internal/cache"
	"github.com/flipzokart/api/internal/config"
	"github.com/flipzokart/api/internal/logger"
	"github.com/flipzokart/api/internal/models"
	"github.com/flipzokart/api/internal/repository"
	"github.com/flipzokart/api/internal/service"
)

// Container holds every repository and service the handlers depend on.
type Container struct {
	Config *config.Config

	// Repositories
	UserRepo      repository.UserRepository
	ProductRepo   repository.ProductRepository
	CategoryRepo  repository.CategoryRepository
	OrderRepo     repository.OrderRepository
	DashboardRepo repository.DashboardRepository

	// Services
	AuthService      *service.AuthService
	UserService      *service.UserService
	ProductService   *service.ProductService
	OrderService     *service.OrderService
	PaymentService   *service.PaymentService
	DashboardService *service.DashboardService
}

// NewContainer wires the dependency graph. InitDB must have run first.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	c := &Container{Config: cfg}
	c.initRepositories()
	c.initServices()
	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.DashboardRepo = repository.NewDashboardRepository(db)
}

func (c *Container) initServices() {
	c.AuthService = service.NewAuthService(c.Config, c.UserRepo)
	c.UserService = service.NewUserService(c.UserRepo, c.AuthService)
	c.ProductService = service.NewProductService(c.ProductRepo, c.CategoryRepo)
	c.OrderService = service.NewOrderService(c.Config, c.OrderRepo, c.ProductRepo, c.UserRepo)
	c.PaymentService = service.NewPaymentService(c.Config, models.DB)
	c.DashboardService = service.NewDashboardService(c.DashboardRepo, c.OrderRepo, c.ProductRepo, c.UserRepo)
}
