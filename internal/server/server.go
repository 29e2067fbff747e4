package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shelftrack/shelftrack/internal/config"
	"github.com/shelftrack/shelftrack/internal/facing"
	facingdomain "github.com/shelftrack/shelftrack/internal/facing/domain"
	"github.com/shelftrack/shelftrack/internal/identity"
	"github.com/shelftrack/shelftrack/internal/product"
	productdomain "github.com/shelftrack/shelftrack/internal/product/domain"
	"github.com/shelftrack/shelftrack/internal/store"
	storedomain "github.com/shelftrack/shelftrack/internal/store/domain"
	"github.com/shelftrack/shelftrack/internal/user"
	userdomain "github.com/shelftrack/shelftrack/internal/user/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	store.Module,
	product.Module,
	user.Module,
	facing.Module,
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(func(s *Server) { s.RegisterRoutes() }),
	fx.Invoke(RunHTTP),
)

func NewEngine(log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

type Server struct {
	engine     *gin.Engine
	cfg        config.Config
	db         *gorm.DB
	log        *zap.Logger
	catalog    *config.CatalogHolder
	facingSvc  facingdomain.Service
	storeSvc   storedomain.Service
	productSvc productdomain.Service
	userRepo   userdomain.Repository
}

type ServerParams struct {
	fx.In

	Gin        *gin.Engine
	Cfg        config.Config
	DB         *gorm.DB
	Log        *zap.Logger
	Catalog    *config.CatalogHolder
	FacingSvc  facingdomain.Service
	StoreSvc   storedomain.Service
	ProductSvc productdomain.Service
	UserRepo   userdomain.Repository
}

func NewServer(p ServerParams) *Server {
	return &Server{
		engine:     p.Gin,
		cfg:        p.Cfg,
		db:         p.DB,
		log:        p.Log.Named("server"),
		catalog:    p.Catalog,
		facingSvc:  p.FacingSvc,
		storeSvc:   p.StoreSvc,
		productSvc: p.ProductSvc,
		userRepo:   p.UserRepo,
	}
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) RegisterRoutes() {
	staff := RequireRole(identity.RoleAdmin, identity.RoleEmployee)

	facings := s.engine.Group("/podravka-facing", s.AuthRequired())
	{
		facings.GET("", staff, s.ListFacings)
		facings.GET("/user-batches", staff, s.ListUserBatches)
		facings.POST("/batch", staff, s.BatchCreateFacings)
		facings.PUT("/batch", staff, s.BatchUpdateFacings)
		facings.DELETE("/batch/:batchId", staff, s.BatchDeleteFacings)
		facings.GET("/batch/:batchId", staff, s.GetFacingsBatch)
	}

	// Read-only directory data consulted by the reporting clients.
	s.engine.GET("/stores", s.AuthRequired(), staff, s.ListStores)
	s.engine.GET("/stores/:id", s.AuthRequired(), staff, s.GetStore)
	s.engine.GET("/products", s.AuthRequired(), staff, s.ListProducts)
	s.engine.GET("/products/:id", s.AuthRequired(), staff, s.GetProduct)
	s.engine.GET("/categories", s.AuthRequired(), staff, s.ListCategories)
	s.engine.GET("/users/me", s.AuthRequired(), staff, s.GetCurrentUser)
}

func RunHTTP(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server starting", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
