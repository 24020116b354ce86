package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"userhub/cmd/fx/account_fx"
	"userhub/cmd/fx/auth_fx"
	"userhub/cmd/fx/controllers_fx"
	"userhub/cmd/fx/db_fx"
	"userhub/cmd/fx/registry_fx"
	"userhub/internal/api/controllers"
	"userhub/internal/infra"
	"userhub/pkg/middleware"
	"userhub/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		fx.Provide(infra.LoadConfig),
		db_fx.Module,
		auth_fx.Module,
		account_fx.Module,
		controllers_fx.Module,
		registry_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
		fx.Invoke(RegisterService),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *infra.Config, db *gorm.DB) {
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			err := server.Shutdown(ctx)
			infra.ClosePostgresql(db)
			return err
		},
	})
}

func RegisterService(lc fx.Lifecycle, registry infra.ServiceRegistry) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := registry.Register(ctx); err != nil {
				log.Printf("Service registration failed: %v", err)
				return err
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if err := registry.Deregister(ctx); err != nil {
				log.Printf("Service deregistration failed: %v", err)
			}
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	healthController *controllers.HealthController,
	verifier utils.TokenVerifier) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, healthController, verifier)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	healthController *controllers.HealthController,
	verifier utils.TokenVerifier) {

	r.GET("/health", healthController.Check)

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.GET("/:id", accountController.GetProfile)

	authed := accounts.Group("")
	authed.Use(middleware.JWTAuthMiddleware(verifier))
	authed.PUT("/:id", accountController.UpdateProfile)
	authed.PUT("/:id/preferences", accountController.UpdatePreferences)
}
