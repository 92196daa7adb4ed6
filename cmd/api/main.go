package main

import (
	"context"
	"log"
	"strings"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pawshugs/docs"
	"pawshugs/internal/config"
	"pawshugs/internal/database"
	handlers "pawshugs/internal/http/handler"
	"pawshugs/internal/http/middleware"
	"pawshugs/internal/model"
	"pawshugs/internal/otel"
	"pawshugs/internal/repository"
	mongorepo "pawshugs/internal/repository/mongo"
	"pawshugs/internal/service"
)

// @title Paws & Hugs - Pet Adoption API
// @version 1.0
// @BasePath /
func main() {
	ctx := context.Background()

	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	// Initialize tracing (OTLP exporter; degrades to noop when unreachable)
	shutdownTracing, err := otel.Init(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		_ = shutdownTracing(ctx)
	}()

	// Connect to MongoDB. A missing or failing store is not fatal: the API
	// serves in degraded mode and /test reports the state.
	var (
		store    service.StoreProber
		pets     repository.PetRepository             = repository.UnavailablePets{}
		requests repository.AdoptionRequestRepository = repository.UnavailableAdoptionRequests{}
	)
	mdb, err := database.Connect(ctx, cfg.Database)
	switch {
	case err == nil:
		defer mdb.Close(ctx)
		log.Printf("connected to database %q", mdb.Name())
		store = mdb
		pets = mongorepo.NewPetMongo(mdb.Collection(model.CollectionPets))
		requests = mongorepo.NewAdoptionRequestMongo(mdb.Collection(model.CollectionAdoptionRequests))
	default:
		log.Printf("store unavailable, serving degraded: %v", err)
	}

	svcs := handlers.Services{
		Catalog:     service.NewPetCatalog(pets),
		Adoption:    service.NewAdoptionWorkflow(pets, requests),
		Seeder:      service.NewSeedLoader(pets),
		Diagnostics: service.NewDiagnostics(store, cfg.Database.URL != "", cfg.Database.Name != ""),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders: "*",
	}))

	promReg := prometheus.NewRegistry()
	promMiddleware, err := middleware.NewPrometheusMiddleware(promReg)
	if err != nil {
		log.Fatalf("failed to register prometheus metrics: %v", err)
	}
	app.Use(promMiddleware.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(promReg, promhttp.HandlerOpts{})))

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, store, svcs)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
