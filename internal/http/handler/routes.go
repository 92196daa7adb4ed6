package handler

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"pawshugs/internal/model"
	"pawshugs/internal/repository"
	"pawshugs/internal/service"
)

// Services bundles the use cases the HTTP layer exposes.
type Services struct {
	Catalog     service.PetCatalog
	Adoption    service.AdoptionWorkflow
	Seeder      service.SeedLoader
	Diagnostics service.Diagnostics
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app. store may be
// nil when the database is unconfigured; diagnostics and health report that
// state instead of failing.
func RegisterRoutes(app *fiber.App, store service.StoreProber, svcs Services) {
	app.Get("/", Root())
	app.Get("/test", TestDatabase(svcs.Diagnostics))
	app.Post("/seed", SeedPets(svcs.Seeder))
	app.Get("/api/pets", ListPets(svcs.Catalog))
	app.Post("/api/adopt", CreateAdoptionRequest(svcs.Adoption))
	app.Get("/schema", SchemaInfo())
	app.Get("/health", HealthCheck(store))
	app.Get("/healthz", LivenessProbe())
}

// Root greets API consumers.
//
// @Summary Welcome message
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func Root() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Welcome to Paws & Hugs API"})
	}
}

// TestDatabase reports store connectivity and configuration status. It always
// answers 200; probe failures are embedded in the payload.
//
// @Summary Store diagnostics
// @Produce json
// @Success 200 {object} service.StatusReport
// @Router /test [get]
func TestDatabase(diag service.Diagnostics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(diag.Report(c.UserContext()))
	}
}

// SeedPets populates the pet collection with the starter set when it is empty.
//
// @Summary Seed sample pets
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} errorPayload
// @Router /seed [post]
func SeedPets(seeder service.SeedLoader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := seeder.SeedIfEmpty(c.UserContext())
		if err != nil {
			if errors.Is(err, repository.ErrUnavailable) {
				return writeStoreUnconfigured(c)
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		msg := "Seeded"
		if res.AlreadySeeded {
			msg = "Already seeded"
		}
		return c.JSON(fiber.Map{"message": msg, "count": res.Count})
	}
}

// ListPets returns available pets matching the optional filters.
//
// @Summary List adoptable pets
// @Produce json
// @Param species query string false "exact species match"
// @Param size query string false "exact size match"
// @Param q query string false "case-insensitive substring over name, description, location"
// @Success 200 {array} model.PetView
// @Failure 500 {object} errorPayload
// @Router /api/pets [get]
func ListPets(catalog service.PetCatalog) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter := repository.PetFilter{
			Species: c.Query("species"),
			Size:    c.Query("size"),
			Query:   c.Query("q"),
		}

		views, err := catalog.ListPets(c.UserContext(), filter)
		if err != nil {
			if errors.Is(err, repository.ErrUnavailable) {
				return writeStoreUnconfigured(c)
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(views)
	}
}

// CreateAdoptionRequest validates and files an adoption request.
//
// @Summary Submit an adoption request
// @Accept json
// @Produce json
// @Param request body model.AdoptionRequest true "adoption request"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /api/adopt [post]
func CreateAdoptionRequest(workflow service.AdoptionWorkflow) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.AdoptionRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_PAYLOAD", "cannot parse request body")
		}

		requestID, err := workflow.SubmitRequest(c.UserContext(), &req)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidPetID):
				return writeError(c, fiber.StatusBadRequest, "INVALID_PET_ID", "Invalid pet ID")
			case errors.Is(err, service.ErrPetNotFound):
				return writeError(c, fiber.StatusNotFound, "PET_NOT_FOUND", "Pet not found")
			case errors.Is(err, repository.ErrUnavailable):
				return writeStoreUnconfigured(c)
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.JSON(fiber.Map{"message": "Request received", "request_id": requestID})
	}
}

// SchemaInfo serves the statically declared entity registry.
//
// @Summary Entity types exposed for introspection
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /schema [get]
func SchemaInfo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"models":   model.EntityNames(),
			"entities": model.Registry,
		})
	}
}

// HealthCheck pings the store with a short timeout.
//
// @Summary Store health check
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} errorPayload
// @Router /health [get]
func HealthCheck(store service.StoreProber) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if store == nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is a simple liveness probe.
//
// @Summary Liveness probe
// @Success 200
// @Router /healthz [get]
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
