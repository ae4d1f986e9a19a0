package api

import (
	v1 "github.com/EnriqueHBN/TransactionalApp/internal/api/v1"
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(app *fiber.App, handler *v1.Handler) {
	app.Get("/ping", handler.Pong)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Post("/api/register", handler.Register)
	app.Post("/api/transactions", handler.CreateTransaction)
	app.Get("/api/users/:user_id/transactions", handler.GetUserTransactions)
	app.Get("/api/transactions/:id", handler.GetTransaction)
	app.Put("/api/transactions/:id", handler.UpdateTransaction)
	app.Delete("/api/transactions/:id", handler.DeleteTransaction)
}
