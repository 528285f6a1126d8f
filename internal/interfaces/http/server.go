package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/stoneworks/inventory-api/pkg/logger"
)

// ServerConfig opciones de la aplicación Fiber.
type ServerConfig struct {
	AppName      string
	Production   bool
	AllowOrigins []string
}

// NewApp crea la aplicación Fiber con el manejador de errores y los middlewares comunes.
// Las rutas se registran aparte con Router.
func NewApp(cfg ServerConfig, log *logger.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: ErrorHandler(log, cfg.Production),
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(AccessLog(log.Component("http")))

	origins := "*"
	if len(cfg.AllowOrigins) > 0 {
		origins = strings.Join(cfg.AllowOrigins, ",")
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders: "Content-Disposition",
	}))
	return app
}
