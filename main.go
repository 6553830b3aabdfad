package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"github.com/policlinico-tabancura/cerebro-backend/config"
	"github.com/policlinico-tabancura/cerebro-backend/database"
	"github.com/policlinico-tabancura/cerebro-backend/handlers"
	"github.com/policlinico-tabancura/cerebro-backend/routes"
	"github.com/policlinico-tabancura/cerebro-backend/storage"
)

func main() {
	// Cargar variables de entorno
	if err := godotenv.Load(); err != nil {
		log.Println("Advertencia: No se pudo cargar el archivo .env")
	}

	// Construir la configuración una sola vez al inicio del proceso
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error de configuración: %v", err)
	}

	// Conectar a la base de datos
	pool, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Error al conectar a la base de datos: %v", err)
	}
	defer database.CloseDB(pool)

	h := handlers.New(storage.NewPostgresStore(pool))

	// Crear instancia de Fiber con configuración
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
		AppName: "Cerebro API - Policlínico Tabancura v1.0.0",
	})

	// Configurar rutas
	routes.SetupRoutes(app, h)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).JSON(fiber.Map{
			"error":   "Ruta no encontrada",
			"message": "La ruta solicitada no existe en este servidor",
			"path":    c.Path(),
			"method":  c.Method(),
		})
	})

	// Iniciar servidor
	log.Printf("Servidor Cerebro API iniciado en puerto %s", cfg.Port)
	log.Printf("Estado del sistema: http://localhost:%s/health", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
