package database

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/policlinico-tabancura/cerebro-backend/config"
)

// ConnectDB crea el pool de conexiones a PostgreSQL a partir de la
// configuración inyectada y verifica que la base de datos responda
func ConnectDB(cfg *config.Config) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, err
	}
	poolConfig.MaxConns = 30                      // Número máximo de conexiones abiertas al mismo tiempo
	poolConfig.MinConns = 5                       // Conexiones mínimas que se mantienen en espera
	poolConfig.MaxConnLifetime = time.Hour        // Vida máxima de una conexión antes de ser cerrada
	poolConfig.MaxConnIdleTime = time.Minute * 30 // Tiempo máximo de inactividad
	poolConfig.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, err
	}

	// Probar la conexión con una consulta rápida
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var version string
	if err := pool.QueryRow(ctx, "SELECT version()").Scan(&version); err != nil {
		pool.Close()
		return nil, err
	}

	log.Println("Conectado exitosamente a la base de datos:", version)
	return pool, nil
}

// CloseDB cierra el pool de conexiones
func CloseDB(pool *pgxpool.Pool) {
	if pool != nil {
		pool.Close()
		log.Println("Pool de conexiones cerrado")
	}
}
