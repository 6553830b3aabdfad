package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
)

// Config contiene la configuración de la aplicación, construida una sola vez
// al inicio del proceso e inyectada donde se necesite
type Config struct {
	DBHost     string
	DBName     string
	DBUser     string
	DBPassword string
	DBPort     string
	Port       string // Puerto del servidor HTTP
}

// Load construye la configuración desde las variables de entorno y la valida
func Load() (*Config, error) {
	cfg := &Config{
		DBHost:     os.Getenv("POSTGRES_HOST"),
		DBName:     os.Getenv("POSTGRES_DATABASE"),
		DBUser:     os.Getenv("POSTGRES_USER"),
		DBPassword: os.Getenv("POSTGRES_PASSWORD"),
		DBPort:     getEnvConDefault("POSTGRES_PORT", "5432"),
		Port:       getEnvConDefault("PORT", "3000"),
	}

	if err := cfg.validar(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validar verifica que la configuración mínima esté presente
func (c *Config) validar() error {
	if c.DBHost == "" {
		return fmt.Errorf("POSTGRES_HOST no está definida")
	}
	if c.DBName == "" {
		return fmt.Errorf("POSTGRES_DATABASE no está definida")
	}
	if c.DBUser == "" {
		return fmt.Errorf("POSTGRES_USER no está definida")
	}
	if _, err := strconv.Atoi(c.DBPort); err != nil {
		return fmt.Errorf("POSTGRES_PORT inválido: %q", c.DBPort)
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("PORT inválido: %q", c.Port)
	}
	return nil
}

// DSN arma la cadena de conexión a PostgreSQL.
// sslmode=disable se mantiene por paridad con el entorno desplegado (Coolify)
func (c *Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		url.QueryEscape(c.DBUser),
		url.QueryEscape(c.DBPassword),
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

func getEnvConDefault(clave, valorDefault string) string {
	if valor := os.Getenv(clave); valor != "" {
		return valor
	}
	return valorDefault
}
