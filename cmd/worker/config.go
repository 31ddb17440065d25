package main

import (
	"log"
	"os"
	"strconv"
)

// WorkerConfig holds worker-specific tuning
type WorkerConfig struct {
	Concurrency int
	HealthPort  string
}

func loadWorkerConfig() *WorkerConfig {
	cfg := &WorkerConfig{
		Concurrency: getEnvInt("WORKER_CONCURRENCY", 10),
		HealthPort:  getEnv("WORKER_HEALTH_PORT", "9999"),
	}

	log.Printf("[Config] Concurrency: %d, Health port: %s", cfg.Concurrency, cfg.HealthPort)
	return cfg
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
