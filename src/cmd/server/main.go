package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"
	"usernetwork/src/helper/env"
	"usernetwork/src/infra/kafka"
	"usernetwork/src/infra/postgres"
	"usernetwork/src/infra/redis"
	"usernetwork/src/repositories"
	"usernetwork/src/server"
	"usernetwork/src/services/events"
	"usernetwork/src/services/network"
	"usernetwork/src/services/requests"

	"go.uber.org/fx"
)

func main() {
	// Configurar logger
	log.SetOutput(os.Stdout)
	log.Println("Starting user network API with Uber Fx...")

	app := fx.New(
		// Providers
		fx.Provide(
			newLogger,
			newReadWriteClient,
			newRedisClient,
			newKafkaClient,
			newEventPublisher,
			newRelationshipQueryRepository,
			newCachedConnectionsRepository,
			newRelationshipWriteRepository,
			newUserRepository,
			newRequestService,
			newNetworkService,
			newServer,
		),

		// Invocations
		fx.Invoke(registerServerHooks),
	)

	// Start the application
	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	// Wait for app to exit gracefully
	<-app.Done()
}

func newLogger() *slog.Logger {
	logLevel := env.GetString("LOG_LEVEL", "info")
	var level slog.Level

	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger
}

// newReadWriteClient configura os pools de leitura e escrita do Postgres
func newReadWriteClient() (*postgres.ReadWriteClient, error) {
	dbReadHost := env.MustGetString("DB_READ_HOST")
	dbWriteHost := env.MustGetString("DB_WRITE_HOST")
	dbReadPort := env.GetString("DB_READ_PORT", "5432")
	dbWritePort := env.GetString("DB_WRITE_PORT", "5432")
	dbname := env.MustGetString("DB_NAME")
	dbUser := env.MustGetString("DB_USER")
	dbPassword := env.MustGetString("DB_PASSWORD")
	maxConnections := env.GetInt("DB_MAX_POOL_CONNECTIONS", 25)

	return postgres.NewReadWriteClient(dbReadHost, dbWriteHost, dbReadPort, dbWritePort, dbname, dbUser, dbPassword, maxConnections)
}

func newRedisClient() *redis.RedisClient {
	redisAddrs := env.MustGetString("REDIS_HOSTS")
	redisPoolSize := env.GetInt("REDIS_POOL_SIZE", 50)
	redisTTL := env.GetInt("REDIS_TTL_SECONDS", 300)

	return redis.NewRedisClient(redisAddrs, redisPoolSize, time.Duration(redisTTL)*time.Second)
}

func newKafkaClient() (*kafka.KafkaClient, error) {
	brokers := env.MustGetString("KAFKA_BROKERS")
	return kafka.NewKafkaClient(brokers)
}

func newEventPublisher(logger *slog.Logger, kafkaClient *kafka.KafkaClient) *events.DomainEventPublisher {
	topic := env.GetString("CONNECTION_EVENTS_TOPIC", "usernetwork.connection-events")
	return events.NewDomainEventPublisher(logger, kafkaClient, topic)
}

func newRelationshipQueryRepository(readWriteClient *postgres.ReadWriteClient) *repositories.RelationshipQueryRepository {
	return repositories.NewRelationshipQueryRepository(readWriteClient.GetReadPool())
}

func newCachedConnectionsRepository(relationshipQueryRepository *repositories.RelationshipQueryRepository, redisClient *redis.RedisClient) *repositories.CachedConnectionsRepository {
	return repositories.NewCachedConnectionsRepository(relationshipQueryRepository, redisClient)
}

func newRelationshipWriteRepository(readWriteClient *postgres.ReadWriteClient, cachedConnectionsRepository *repositories.CachedConnectionsRepository) *repositories.RelationshipWriteRepository {
	return repositories.NewRelationshipWriteRepository(readWriteClient.GetWritePool(), cachedConnectionsRepository)
}

func newUserRepository(readWriteClient *postgres.ReadWriteClient) *repositories.UserRepository {
	return repositories.NewUserRepository(readWriteClient.GetReadPool())
}

func newRequestService(
	logger *slog.Logger,
	relationshipWriteRepository *repositories.RelationshipWriteRepository,
	relationshipQueryRepository *repositories.RelationshipQueryRepository,
	userRepository *repositories.UserRepository,
	eventPublisher *events.DomainEventPublisher,
) *requests.RequestService {
	return requests.NewRequestService(logger, relationshipWriteRepository, relationshipQueryRepository, userRepository, eventPublisher)
}

func newNetworkService(
	cachedConnectionsRepository *repositories.CachedConnectionsRepository,
	relationshipQueryRepository *repositories.RelationshipQueryRepository,
	userRepository *repositories.UserRepository,
) *network.NetworkService {
	return network.NewNetworkService(cachedConnectionsRepository, relationshipQueryRepository, userRepository)
}

func newServer(
	logger *slog.Logger,
	requestService *requests.RequestService,
	networkService *network.NetworkService,
	readWriteClient *postgres.ReadWriteClient,
	redisClient *redis.RedisClient,
) *server.Server {
	port := env.GetInt("SERVER_PORT", 8888)

	return server.NewServer(logger, port, requestService, networkService, readWriteClient.GetReadPool(), redisClient)
}

// registerServerHooks registers lifecycle hooks for the HTTP server
func registerServerHooks(lc fx.Lifecycle, srv *server.Server, readWriteClient *postgres.ReadWriteClient, kafkaClient *kafka.KafkaClient) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// Start server in a separate goroutine
			go func() {
				if err := srv.Start(); err != nil && err != http.ErrServerClosed {
					log.Fatalf("Server failed: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Create timeout context for graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()

			log.Println("Shutting down server...")
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Printf("Server forced to shutdown: %v", err)
				return err
			}

			readWriteClient.GetReadPool().Close()
			readWriteClient.GetWritePool().Close()
			if err := kafkaClient.Close(); err != nil {
				log.Printf("Failed to close kafka client: %v", err)
			}

			log.Println("Server exited gracefully")
			return nil
		},
	})
}
