package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"time"

	"usernetwork/src/domain"
	"usernetwork/src/infra/redis"
	"usernetwork/src/services/network"
	"usernetwork/src/services/requests"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Server representa o servidor HTTP da API
type Server struct {
	logger         *slog.Logger
	server         *http.Server
	mux            *http.ServeMux
	port           int
	requestService *requests.RequestService
	networkService *network.NetworkService
	readPool       *pgxpool.Pool
	redisClient    *redis.RedisClient
}

// NewServer cria uma nova instância do servidor
func NewServer(
	logger *slog.Logger,
	port int,
	requestService *requests.RequestService,
	networkService *network.NetworkService,
	readPool *pgxpool.Pool,
	redisClient *redis.RedisClient,
) *Server {
	server := &Server{
		mux:            http.NewServeMux(),
		port:           port,
		logger:         logger,
		requestService: requestService,
		networkService: networkService,
		readPool:       readPool,
		redisClient:    redisClient,
	}

	server.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      server.mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	server.mux.HandleFunc("POST /v1/requests/send/{status}/{userId}", server.withCaller(server.SendRequest))
	server.mux.HandleFunc("POST /v1/requests/review/{status}/{userId}", server.withCaller(server.ReviewRequest))
	server.mux.HandleFunc("GET /v1/user/requests/received", server.withCaller(server.ListReceivedRequests))
	server.mux.HandleFunc("GET /v1/user/connections", server.withCaller(server.ListConnections))
	server.mux.HandleFunc("GET /v1/user/feed", server.withCaller(server.GetFeed))
	server.mux.HandleFunc("GET /v1/health", server.Health)

	return server
}

// Start inicia o servidor HTTP
func (s *Server) Start() error {
	s.logger.Info("Server started", "port", s.port)

	return s.server.ListenAndServe()
}

// Shutdown encerra o servidor HTTP de forma graciosa
func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("Shutting down server...")
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

// writeDomainError traduz o erro de domínio para a classe HTTP correta.
// Nenhum erro é engolido: conflito de entrada/estado vira 4xx com a razão,
// falha de infraestrutura vira 500 genérico (e log).
func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrSelfConnection),
		errors.Is(err, domain.ErrDuplicateRelationship),
		errors.Is(err, domain.ErrInvalidAction):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrRequestNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		s.logger.Error("Unexpected error handling request", "error", err)
		http.Error(w, domain.ErrUnavailableServer.Error(), http.StatusInternalServerError)
	}
}
