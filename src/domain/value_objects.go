package domain

import (
	"errors"
	"time"
	"usernetwork/src/domain/entities"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrRequestNotFound = errors.New("pending connection request not found")

	ErrSelfConnection        = errors.New("can't make connection with self")
	ErrDuplicateRelationship = errors.New("a relationship already exists between these users")
	ErrInvalidAction         = errors.New("action is not supported")

	ErrUnavailableServer = errors.New("Oops, something unexpected happened. Please try again later.")
)

// ############################################################
// ############ PROCESSO DE LEITURA DO GRAFO ##################
// ############################################################

// ReceivedRequest é um pedido pendente recebido, já enriquecido com a
// projeção profile-safe de quem enviou.
type ReceivedRequest struct {
	Request  entities.ConnectionRequest `json:"request"`
	FromUser entities.PublicProfile     `json:"from_user"`
}

// ############################################################
// ############ EVENTOS DE DOMÍNIO (KAFKA) ####################
// ############################################################

const (
	EventConnectionRequestCreated   = "connection_request.created"
	EventConnectionRequestResponded = "connection_request.responded"
)

// ConnectionEventData carrega o estado do edge no momento do evento.
type ConnectionEventData struct {
	RequestID  int64                  `json:"request_id"`
	FromUserID int64                  `json:"from_user_id"`
	ToUserID   int64                  `json:"to_user_id"`
	Status     entities.RequestStatus `json:"status"`
}

// ConnectionEvent é o envelope publicado no tópico de eventos.
type ConnectionEvent struct {
	EventID    string              `json:"event_id"`
	EventType  string              `json:"event_type"`
	OccurredAt time.Time           `json:"occurred_at"`
	Data       ConnectionEventData `json:"data"`
}
