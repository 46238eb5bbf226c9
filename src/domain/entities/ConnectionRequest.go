package entities

import "time"

// Status de um pedido de conexão. Não existe default implícito: todo registro
// nasce com um status explícito de criação (interested/ignored) e só muda
// através da ação de review (accepted/rejected).
type RequestStatus string

const (
	StatusInterested RequestStatus = "interested"
	StatusIgnored    RequestStatus = "ignored"
	StatusAccepted   RequestStatus = "accepted"
	StatusRejected   RequestStatus = "rejected"
)

// IsCreationStatus diz se o status pode ser usado na criação de um edge.
func (s RequestStatus) IsCreationStatus() bool {
	return s == StatusInterested || s == StatusIgnored
}

// IsDecisionStatus diz se o status pode ser usado no review de um pedido.
func (s RequestStatus) IsDecisionStatus() bool {
	return s == StatusAccepted || s == StatusRejected
}

// ParseRequestStatus valida um status vindo de fora (path param, payload).
func ParseRequestStatus(raw string) (RequestStatus, bool) {
	switch RequestStatus(raw) {
	case StatusInterested, StatusIgnored, StatusAccepted, StatusRejected:
		return RequestStatus(raw), true
	}
	return "", false
}

// É a "aresta" do grafo de conexões: um pedido direcionado entre dois usuários.
// A direção (quem iniciou) é imutável; apenas o status muda depois da criação.
type ConnectionRequest struct {
	ID         int64         `json:"id"`
	FromUserID int64         `json:"from_user_id"`
	ToUserID   int64         `json:"to_user_id"`
	Status     RequestStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// CounterpartOf devolve o outro endpoint do edge, resolvendo a direção.
func (cr ConnectionRequest) CounterpartOf(userID int64) int64 {
	if cr.FromUserID == userID {
		return cr.ToUserID
	}
	return cr.FromUserID
}

// Touches diz se o usuário é um dos endpoints do edge.
func (cr ConnectionRequest) Touches(userID int64) bool {
	return cr.FromUserID == userID || cr.ToUserID == userID
}
