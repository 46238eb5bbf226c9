package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"usernetwork/src/domain"
	"usernetwork/src/domain/entities"
)

type ConnectionRequestDTO struct {
	ID         int64     `json:"id"`
	FromUserID int64     `json:"from_user_id"`
	ToUserID   int64     `json:"to_user_id"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type PublicProfileDTO struct {
	ID        int64    `json:"id"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name,omitempty"`
	PhotoURL  string   `json:"photo_url,omitempty"`
	About     string   `json:"about,omitempty"`
	Gender    string   `json:"gender,omitempty"`
	Skills    []string `json:"skills,omitempty"`
}

type ReceivedRequestDTO struct {
	Request  ConnectionRequestDTO `json:"request"`
	FromUser PublicProfileDTO     `json:"from_user"`
}

// Envelope padrão das respostas: mensagem humana + payload.
type ResponseDTO struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

func MapRequestToResponse(edge entities.ConnectionRequest) ConnectionRequestDTO {
	return ConnectionRequestDTO{
		ID:         edge.ID,
		FromUserID: edge.FromUserID,
		ToUserID:   edge.ToUserID,
		Status:     string(edge.Status),
		CreatedAt:  edge.CreatedAt,
		UpdatedAt:  edge.UpdatedAt,
	}
}

func MapProfileToResponse(profile entities.PublicProfile) PublicProfileDTO {
	return PublicProfileDTO{
		ID:        profile.ID,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		PhotoURL:  profile.PhotoURL,
		About:     profile.About,
		Gender:    profile.Gender,
		Skills:    profile.Skills,
	}
}

func MapProfilesToResponse(profiles []entities.PublicProfile) []PublicProfileDTO {
	dtos := make([]PublicProfileDTO, 0, len(profiles))
	for _, profile := range profiles {
		dtos = append(dtos, MapProfileToResponse(profile))
	}
	return dtos
}

func MapReceivedToResponse(received []domain.ReceivedRequest) []ReceivedRequestDTO {
	dtos := make([]ReceivedRequestDTO, 0, len(received))
	for _, item := range received {
		dtos = append(dtos, ReceivedRequestDTO{
			Request:  MapRequestToResponse(item.Request),
			FromUser: MapProfileToResponse(item.FromUser),
		})
	}
	return dtos
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("ERROR: Failed to write JSON response: %v", err)
	}
}
