package entities

import "time"

// É o "nó" do grafo: o registro de identidade do usuário.
// Email nunca sai daqui para outros usuários; veja PublicProfile.
type User struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name,omitempty"`
	Email     string    `json:"email"`
	Age       int       `json:"age,omitempty"`
	Gender    string    `json:"gender,omitempty"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	About     string    `json:"about,omitempty"`
	Skills    []string  `json:"skills,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PublicProfile é a projeção "profile-safe" de um usuário: o subconjunto de
// campos que pode ser exposto para outros usuários. Nunca email.
type PublicProfile struct {
	ID        int64    `json:"id"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name,omitempty"`
	PhotoURL  string   `json:"photo_url,omitempty"`
	About     string   `json:"about,omitempty"`
	Gender    string   `json:"gender,omitempty"`
	Skills    []string `json:"skills,omitempty"`
}

// PublicProjection converte o usuário completo na projeção profile-safe.
func (u User) PublicProjection() PublicProfile {
	return PublicProfile{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		PhotoURL:  u.PhotoURL,
		About:     u.About,
		Gender:    u.Gender,
		Skills:    u.Skills,
	}
}
