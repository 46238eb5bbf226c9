package stubs

import (
	"time"
	"usernetwork/src/domain/entities"

	"github.com/brianvoe/gofakeit/v6"
)

type UserStub struct {
	user entities.User
}

func NewUserStub() UserStub {
	now := time.Now().UTC()

	user := entities.User{
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
		Email:     gofakeit.Email(),
		Age:       gofakeit.Number(18, 100),
		Gender:    gofakeit.RandomString([]string{"male", "female", "other"}),
		PhotoURL:  gofakeit.URL(),
		About:     gofakeit.Sentence(8),
		Skills:    []string{gofakeit.ProgrammingLanguage(), gofakeit.ProgrammingLanguage()},
		CreatedAt: now,
		UpdatedAt: now,
	}

	return UserStub{user: user}
}

func (us UserStub) WithFirstName(firstName string) UserStub {
	us.user.FirstName = firstName
	return us
}

func (us UserStub) WithEmail(email string) UserStub {
	us.user.Email = email
	return us
}

func (us UserStub) WithSkills(skills []string) UserStub {
	us.user.Skills = skills
	return us
}

func (us UserStub) Get() entities.User {
	return us.user
}
