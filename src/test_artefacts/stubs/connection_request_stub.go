package stubs

import (
	"time"
	"usernetwork/src/domain/entities"

	"github.com/brianvoe/gofakeit/v6"
)

type ConnectionRequestStub struct {
	request entities.ConnectionRequest
}

func NewConnectionRequestStub() ConnectionRequestStub {
	now := time.Now().UTC()

	request := entities.ConnectionRequest{
		ID:         gofakeit.Int64(),
		FromUserID: gofakeit.Int64(),
		ToUserID:   gofakeit.Int64(),
		Status:     entities.StatusInterested,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	return ConnectionRequestStub{request: request}
}

func (cs ConnectionRequestStub) WithFromUserID(fromUserID int64) ConnectionRequestStub {
	cs.request.FromUserID = fromUserID
	return cs
}

func (cs ConnectionRequestStub) WithToUserID(toUserID int64) ConnectionRequestStub {
	cs.request.ToUserID = toUserID
	return cs
}

func (cs ConnectionRequestStub) WithStatus(status entities.RequestStatus) ConnectionRequestStub {
	cs.request.Status = status
	return cs
}

func (cs ConnectionRequestStub) Get() entities.ConnectionRequest {
	return cs.request
}
