package entity

import (
	"SkyCherry/internal/lib/validate"
	"net/http"
)

// MasterUser is the identity behind the configured master key.
const MasterUser = "master"

type UserAuth struct {
	Username string `json:"username" bson:"username" validate:"required"`
	Token    string `json:"token" bson:"key" validate:"required,min=1"`
}

func (u *UserAuth) IsMaster() bool {
	return u != nil && u.Username == MasterUser
}

func (u *UserAuth) Bind(_ *http.Request) error {
	return validate.Struct(u)
}

type KeyRequest struct {
	Username string `json:"username" validate:"required"`
}

func (k *KeyRequest) Bind(_ *http.Request) error {
	return validate.Struct(k)
}
