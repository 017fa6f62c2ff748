package database

import "errors"

// ErrDuplicateKey is returned when an insert violates a unique constraint.
var ErrDuplicateKey = errors.New("duplicate key")

type ChatterboxRepository interface {
	Ping() error
	CreateAccount(params CreateAccountParams) (User, error)
	GetAccountByUsername(username string) (User, error)
	ListAccounts() ([]User, error)
	CreateRoom(params CreateRoomParams) (Room, error)
	ListRooms() ([]Room, error)
	GetRoomById(id string) (Room, error)
	DistinctCategories() ([]string, error)
	UpdateRoom(params UpdateRoomParams) (Room, error)
	DeleteRoom(id string) error
}
