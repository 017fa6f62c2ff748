package database

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
)

type User struct {
	Id           int
	Username     string
	EmailAddress string
	PasswordHash string
	FirstName    string
	LastName     string
	ChatRoomIds  pq.StringArray
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Room struct {
	Id        string
	Title     string
	Category  string
	Users     RoomUsers
	Messages  RoomMessages
	CreatedAt time.Time
	UpdatedAt time.Time
}

type RoomUser struct {
	Username string `json:"username"`
}

type RoomMessage struct {
	Id      int    `json:"id"`
	Message string `json:"message"`
}

// RoomUsers and RoomMessages are stored as jsonb documents. A nil slice is
// written as an empty array so a room never holds a null member or message
// list.
type RoomUsers []RoomUser

func (u RoomUsers) Value() (driver.Value, error) {
	if u == nil {
		u = RoomUsers{}
	}
	return json.Marshal(u)
}

func (u *RoomUsers) Scan(src any) error {
	return scanJson(src, u)
}

type RoomMessages []RoomMessage

func (m RoomMessages) Value() (driver.Value, error) {
	if m == nil {
		m = RoomMessages{}
	}
	return json.Marshal(m)
}

func (m *RoomMessages) Scan(src any) error {
	return scanJson(src, m)
}

func scanJson(src, dst any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	case nil:
		return nil
	default:
		return fmt.Errorf("cannot scan %T into jsonb document", src)
	}
}

type CreateAccountParams struct {
	Username     string
	EmailAddress string
	PasswordHash string
	FirstName    string
	LastName     string
}

type CreateRoomParams struct {
	Id       string
	Title    string
	Category string
}

// UpdateRoomParams carries a partial update: nil fields are left unchanged.
type UpdateRoomParams struct {
	Id       string
	Title    *string
	Category *string
	Users    *RoomUsers
	Messages *RoomMessages
}
