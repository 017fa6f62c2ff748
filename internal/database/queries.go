package database

import (
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"
)

const uniqueViolation = pq.ErrorCode("23505")

const (
	accountColumns = "id, username, email, password_hash, first_name, last_name, chatroom_ids, created_at, updated_at"
	roomColumns    = "id, title, category, users, messages, created_at, updated_at"
)

// translateError maps driver-level unique violations to ErrDuplicateKey.
func translateError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return ErrDuplicateKey
	}
	return err
}

func (db *PgChatterboxRepository) CreateAccount(params CreateAccountParams) (User, error) {
	res := db.conn.QueryRow(
		"INSERT INTO accounts (username, email, password_hash, first_name, last_name, chatroom_ids, created_at, updated_at) "+
			"VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING "+accountColumns,
		params.Username,
		params.EmailAddress,
		params.PasswordHash,
		params.FirstName,
		params.LastName,
		pq.StringArray{},
		time.Now().UTC(),
		time.Now().UTC(),
	)

	var u User
	err := scanAccount(res, &u)
	if err != nil {
		return User{}, translateError(err)
	}

	return u, nil
}

func (db *PgChatterboxRepository) GetAccountByUsername(username string) (User, error) {
	row := db.conn.QueryRow(
		"SELECT "+accountColumns+" FROM accounts WHERE username = $1 LIMIT 1",
		username,
	)

	var u User
	err := scanAccount(row, &u)

	return u, err
}

func (db *PgChatterboxRepository) ListAccounts() ([]User, error) {
	rows, err := db.conn.Query("SELECT " + accountColumns + " FROM accounts ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users = make([]User, 0)
	for rows.Next() {
		var u User
		if err := scanAccount(rows, &u); err != nil {
			return nil, err
		}

		users = append(users, u)
	}

	return users, rows.Err()
}

func (db *PgChatterboxRepository) CreateRoom(params CreateRoomParams) (Room, error) {
	res := db.conn.QueryRow(
		"INSERT INTO rooms (id, title, category, users, messages, created_at, updated_at) "+
			"VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING "+roomColumns,
		params.Id,
		params.Title,
		params.Category,
		RoomUsers{},
		RoomMessages{},
		time.Now().UTC(),
		time.Now().UTC(),
	)

	var room Room
	err := scanRoom(res, &room)
	if err != nil {
		return Room{}, translateError(err)
	}

	return room, nil
}

func (db *PgChatterboxRepository) ListRooms() ([]Room, error) {
	rows, err := db.conn.Query("SELECT " + roomColumns + " FROM rooms ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms = make([]Room, 0)
	for rows.Next() {
		var room Room
		if err := scanRoom(rows, &room); err != nil {
			return nil, err
		}

		rooms = append(rooms, room)
	}

	return rooms, rows.Err()
}

func (db *PgChatterboxRepository) GetRoomById(id string) (Room, error) {
	row := db.conn.QueryRow(
		"SELECT "+roomColumns+" FROM rooms WHERE id = $1 LIMIT 1",
		id,
	)

	var room Room
	err := scanRoom(row, &room)

	return room, err
}

func (db *PgChatterboxRepository) DistinctCategories() ([]string, error) {
	rows, err := db.conn.Query("SELECT DISTINCT category FROM rooms")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories = make([]string, 0)
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, err
		}

		categories = append(categories, category)
	}

	return categories, rows.Err()
}

func (db *PgChatterboxRepository) UpdateRoom(params UpdateRoomParams) (Room, error) {
	res := db.conn.QueryRow(
		"UPDATE rooms SET title = COALESCE($2::text, title), category = COALESCE($3::text, category), "+
			"users = COALESCE($4::jsonb, users), messages = COALESCE($5::jsonb, messages), updated_at = $6 "+
			"WHERE id = $1 RETURNING "+roomColumns,
		params.Id,
		params.Title,
		params.Category,
		params.Users,
		params.Messages,
		time.Now().UTC(),
	)

	var room Room
	err := scanRoom(res, &room)

	return room, err
}

func (db *PgChatterboxRepository) DeleteRoom(id string) error {
	res, err := db.conn.Exec("DELETE FROM rooms WHERE id = $1", id)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(row scanner, u *User) error {
	return row.Scan(
		&u.Id,
		&u.Username,
		&u.EmailAddress,
		&u.PasswordHash,
		&u.FirstName,
		&u.LastName,
		&u.ChatRoomIds,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
}

func scanRoom(row scanner, room *Room) error {
	return row.Scan(
		&room.Id,
		&room.Title,
		&room.Category,
		&room.Users,
		&room.Messages,
		&room.CreatedAt,
		&room.UpdatedAt,
	)
}
