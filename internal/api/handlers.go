package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/chatterhq/chatterbox/internal/auth"
	"github.com/chatterhq/chatterbox/internal/database"
	"github.com/chatterhq/chatterbox/internal/metrics"
	"github.com/chatterhq/chatterbox/internal/types"
	"github.com/teris-io/shortid"
)

type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type CreateChatRoomRequest struct {
	Title    string `json:"title"`
	Category string `json:"category"`
}

// UpdateChatRoomRequest is a partial update: absent fields are left
// unchanged.
type UpdateChatRoomRequest struct {
	Title    *string                `json:"title"`
	Category *string                `json:"category"`
	Users    *database.RoomUsers    `json:"users"`
	Messages *database.RoomMessages `json:"messages"`
}

func (s *ChatterboxApp) writeJson(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if v == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Printf("json encode: %v", err)
	}
}

func (s *ChatterboxApp) healthCheck(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Ping(); err != nil {
		s.log.Println("health check:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (s *ChatterboxApp) createUser(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if req.Username == "" || req.Password == "" || req.Email == "" ||
		req.FirstName == "" || req.LastName == "" {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	pwdHash, err := auth.HashPassword(req.Password)
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	params := database.CreateAccountParams{
		Username:     req.Username,
		EmailAddress: req.Email,
		PasswordHash: pwdHash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	}

	newUser, err := s.db.CreateAccount(params)
	if err != nil {
		var errResp *ApiError
		if errors.Is(err, database.ErrDuplicateKey) {
			errResp = NewConflictError()
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	metrics.AccountsCreated.Inc()
	s.writeJson(w, http.StatusCreated, userResponse(newUser))
}

func (s *ChatterboxApp) listUsers(w http.ResponseWriter, r *http.Request) {
	dbUsers, err := s.db.ListAccounts()
	if err != nil {
		s.log.Println("list accounts:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	users := make([]types.User, 0, len(dbUsers))
	for _, u := range dbUsers {
		users = append(users, userResponse(u))
	}

	s.writeJson(w, http.StatusOK, users)
}

func (s *ChatterboxApp) createChatRoom(w http.ResponseWriter, r *http.Request) {
	var req CreateChatRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if req.Title == "" || req.Category == "" {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	sid, err := shortid.Generate()
	if err != nil {
		s.log.Println("generate short id:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	params := database.CreateRoomParams{
		Id:       sid,
		Title:    req.Title,
		Category: req.Category,
	}

	newRoom, err := s.db.CreateRoom(params)
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	metrics.ChatRoomsCreated.Inc()
	s.writeJson(w, http.StatusCreated, chatRoomResponse(newRoom))
}

func (s *ChatterboxApp) listChatRooms(w http.ResponseWriter, r *http.Request) {
	dbRooms, err := s.db.ListRooms()
	if err != nil {
		s.log.Println("list rooms:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	rooms := make([]types.ChatRoom, 0, len(dbRooms))
	for _, room := range dbRooms {
		rooms = append(rooms, chatRoomResponse(room))
	}

	s.writeJson(w, http.StatusOK, rooms)
}

func (s *ChatterboxApp) getChatRoom(w http.ResponseWriter, r *http.Request) {
	room, err := s.db.GetRoomById(r.PathValue("id"))
	if err != nil {
		var errResp *ApiError
		if errors.Is(err, sql.ErrNoRows) {
			errResp = NewNotFoundError()
		} else {
			s.log.Println("get room:", err)
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.writeJson(w, http.StatusOK, chatRoomResponse(room))
}

func (s *ChatterboxApp) distinctCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.db.DistinctCategories()
	if err != nil {
		s.log.Println("distinct categories:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if categories == nil {
		categories = make([]string, 0)
	}

	s.writeJson(w, http.StatusOK, categories)
}

func (s *ChatterboxApp) updateChatRoom(w http.ResponseWriter, r *http.Request) {
	var req UpdateChatRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	params := database.UpdateRoomParams{
		Id:       r.PathValue("id"),
		Title:    req.Title,
		Category: req.Category,
		Users:    req.Users,
		Messages: req.Messages,
	}

	room, err := s.db.UpdateRoom(params)
	if err != nil {
		var errResp *ApiError
		if errors.Is(err, sql.ErrNoRows) {
			errResp = NewNotFoundError()
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	// a successful update has always answered 201 here; clients depend on it
	s.writeJson(w, http.StatusCreated, chatRoomResponse(room))
}

func (s *ChatterboxApp) deleteChatRoom(w http.ResponseWriter, r *http.Request) {
	err := s.db.DeleteRoom(r.PathValue("id"))
	if err != nil {
		var errResp *ApiError
		if errors.Is(err, sql.ErrNoRows) {
			errResp = NewNotFoundError()
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func userResponse(u database.User) types.User {
	own := make([]string, 0, len(u.ChatRoomIds))
	own = append(own, u.ChatRoomIds...)

	return types.User{
		Username:    u.Username,
		FullName:    strings.TrimSpace(u.FirstName + " " + u.LastName),
		Email:       u.EmailAddress,
		OwnChatRoom: own,
	}
}

func chatRoomResponse(room database.Room) types.ChatRoom {
	users := make([]types.RoomMember, 0, len(room.Users))
	for _, u := range room.Users {
		users = append(users, types.RoomMember{Username: u.Username})
	}

	messages := make([]types.RoomMessage, 0, len(room.Messages))
	for _, m := range room.Messages {
		messages = append(messages, types.RoomMessage{Id: m.Id, Message: m.Message})
	}

	return types.ChatRoom{
		Id:       room.Id,
		Title:    room.Title,
		Category: room.Category,
		Users:    users,
		Messages: messages,
	}
}
