package types

// User is the outward representation of an account. The password hash is
// never part of it.
type User struct {
	Username    string   `json:"username"`
	FullName    string   `json:"fullName"`
	Email       string   `json:"email"`
	OwnChatRoom []string `json:"ownChatRoom"`
}

type ChatRoom struct {
	Id       string        `json:"id"`
	Title    string        `json:"title"`
	Category string        `json:"category"`
	Users    []RoomMember  `json:"users"`
	Messages []RoomMessage `json:"messages"`
}

type RoomMember struct {
	Username string `json:"username"`
}

type RoomMessage struct {
	Id      int    `json:"id"`
	Message string `json:"message"`
}
