package database

import (
	"github.com/stretchr/testify/mock"
)

type MockChatterboxRepository struct {
	mock.Mock
}

func (m *MockChatterboxRepository) Ping() error {
	args := m.Called()
	return args.Error(0)
}
func (m *MockChatterboxRepository) CreateAccount(params CreateAccountParams) (User, error) {
	args := m.Called(params)
	return args.Get(0).(User), args.Error(1)
}
func (m *MockChatterboxRepository) GetAccountByUsername(username string) (User, error) {
	args := m.Called(username)
	return args.Get(0).(User), args.Error(1)
}
func (m *MockChatterboxRepository) ListAccounts() ([]User, error) {
	args := m.Called()
	if users, ok := args.Get(0).([]User); ok {
		return users, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockChatterboxRepository) CreateRoom(params CreateRoomParams) (Room, error) {
	args := m.Called(params)
	return args.Get(0).(Room), args.Error(1)
}
func (m *MockChatterboxRepository) ListRooms() ([]Room, error) {
	args := m.Called()
	if rooms, ok := args.Get(0).([]Room); ok {
		return rooms, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockChatterboxRepository) GetRoomById(id string) (Room, error) {
	args := m.Called(id)
	return args.Get(0).(Room), args.Error(1)
}
func (m *MockChatterboxRepository) DistinctCategories() ([]string, error) {
	args := m.Called()
	if categories, ok := args.Get(0).([]string); ok {
		return categories, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockChatterboxRepository) UpdateRoom(params UpdateRoomParams) (Room, error) {
	args := m.Called(params)
	return args.Get(0).(Room), args.Error(1)
}
func (m *MockChatterboxRepository) DeleteRoom(id string) error {
	args := m.Called(id)
	return args.Error(0)
}
