package api

import (
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chatterhq/chatterbox/internal/auth"
	"github.com/chatterhq/chatterbox/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestVerifyCredentials(t *testing.T) {
	hash, err := auth.HashPassword("life")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	tcases := []struct {
		name     string
		password string
		mockUser database.User
		mockErr  error
		valid    bool
		err      bool
	}{
		{
			name:     "valid credentials",
			password: "life",
			mockUser: database.User{Id: 1, Username: "kek", PasswordHash: hash},
			valid:    true,
		},
		{
			name:     "wrong password",
			password: "death",
			mockUser: database.User{Id: 1, Username: "kek", PasswordHash: hash},
			valid:    false,
		},
		{
			name:     "unknown username",
			password: "life",
			mockErr:  sql.ErrNoRows,
			valid:    false,
		},
		{
			name:     "malformed stored hash",
			password: "life",
			mockUser: database.User{Id: 1, Username: "kek", PasswordHash: "not-a-bcrypt-hash"},
			valid:    false,
		},
		{
			name:     "store error",
			password: "life",
			mockErr:  errors.New("db error"),
			valid:    false,
			err:      true,
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := &database.MockChatterboxRepository{}
			defer mockRepo.AssertExpectations(t)
			mockRepo.On("GetAccountByUsername", "kek").Return(tc.mockUser, tc.mockErr).Once()

			app := newTestApp(t, mockRepo)
			valid, err := app.verifyCredentials("kek", tc.password)

			assert.Equal(t, tc.valid, valid, "expected validity to match")
			if tc.err {
				assert.Error(t, err, "expected an error")
			} else {
				assert.NoError(t, err, "expected no error")
			}
		})
	}
}

func TestBasicAuth(t *testing.T) {
	hash, err := auth.HashPassword("life")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	nextCalled := false
	next := func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}

	t.Run("missing credentials are rejected before the store", func(t *testing.T) {
		nextCalled = false
		mockRepo := &database.MockChatterboxRepository{}
		defer mockRepo.AssertExpectations(t)

		app := newTestApp(t, mockRepo)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/chatrooms", nil)
		app.basicAuth(next)(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "expected status code to be 401")
		assert.False(t, nextCalled, "expected handler not to be called")
		assert.Contains(t, rr.Header().Get("WWW-Authenticate"), "Basic", "expected basic challenge")
		mockRepo.AssertNotCalled(t, "GetAccountByUsername", mock.Anything)
	})

	t.Run("unknown username is rejected", func(t *testing.T) {
		nextCalled = false
		mockRepo := &database.MockChatterboxRepository{}
		defer mockRepo.AssertExpectations(t)
		mockRepo.On("GetAccountByUsername", "ghost").Return(database.User{}, sql.ErrNoRows).Once()

		app := newTestApp(t, mockRepo)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/chatrooms", nil)
		req.SetBasicAuth("ghost", "life")
		app.basicAuth(next)(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "expected status code to be 401")
		assert.False(t, nextCalled, "expected handler not to be called")
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		nextCalled = false
		mockRepo := &database.MockChatterboxRepository{}
		defer mockRepo.AssertExpectations(t)
		mockRepo.On("GetAccountByUsername", "kek").Return(database.User{
			Id:           1,
			Username:     "kek",
			PasswordHash: hash,
		}, nil).Once()

		app := newTestApp(t, mockRepo)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/chatrooms", nil)
		req.SetBasicAuth("kek", "death")
		app.basicAuth(next)(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "expected status code to be 401")
		assert.False(t, nextCalled, "expected handler not to be called")
	})

	t.Run("store error is rejected, not surfaced", func(t *testing.T) {
		nextCalled = false
		mockRepo := &database.MockChatterboxRepository{}
		defer mockRepo.AssertExpectations(t)
		mockRepo.On("GetAccountByUsername", "kek").Return(database.User{}, errors.New("db error")).Once()

		app := newTestApp(t, mockRepo)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/chatrooms", nil)
		req.SetBasicAuth("kek", "life")
		app.basicAuth(next)(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "expected status code to be 401")
		assert.False(t, nextCalled, "expected handler not to be called")
	})

	t.Run("valid credentials pass through", func(t *testing.T) {
		nextCalled = false
		mockRepo := &database.MockChatterboxRepository{}
		defer mockRepo.AssertExpectations(t)
		mockRepo.On("GetAccountByUsername", "kek").Return(database.User{
			Id:           1,
			Username:     "kek",
			PasswordHash: hash,
		}, nil).Once()

		app := newTestApp(t, mockRepo)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/chatrooms", nil)
		req.SetBasicAuth("kek", "life")
		app.basicAuth(next)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "expected status code to be 200")
		assert.True(t, nextCalled, "expected handler to be called")
		assert.Equal(t, "ok", rr.Body.String(), "expected handler response")
	})
}
