package api

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/chatterhq/chatterbox/internal/auth"
	"github.com/chatterhq/chatterbox/internal/metrics"
)

// verifyCredentials reports whether username and password identify an
// existing account. Unknown usernames and wrong passwords are
// indistinguishable to the caller.
func (s *ChatterboxApp) verifyCredentials(username, password string) (bool, error) {
	account, err := s.db.GetAccountByUsername(username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	return auth.VerifyPassword(account.PasswordHash, password), nil
}

// basicAuth guards mutating chatroom routes. Every request carries its own
// credentials; no state survives the check.
func (s *ChatterboxApp) basicAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok {
			s.rejectRequest(w)
			return
		}

		valid, err := s.verifyCredentials(username, password)
		if err != nil {
			s.log.Println("verify credentials:", err)
		}
		if !valid {
			s.rejectRequest(w)
			return
		}

		next(w, r)
	}
}

func (s *ChatterboxApp) rejectRequest(w http.ResponseWriter) {
	metrics.AuthFailures.Inc()
	w.Header().Set("WWW-Authenticate", `Basic realm="chatterbox"`)
	errResp := NewUnauthorizedError()
	s.writeJson(w, errResp.StatusCode, errResp)
}
