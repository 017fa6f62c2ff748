package api

import (
	"net/http"
	"testing"

	"github.com/chatterhq/chatterbox/internal/config"
	"github.com/chatterhq/chatterbox/internal/database"
	"github.com/chatterhq/chatterbox/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNewChatterboxApp(t *testing.T) {
	mux := http.NewServeMux()
	logger := testutil.TestLogger(t)
	db := &database.MockChatterboxRepository{}
	cfg := &config.Config{
		ServerAddr:     "localhost:8080",
		DatabaseDSN:    "dsn",
		StaticDir:      "public",
		AllowedOrigins: []string{"http://localhost:3000"},
	}

	app := NewChatterboxApp(mux, logger, db, cfg)

	assert.NotNil(t, app, "expected app to be initialized")
	assert.NotNil(t, app.mux, "expected mux to be initialized")
	assert.NotNil(t, app.log, "expected logger to be set")
	assert.NotNil(t, app.db, "expected db to be set")
	assert.Equal(t, app.log, logger, "expected logger to be set")
	assert.Equal(t, app.db, db, "expected db to be set")
	assert.Equal(t, app.mux.Addr, cfg.ServerAddr, "expected server address to match config")
}
