package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/sunshinecool/games-backend/services/rooms"
	socketio_types "github.com/sunshinecool/games-backend/services/socket_io/types"
)

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	directory := rooms.NewDirectory()
	directory.GetOrCreate("room-a")
	sio := socketio_types.NewSocketServer()

	router := gin.New()
	router.GET("/health", Health(directory, sio))

	req, _ := http.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, true, body["websocket"])
	assert.Equal(t, float64(1), body["rooms"])
	assert.Equal(t, float64(0), body["connections"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestPing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/ping", Ping)

	req, _ := http.NewRequest("GET", "/ping", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pong")
}
