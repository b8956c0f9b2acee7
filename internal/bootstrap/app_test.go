package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DB_USER", "reserveit")
	t.Setenv("REDIS_ADDR", "127.0.0.1:6379")
	for _, key := range []string{
		"DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME", "REDIS_PASSWORD",
		"REDIS_DB", "SERVER_PORT", "LOG_LEVEL", "APP_ENV", "CORS_ALLOWED_ORIGIN",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.DBHost)
	assert.Equal(t, "3306", cfg.DBPort)
	assert.Equal(t, "reserveit_db", cfg.DBName)
	assert.Equal(t, "5000", cfg.ServerPort)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "http://localhost:3000", cfg.CORSOrigin)
}

func TestLoadConfig_RequiredSettings(t *testing.T) {
	setRequiredEnv(t)

	t.Setenv("DB_USER", "")
	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_USER")

	t.Setenv("DB_USER", "reserveit")
	t.Setenv("REDIS_ADDR", "")
	_, err = LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REDIS_ADDR")
}

func TestCORSMiddleware_ConfiguredOrigin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(corsMiddleware("http://localhost:3000"))
	router.GET("/api/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSMiddleware_PreflightShortCircuits(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(corsMiddleware("http://localhost:3000"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/api/reservations", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PUT")
}
