package auth

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/rakibhasan-dev/findback/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret", JWTExpireHours: 1}
}

func gatedRouter(user *User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/posts", func(c *gin.Context) {
		if user != nil {
			c.Set("user", user)
		}
		c.Next()
	}, RequireVerified(), func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	return r
}

func TestRequireVerified_AllowsVerifiedActor(t *testing.T) {
	r := gatedRouter(&User{VerificationStatus: StatusVerified})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/posts", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
}

func TestRequireVerified_BlocksEveryOtherStatus(t *testing.T) {
	for _, status := range []string{StatusUnverified, StatusPending, StatusRejected} {
		r := gatedRouter(&User{VerificationStatus: status})

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/posts", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, 403, w.Code, "status %s should be gated", status)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Equal(t, true, body["requiresVerification"], "status %s", status)
		require.Equal(t, status, body["verificationStatus"])
		require.NotEmpty(t, body["error"])
	}
}

func TestRequireVerified_StatusSelectsMessage(t *testing.T) {
	cases := map[string]string{
		StatusPending:    "pending",
		StatusRejected:   "resubmit",
		StatusUnverified: "submit",
	}

	for status, fragment := range cases {
		r := gatedRouter(&User{VerificationStatus: status})

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/posts", nil)
		r.ServeHTTP(w, req)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Contains(t, body["error"], fragment)
	}
}

func TestRequireVerified_FailsClosedWithoutUser(t *testing.T) {
	r := gatedRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/posts", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, 401, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		user *User
		want int
	}{
		{&User{Role: RoleAdmin}, 200},
		{&User{Role: RoleUser}, 403},
		{nil, 401},
	}

	for _, tc := range cases {
		r := gin.New()
		u := tc.user
		r.GET("/admin", func(c *gin.Context) {
			if u != nil {
				c.Set("user", u)
			}
			c.Next()
		}, RequireAdmin(), func(c *gin.Context) {
			c.JSON(200, gin.H{"ok": true})
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/admin", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, tc.want, w.Code)
	}
}

func TestAuthMiddleware_NoHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", NewAuthMiddleware(nil, testConfig()), func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, 401, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Authorization header required", body["error"])
}

func TestAuthMiddleware_BadFormat(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", NewAuthMiddleware(nil, testConfig()), func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "not-a-bearer-token")
	r.ServeHTTP(w, req)

	require.Equal(t, 401, w.Code)
}
