package validation

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Title    string  `json:"title" binding:"required"`
	Password string  `json:"password" binding:"omitempty,pwd"`
	URL      *string `json:"url" binding:"omitempty,nonempty"`
	Likes    *int    `json:"likes" binding:"omitempty,min=0"`
}

func bind(t *testing.T, body string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	var s sample
	return c.ShouldBindJSON(&s)
}

func TestToDetails(t *testing.T) {
	Init()

	tests := []struct {
		name string
		body string
		want map[string]string
	}{
		{"missing required", `{}`, map[string]string{"title": "is required"}},
		{"short password", `{"title":"t","password":"ab"}`, map[string]string{"password": "must be at least 3 characters long"}},
		{"long password", `{"title":"t","password":"` + strings.Repeat("p", 73) + `"}`, map[string]string{"password": "must be at most 72 bytes long"}},
		{"blank optional", `{"title":"t","url":""}`, map[string]string{"url": "must not be empty"}},
		{"negative number", `{"title":"t","likes":-1}`, map[string]string{"likes": "must be at least 0"}},
		{"wrong type", `{"title":"t","likes":"many"}`, map[string]string{"likes": "has the wrong type, expected int"}},
		{"syntax", `{"title":}`, map[string]string{"payload": "invalid json"}},
		{"truncated", `{"title":`, map[string]string{"payload": "invalid json"}},
		{"empty body", ``, map[string]string{"payload": "request body is required"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := bind(t, tt.body)
			require.Error(t, err)
			assert.Equal(t, tt.want, ToDetails(err))
		})
	}
}

func TestToDetails_Valid(t *testing.T) {
	Init()
	require.NoError(t, bind(t, `{"title":"t","password":"abc","url":"u","likes":0}`))
	assert.Nil(t, ToDetails(nil))
}
