package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paramContext(value string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "id", Value: value}}
	return c
}

func TestParseUintParam(t *testing.T) {
	id, err := ParseUintParam(paramContext("42"), "id")
	require.NoError(t, err)
	assert.EqualValues(t, 42, id)

	for _, bad := range []string{"abc", "-1", "1.5", "", "NaN", "0"} {
		_, err := ParseUintParam(paramContext(bad), "id")
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr, "value %q must be rejected", bad)
		assert.Contains(t, vErr.Fields, "id")
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("weekStart", "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("weekStart", "01/01/2024")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
}
