package response_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sharda-hr/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page, meta := response.Paginate(items, 2, 2)
	assert.Equal(t, []int{3, 4}, page)
	assert.Equal(t, int64(5), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)

	page, _ = response.Paginate(items, 9, 2)
	assert.Empty(t, page)
	assert.NotNil(t, page)

	empty, meta := response.Paginate([]int(nil), 1, 10)
	assert.NotNil(t, empty)
	assert.Equal(t, 0, meta.TotalPages)
}

func TestSuccessPaged_EmptyState(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/x?page=1&page_size=5", nil)

	response.SuccessPaged(c, http.StatusOK, []string{})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"data":[],"meta":{"total":0,"totalPages":0,"page":1,"pageSize":5}}`, w.Body.String())
}

func TestBindError_MalformedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/x", strings.NewReader("{"))
	c.Request.Header.Set("Content-Type", "application/json")

	var body struct {
		Name string `json:"name" binding:"required"`
	}
	err := c.ShouldBindJSON(&body)
	response.BindError(c, err)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"VALIDATION_ERROR"`)
	assert.Contains(t, w.Body.String(), `"message":"Invalid input"`)
}
