package response

import (
	"strconv"

	"sharda-hr/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

type PaginationMeta struct {
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	Page       int   `json:"page,omitempty"`
	PageSize   int   `json:"pageSize,omitempty"`
}

func NewPaginationMeta(total int64, page, limit int) PaginationMeta {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	return PaginationMeta{
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
		PageSize:   limit,
	}
}

type ApiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  any             `json:"data,omitempty"`
	Meta  *PaginationMeta `json:"meta,omitempty"`
	Error any             `json:"error,omitempty"`
}

func Success(c *gin.Context, status int, data interface{}, meta *PaginationMeta) {
	c.JSON(status, ApiEnvelope{
		Ok:   true,
		Data: data,
		Meta: meta,
	})
}

func Error(c *gin.Context, status int, errorCode string, message string, details interface{}) {
	c.JSON(status, ApiEnvelope{
		Ok: false,
		Error: map[string]interface{}{
			"code":    errorCode,
			"message": message,
			"details": details,
		},
	})
}

// PageParams reads page and page_size query values, defaulting to 1 and 10.
func PageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if pageSize < 1 {
		pageSize = 10
	}
	if pageSize > 200 {
		pageSize = 200
	}
	return page, pageSize
}

// Paginate slices an in-memory result the way list handlers return it.
// An empty list still yields a non-nil slice so clients render an empty state.
func Paginate[T any](items []T, page, pageSize int) ([]T, PaginationMeta) {
	total := len(items)
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	out := items[start:end]
	if out == nil {
		out = []T{}
	}
	return out, NewPaginationMeta(int64(total), page, pageSize)
}

// SuccessPaged is the list-endpoint variant of Success.
func SuccessPaged[T any](c *gin.Context, status int, items []T) {
	page, pageSize := PageParams(c)
	data, meta := Paginate(items, page, pageSize)
	Success(c, status, data, &meta)
}

// BindError answers a request whose body or query failed to bind.
func BindError(c *gin.Context, err error) {
	appErr := apperror.MapValidationError(err)
	Error(c, appErr.HTTPStatus, appErr.Code, appErr.Message, appErr.Details)
}
