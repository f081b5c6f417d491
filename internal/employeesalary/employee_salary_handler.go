package employeesalary

import (
	"net/http"
	"time"

	employeesalaryerrors "sharda-hr/internal/employeesalary/errors"
	"sharda-hr/internal/shared/apperror"
	"sharda-hr/internal/shared/dateutil"
	"sharda-hr/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEmployeeSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), c.GetString("company_id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context(), c.GetString("company_id"), c.Query("employee_id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.SuccessPaged(c, http.StatusOK, resp)
}

func (h *Handler) GetById(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.GetString("company_id"), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// GetEffective answers which structure applies to employee_id on as_of (default today).
func (h *Handler) GetEffective(c *gin.Context) {
	asOf := time.Now().UTC()
	if v := c.Query("as_of"); v != "" {
		parsed, err := dateutil.ParseDate(v)
		if err != nil {
			writeServiceError(c, employeesalaryerrors.ErrInvalidEffectiveDate)
			return
		}
		asOf = parsed
	}

	resp, err := h.service.GetEffective(c.Request.Context(), c.GetString("company_id"), c.Query("employee_id"), asOf)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateEmployeeSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), c.GetString("company_id"), c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.GetString("company_id"), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
