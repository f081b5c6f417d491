package bulkimport

import (
	"fmt"
	"net/http"
	"strconv"

	bulkimporterrors "sharda-hr/internal/bulkimport/errors"
	"sharda-hr/internal/middleware"
	"sharda-hr/internal/shared/apperror"
	"sharda-hr/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
}

// NewHandler takes an optional redis client used to store idempotent replies.
func NewHandler(service Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("bulkimport.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("bulkimport.handler")
	}
	return &Handler{service: service, rdb: rdb, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("import request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) sendFile(c *gin.Context, f File) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", f.Name))
	c.Data(http.StatusOK, f.ContentType, f.Content)
}

// Import expects a multipart form with "file" plus optional "dry_run" and
// "month" (attendance only). A rejected file answers 422 with the report.
func (h *Handler) Import(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		middleware.CompleteIdempotency(c, h.rdb, nil, false)
		h.writeServiceError(c, bulkimporterrors.ErrFileRequired)
		return
	}
	format, ok := FormatFromName(fh.Filename)
	if !ok {
		middleware.CompleteIdempotency(c, h.rdb, nil, false)
		h.writeServiceError(c, bulkimporterrors.ErrUnsupportedFormat)
		return
	}
	dryRun, _ := strconv.ParseBool(c.PostForm("dry_run"))

	file, err := fh.Open()
	if err != nil {
		middleware.CompleteIdempotency(c, h.rdb, nil, false)
		h.writeServiceError(c, bulkimporterrors.ErrUnreadableFile)
		return
	}
	defer file.Close()

	report, err := h.service.Import(c.Request.Context(), c.GetString("company_id"), c.GetString("employee_id"), ImportRequest{
		Kind:     c.Param("kind"),
		Format:   format,
		FileName: fh.Filename,
		Month:    c.PostForm("month"),
		DryRun:   dryRun,
	}, file)
	committed := err == nil && report.Status == JobCommitted
	middleware.CompleteIdempotency(c, h.rdb, report, committed)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	switch report.Status {
	case JobFailed:
		response.Error(c, http.StatusUnprocessableEntity, "IMPORT_REJECTED", "Import file has invalid rows", report)
	case JobCommitted:
		response.Success(c, http.StatusCreated, report, nil)
	default:
		response.Success(c, http.StatusOK, report, nil)
	}
}

func (h *Handler) GetJobs(c *gin.Context) {
	var filter JobFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BindError(c, err)
		return
	}
	resp, err := h.service.ListJobs(c.Request.Context(), c.GetString("company_id"), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessPaged(c, http.StatusOK, resp)
}

func (h *Handler) GetJob(c *gin.Context) {
	resp, err := h.service.GetJob(c.Request.Context(), c.GetString("company_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Template(c *gin.Context) {
	var req TemplateRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BindError(c, err)
		return
	}
	f, err := h.service.Template(c.Request.Context(), c.GetString("company_id"), c.Param("kind"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	h.sendFile(c, f)
}

func (h *Handler) ExportEmployees(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BindError(c, err)
		return
	}
	f, err := h.service.ExportEmployees(c.Request.Context(), c.GetString("company_id"), req.Format)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	h.sendFile(c, f)
}

func (h *Handler) ExportPayrollRegister(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BindError(c, err)
		return
	}
	f, err := h.service.ExportPayrollRegister(c.Request.Context(), c.GetString("company_id"), c.Param("id"), req.Format)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	h.sendFile(c, f)
}
