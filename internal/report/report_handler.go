package report

import (
	"net/http"

	"github.com/lu2aa/attendance-system/internal/shared/apperror"
	"github.com/lu2aa/attendance-system/internal/shared/response"

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

func (h *Handler) GetMonthly(c *gin.Context) {
	employeeNumber := c.Query("employee_number")
	// Non-admins only ever see their own report
	if !c.GetBool("is_admin") {
		employeeNumber = c.GetString("employee_number")
	}

	resp, err := h.service.MonthlySummary(c.Request.Context(), employeeNumber, c.Query("month"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DownloadMonthlyPDF(c *gin.Context) {
	employeeNumber := c.Query("employee_number")
	if !c.GetBool("is_admin") {
		employeeNumber = c.GetString("employee_number")
	}

	report, err := h.service.MonthlySummary(c.Request.Context(), employeeNumber, c.Query("month"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	body, err := h.service.RenderPDF(report)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	name := "attendance_report_" + report.EmployeeNumber + "_" + report.Month + ".pdf"
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, "application/pdf", body)
}

func (h *Handler) RequestEmail(c *gin.Context) {
	var req EmailReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	if err := h.service.RequestEmail(c.Request.Context(), req, c.GetString("email")); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusAccepted, gin.H{"status": "queued"}, nil)
}
