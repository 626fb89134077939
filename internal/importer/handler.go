package importer

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

type ImportResult struct {
	Domain   string `json:"domain"`
	RowCount int    `json:"row_count"`
}

// Upload takes one multipart file per call and imports it into the domain
// named by the path.
func (h *Handler) Upload(c *gin.Context) {
	domain := c.Param("domain")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "a file form field is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	defer file.Close()

	count, err := h.service.Import(c.Request.Context(), domain, fileHeader.Filename, file, c.GetString("email"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, ImportResult{Domain: domain, RowCount: count}, nil)
}

// DownloadTemplate serves a generated empty sheet with the domain's headers.
func (h *Handler) DownloadTemplate(c *gin.Context) {
	domain := c.Param("domain")

	name, contentType, body, err := GenerateTemplate(domain)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, contentType, body)
}
