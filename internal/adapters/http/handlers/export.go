package handlers

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/copy-census/internal/adapters/export"
	"github.com/jsamuelsen/copy-census/internal/adapters/http/dto"
	"github.com/jsamuelsen/copy-census/internal/catalog"
	"github.com/jsamuelsen/copy-census/internal/domain"
)

const reportSuffix = "_copy_count"

// ExportReport handles GET /api/v1/export/:report
// report is one of location_copy_count, title_copy_count,
// edition_copy_count, issue_copy_count or provenance_name_copy_count.
// The CSV is sent as an attachment.
func (h *CensusHandler) ExportReport(c *gin.Context) {
	name := c.Param("report")

	dim, ok := reportDimension(name)
	if !ok {
		dto.HandleError(c, domain.NewNotFoundError("report", name))
		return
	}

	report, err := h.service.Report(c.Request.Context(), dim)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, dim, report.Rows); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+export.Filename(dim)+`"`)
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}

func reportDimension(name string) (catalog.Dimension, bool) {
	base, ok := strings.CutSuffix(name, reportSuffix)
	if !ok {
		return "", false
	}

	return catalog.ParseDimension(base)
}
