package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/copy-census/internal/adapters/http/dto"
	"github.com/jsamuelsen/copy-census/internal/app"
	"github.com/jsamuelsen/copy-census/internal/domain"
)

// CensusHandler serves the public census API.
type CensusHandler struct {
	service *app.CensusService
}

// NewCensusHandler creates a new census handler.
func NewCensusHandler(service *app.CensusService) *CensusHandler {
	return &CensusHandler{
		service: service,
	}
}

// titlesResponse is the response of the title listing.
type titlesResponse struct {
	Titles []TitleResponse `json:"titles"`
}

// issueCopiesResponse is the copy listing of one issue.
type issueCopiesResponse struct {
	Issue  IssueResponse  `json:"issue"`
	Copies []CopyResponse `json:"copies"`
	Count  int            `json:"count"`
}

// ListTitles handles GET /api/v1/titles
// Returns every title in title sort order.
func (h *CensusHandler) ListTitles(c *gin.Context) {
	titles, err := h.service.Titles(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	resp := titlesResponse{Titles: make([]TitleResponse, 0, len(titles))}
	for _, t := range titles {
		resp.Titles = append(resp.Titles, toTitleResponse(t))
	}

	c.JSON(http.StatusOK, resp)
}

// GetTitle handles GET /api/v1/titles/:id
// Returns the title with its editions and labelled issues.
func (h *CensusHandler) GetTitle(c *gin.Context) {
	id, ok := pathID(c, "title")
	if !ok {
		return
	}

	detail, err := h.service.TitleDetail(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTitleDetailResponse(detail))
}

// GetIssueCopies handles GET /api/v1/issues/:id/copies
// Returns the canonical copies of an issue in listing order.
func (h *CensusHandler) GetIssueCopies(c *gin.Context) {
	id, ok := pathID(c, "issue")
	if !ok {
		return
	}

	listing, err := h.service.IssueCopies(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, issueCopiesResponse{
		Issue:  toIssueResponse(listing.Issue, listing.Label),
		Copies: toCopyResponses(listing.Copies),
		Count:  len(listing.Copies),
	})
}

// GetCopyByCensusID handles GET /api/v1/copies/:censusID
func (h *CensusHandler) GetCopyByCensusID(c *gin.Context) {
	cp, err := h.service.CopyByCensusID(c.Request.Context(), c.Param("censusID"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCopyResponse(cp))
}

// GetCopy handles GET /api/v1/copy-data/:id
func (h *CensusHandler) GetCopy(c *gin.Context) {
	id, ok := pathID(c, "copy")
	if !ok {
		return
	}

	cp, err := h.service.Copy(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCopyResponse(cp))
}

// GetAdminCopy handles GET /api/v1/admin/copies/:id
// Returns the copy including editorial notes and audit fields.
func (h *CensusHandler) GetAdminCopy(c *gin.Context) {
	id, ok := pathID(c, "copy")
	if !ok {
		return
	}

	cp, err := h.service.Copy(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toAdminCopyResponse(cp))
}

// RegisterCensusRoutes registers the public browse, search, autofill, info
// and export routes on the given router group.
func (h *CensusHandler) RegisterCensusRoutes(rg *gin.RouterGroup) {
	rg.GET("/titles", h.ListTitles)
	rg.GET("/titles/:id", h.GetTitle)
	rg.GET("/issues/:id/copies", h.GetIssueCopies)
	rg.GET("/copies/:censusID", h.GetCopyByCensusID)
	rg.GET("/copy-data/:id", h.GetCopy)
	rg.GET("/search", h.Search)

	autofill := rg.Group("/autofill")
	autofill.GET("/location/:query", h.AutofillLocation)
	autofill.GET("/geography/:query", h.AutofillGeography)
	autofill.GET("/provenance/:query", h.AutofillProvenance)
	autofill.GET("/collection", h.AutofillCollection)
	autofill.GET("/collection/:query", h.AutofillCollection)

	rg.GET("/info/:viewname", h.GetInfoPage)

	export := rg.Group("/export")
	export.GET("/:report", h.ExportReport)
}

// RegisterAdminRoutes registers editor-only routes. Callers attach the
// authentication middleware to rg.
func (h *CensusHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/copies/:id", h.GetAdminCopy)
}

// pathID parses a numeric path id. A malformed id names no stored entity, so
// it is answered as not found.
func pathID(c *gin.Context, entity string) (int64, bool) {
	raw := c.Param("id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		dto.HandleError(c, domain.NewNotFoundError(entity, raw))
		return 0, false
	}

	return id, true
}
