package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/copy-census/internal/adapters/http/dto"
	"github.com/jsamuelsen/copy-census/internal/catalog"
)

// StatsResponse carries the census-wide counts.
type StatsResponse struct {
	Canonical        int `json:"canonicalCount"`
	Copies           int `json:"copyCount"`
	Fragments        int `json:"fragmentCopyCount"`
	Verified         int `json:"verifiedCopyCount"`
	Unverified       int `json:"unverifiedCopyCount"`
	FromESTC         int `json:"estcCopyCount"`
	NotFromESTC      int `json:"nonEstcCopyCount"`
	Facsimiles       int `json:"facsimileCopyCount"`
	FacsimilePercent int `json:"facsimileCopyPercent"`
}

// InfoPageResponse is a rendered informational page.
type InfoPageResponse struct {
	ViewName   string        `json:"viewname"`
	PageName   string        `json:"pageName"`
	CensusName string        `json:"censusName,omitempty"`
	Email      string        `json:"email,omitempty"`
	Content    string        `json:"content"`
	Stats      StatsResponse `json:"stats"`
}

func toStatsResponse(s catalog.Stats) StatsResponse {
	return StatsResponse{
		Canonical:        s.Canonical,
		Copies:           s.Copies,
		Fragments:        s.Fragments,
		Verified:         s.Verified,
		Unverified:       s.Unverified,
		FromESTC:         s.FromESTC,
		NotFromESTC:      s.NotFromESTC,
		Facsimiles:       s.Facsimiles,
		FacsimilePercent: s.FacsimilePct,
	}
}

// GetInfoPage handles GET /api/v1/info/:viewname
// Returns the stored page text with census statistics filled in.
func (h *CensusHandler) GetInfoPage(c *gin.Context) {
	page, err := h.service.InfoPage(c.Request.Context(), c.Param("viewname"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	site := h.service.Site()

	c.JSON(http.StatusOK, InfoPageResponse{
		ViewName:   page.ViewName,
		PageName:   page.PageName,
		CensusName: site.Name,
		Email:      site.Email,
		Content:    page.Content,
		Stats:      toStatsResponse(page.Stats),
	})
}
