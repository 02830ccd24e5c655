package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/copy-census/internal/adapters/http/dto"
	"github.com/jsamuelsen/copy-census/internal/app"
)

// SearchResponse is the HTTP response of a search.
type SearchResponse struct {
	Field               string         `json:"field"`
	Value               string         `json:"value"`
	DisplayField        string         `json:"displayField"`
	DisplayValue        string         `json:"displayValue"`
	InitialField        string         `json:"initialField,omitempty"`
	InitialValue        string         `json:"initialValue,omitempty"`
	InitialDisplayField string         `json:"initialDisplayField,omitempty"`
	Order               string         `json:"order"`
	Count               int            `json:"count"`
	InitialIDs          []int64        `json:"initialIds"`
	Ghost               bool           `json:"ghost"`
	Results             []CopyResponse `json:"results"`
}

func toSearchResponse(r *app.SearchResponse) SearchResponse {
	return SearchResponse{
		Field:               r.Field,
		Value:               r.Value,
		DisplayField:        r.DisplayField,
		DisplayValue:        r.DisplayValue,
		InitialField:        r.InitialField,
		InitialValue:        r.InitialValue,
		InitialDisplayField: r.InitialDisplayField,
		Order:               r.Order,
		Count:               r.Count(),
		InitialIDs:          r.CurrentIDs,
		Ghost:               r.Ghost,
		Results:             toCopyResponses(r.Copies),
	}
}

// Search handles GET /api/v1/search
// Query parameters: field, value, order, initial_field, initial_value and
// initial_ids (repeated or comma separated). The ids of the result come back
// as initialIds for searching within it. Malformed input yields an empty
// result, never an error.
func (h *CensusHandler) Search(c *gin.Context) {
	req := app.SearchRequest{
		Field:        c.Query("field"),
		Value:        c.Query("value"),
		Order:        c.Query("order"),
		InitialField: c.Query("initial_field"),
		InitialValue: c.Query("initial_value"),
		InitialIDs:   parseIDs(c.QueryArray("initial_ids")),
	}

	resp, err := h.service.Search(c.Request.Context(), req)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSearchResponse(resp))
}

// parseIDs parses copy ids, skipping anything that is not an integer.
func parseIDs(values []string) []int64 {
	var ids []int64

	for _, v := range values {
		for part := range strings.SplitSeq(v, ",") {
			id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
			if err == nil {
				ids = append(ids, id)
			}
		}
	}

	return ids
}
