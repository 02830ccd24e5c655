package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/copy-census/internal/adapters/http/dto"
)

type matchesResponse[T any] struct {
	Matches []T `json:"matches"`
}

// CollectionMatch is one entry of the collection autofill list.
type CollectionMatch struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// AutofillLocation handles GET /api/v1/autofill/location/:query
func (h *CensusHandler) AutofillLocation(c *gin.Context) {
	h.autofill(c, h.service.AutofillLocations)
}

// AutofillGeography handles GET /api/v1/autofill/geography/:query
func (h *CensusHandler) AutofillGeography(c *gin.Context) {
	h.autofill(c, h.service.AutofillGeography)
}

// AutofillProvenance handles GET /api/v1/autofill/provenance/:query
func (h *CensusHandler) AutofillProvenance(c *gin.Context) {
	h.autofill(c, h.service.AutofillProvenance)
}

// AutofillCollection handles GET /api/v1/autofill/collection[/:query]
// The list is static and the query is ignored.
func (h *CensusHandler) AutofillCollection(c *gin.Context) {
	options := h.service.CollectionOptions()

	resp := matchesResponse[CollectionMatch]{Matches: make([]CollectionMatch, 0, len(options))}
	for _, o := range options {
		resp.Matches = append(resp.Matches, CollectionMatch{Label: o.Label, Value: o.Value})
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CensusHandler) autofill(c *gin.Context, lookup func(context.Context, string) ([]string, error)) {
	matches, err := lookup(c.Request.Context(), c.Param("query"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, matchesResponse[string]{Matches: matches})
}
