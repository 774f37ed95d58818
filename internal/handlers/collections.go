package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/tupyy/achievement-tracker/api/v1"
	"github.com/tupyy/achievement-tracker/internal/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ListCollections returns every collection in creation order
// (GET /collections)
func (h *Handler) ListCollections(c *gin.Context) {
	collections, err := h.collectionSrv.List(c.Request.Context())
	if err != nil {
		writeError(c, "collection_handler", "failed to list collections", err)
		return
	}
	c.JSON(http.StatusOK, v1.NewCollectionList(collections))
}

// CreateCollection creates a collection, or returns the existing one with that name
// (POST /collections)
func (h *Handler) CreateCollection(c *gin.Context) {
	var req v1.CreateCollectionJSONRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, v1.Error{Error: "invalid request body"})
		return
	}

	col, err := h.collectionSrv.Create(c.Request.Context(), req.Name)
	if err != nil {
		writeError(c, "collection_handler", "failed to create collection", err)
		return
	}
	c.JSON(http.StatusCreated, v1.NewCollection(col))
}

// DeleteCollection removes a collection
// (DELETE /collections/{name})
func (h *Handler) DeleteCollection(c *gin.Context, name string) {
	if err := h.collectionSrv.Delete(c.Request.Context(), name); err != nil {
		writeError(c, "collection_handler", "failed to delete collection", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddCollectionEntry adds an achievement of the library to a collection, creating it if needed
// (POST /collections/{name}/entries)
func (h *Handler) AddCollectionEntry(c *gin.Context, name string) {
	var req v1.AddCollectionEntryJSONRequestBody
	if err := c.ShouldBindJSON(&req); err != nil || req.Apiname == "" {
		c.JSON(http.StatusBadRequest, v1.Error{Error: "invalid request body"})
		return
	}

	creds, err := h.credentialsSrv.Get(c.Request.Context())
	if err != nil {
		writeError(c, "collection_handler", "failed to read credentials", err)
		return
	}

	game, merged, err := h.librarySrv.GameAchievements(c.Request.Context(), creds, req.Appid)
	if err != nil {
		writeError(c, "collection_handler", "failed to resolve achievement", err)
		return
	}
	entry, err := services.EntryFor(game, merged, req.Apiname)
	if err != nil {
		writeError(c, "collection_handler", "failed to resolve achievement", err)
		return
	}

	col, err := h.collectionSrv.AddEntry(c.Request.Context(), name, entry)
	if err != nil {
		writeError(c, "collection_handler", "failed to add entry", err)
		return
	}
	c.JSON(http.StatusOK, v1.NewCollection(col))
}

// RemoveCollectionEntry removes the entry at index
// (DELETE /collections/{name}/entries/{index})
func (h *Handler) RemoveCollectionEntry(c *gin.Context, name string, index int) {
	col, err := h.collectionSrv.RemoveEntry(c.Request.Context(), name, index)
	if err != nil {
		writeError(c, "collection_handler", "failed to remove entry", err)
		return
	}
	c.JSON(http.StatusOK, v1.NewCollection(col))
}

// ExportCollections returns the collections as an xlsx workbook
// (GET /collections/export)
func (h *Handler) ExportCollections(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.collectionSrv.Export(c.Request.Context(), &buf); err != nil {
		writeError(c, "collection_handler", "failed to export collections", err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="collections.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
