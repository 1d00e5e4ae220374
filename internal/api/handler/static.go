package handler

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	indexFile    = "index.html"
	fallbackText = "OmsorgsPlus API is running"
)

// StaticHandler serves the single-page frontend. Lookup order for a path:
// the file itself, then index.html, then a plain-text banner.
type StaticHandler struct {
	root string
}

func NewStaticHandler(root string) *StaticHandler {
	return &StaticHandler{root: root}
}

// Serve handles GET /* for everything outside /api.
func (h *StaticHandler) Serve(c echo.Context) error {
	if isAPIPath(c.Request().URL.Path) {
		return h.NotFound(c)
	}

	if name, ok := h.lookup(c.Request().URL.Path); ok {
		return c.File(name)
	}
	if name, ok := h.lookup("/" + indexFile); ok {
		return c.File(name)
	}
	return c.String(http.StatusOK, fallbackText)
}

// NotFound handles unmatched /api routes with a JSON body.
func (h *StaticHandler) NotFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, errorResponse{Error: "not found"})
}

// lookup resolves urlPath under root. The path is cleaned as an absolute
// path first, so ".." segments cannot climb out of root.
func (h *StaticHandler) lookup(urlPath string) (string, bool) {
	if h.root == "" {
		return "", false
	}
	clean := path.Clean("/" + urlPath)
	if clean == "/" {
		clean = "/" + indexFile
	}
	name := filepath.Join(h.root, filepath.FromSlash(clean))

	info, err := os.Stat(name)
	if err != nil || info.IsDir() {
		return "", false
	}
	return name, true
}

func isAPIPath(p string) bool {
	return p == "/api" || strings.HasPrefix(p, "/api/")
}
