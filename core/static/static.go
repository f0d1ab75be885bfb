package static

import (
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/miroslava-go/miroslava/core/response"
)

// DefaultDir is the static folder used when none is configured.
const DefaultDir = "static"

// fallbackContentType is used when the extension is unknown.
const fallbackContentType = "application/octet-stream"

// Serve resolves urlPath inside root and returns the file's bytes with a
// guessed content type. The urlPrefix (e.g. "static") is stripped from
// the path when present. Missing files, directories, and paths escaping
// the root all yield a 404 response.
func Serve(root, urlPrefix, urlPath string) *response.Response {
	if root == "" {
		root = DefaultDir
	}
	rel := strings.TrimPrefix(urlPath, "/")
	prefix := strings.Trim(urlPrefix, "/")
	if prefix == "" {
		prefix = DefaultDir
	}
	if after, ok := strings.CutPrefix(rel, prefix+"/"); ok {
		rel = after
	} else if after, ok := strings.CutPrefix(rel, DefaultDir+"/"); ok {
		rel = after
	}

	cleanRoot := filepath.Clean(root)
	full := filepath.Clean(filepath.Join(cleanRoot, filepath.FromSlash(rel)))
	if full != cleanRoot && !strings.HasPrefix(full, cleanRoot+string(filepath.Separator)) {
		return notFound()
	}

	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		return notFound()
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return notFound()
	}

	ct := mime.TypeByExtension(filepath.Ext(full))
	if ct == "" {
		ct = fallbackContentType
	}
	return response.NewBytes(data, response.WithContentType(ct))
}

func notFound() *response.Response {
	return response.New(http.StatusText(http.StatusNotFound),
		response.WithStatus(http.StatusNotFound))
}
