package route

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"naptar/src-server/utils"
)

// Serve the calendar widget from STATIC_WEB_CLIENT_DIR, unknown paths fall
// back to index.html
func SPA(muxer *http.ServeMux, as *utils.AppState) {
	dir := as.Config.GetStaticWebClientDir()
	if dir == "" {
		slog.Debug("STATIC_WEB_CLIENT_DIR not set, not serving a web client")
		return
	}

	files := http.FS(os.DirFS(dir))
	indexFile, err := files.Open("index.html")
	if err != nil {
		slog.Error("can't open index.html", "error", err)
		return
	}
	indexFile.Close()

	serveFile := func(w http.ResponseWriter, r *http.Request, name string) bool {
		file, err := files.Open(name)
		if err != nil {
			return false
		}
		defer file.Close()
		stat, err := file.Stat()
		if err != nil || stat.IsDir() {
			return false
		}
		http.ServeContent(w, r, stat.Name(), stat.ModTime(), file)
		return true
	}

	muxer.HandleFunc("GET /{filepath...}", func(w http.ResponseWriter, r *http.Request) {
		filepath := filepath.Clean(r.PathValue("filepath"))
		switch filepath {
		case ".":
			filepath = "index.html"
		case "404":
			filepath = "404.html"
		}

		if serveFile(w, r, filepath) {
			return
		}
		if !serveFile(w, r, "index.html") {
			http.NotFound(w, r)
		}
	})
}
