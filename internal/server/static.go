package server

import (
	"io/fs"
	"net/http"
	"path"
	"strings"
)

// frontendFS hides directories that have no index.html so the file server
// never renders a listing for them.
type frontendFS struct {
	root http.FileSystem
}

func (f frontendFS) Open(name string) (http.File, error) {
	file, err := f.root.Open(name)
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if !info.IsDir() {
		return file, nil
	}

	index, err := f.root.Open(path.Join(name, "index.html"))
	if err != nil {
		file.Close()
		return nil, fs.ErrNotExist
	}
	index.Close()
	return file, nil
}

// staticHandler serves the frontend. Paths naming an index.html are served
// as is instead of being redirected to their directory.
func staticHandler(root http.FileSystem) http.Handler {
	files := frontendFS{root: root}
	fileServer := http.FileServer(files)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := path.Clean("/" + r.URL.Path)
		if strings.HasSuffix(name, "/index.html") {
			serveFile(w, r, files, name)
			return
		}
		fileServer.ServeHTTP(w, r)
	})
}

func serveFile(w http.ResponseWriter, r *http.Request, files http.FileSystem, name string) {
	file, err := files.Open(name)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}

	http.ServeContent(w, r, info.Name(), info.ModTime(), file)
}
