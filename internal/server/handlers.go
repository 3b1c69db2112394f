package server

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"

	"github.com/matzehuels/hypercube/pkg/buildinfo"
	errs "github.com/matzehuels/hypercube/pkg/errors"
	pkgio "github.com/matzehuels/hypercube/pkg/io"
	"github.com/matzehuels/hypercube/pkg/observability"
	"github.com/matzehuels/hypercube/pkg/pipeline"
	"github.com/matzehuels/hypercube/pkg/render/sink"
)

// HeaderCache reports whether a response was served from cache ("hit" or "miss").
const HeaderCache = "X-Cache"

// mediaFormats maps request media types to document formats.
var mediaFormats = map[string]pkgio.Format{
	"text/tab-separated-values": pkgio.FormatTSV,
	"application/json":          pkgio.FormatJSON,
	"application/yaml":          pkgio.FormatYAML,
	"application/x-yaml":        pkgio.FormatYAML,
	"text/yaml":                 pkgio.FormatYAML,
	"application/toml":          pkgio.FormatTOML,
}

type errorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

type healthResponse struct {
	Status string `json:"status"`
	buildinfo.Info
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Info: buildinfo.Get()})
}

func (s *Server) handlePartition(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	doc, err := decodeDocument(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts, err := s.partitionOptions(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	cube, docHash, err := pipeline.Load(doc)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	placements, hit, err := s.runner.PartitionWithCacheInfo(ctx, cube, docHash, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	body, err := sink.RenderJSON(cube, placements)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set(HeaderCache, cacheStatus(hit))
	writeBytes(w, pipeline.ContentTypes[pipeline.FormatJSON], body)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	doc, err := decodeDocument(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts, err := s.partitionOptions(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.DefaultFormats[0]
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Formats = []string{format}

	result, err := s.runner.Execute(ctx, doc, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set(HeaderCache, cacheStatus(result.CacheInfo.PartitionHit && result.CacheInfo.RenderHit))
	writeBytes(w, pipeline.ContentTypes[format], result.Artifacts[format])
}

// decodeDocument reads the request body in the format named by ?input= or
// the Content-Type header.
func decodeDocument(w http.ResponseWriter, r *http.Request) (*pkgio.Document, error) {
	format, err := requestFormat(r)
	if err != nil {
		return nil, err
	}
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	doc, err := pkgio.Read(body, format)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "document exceeds %d bytes", maxBodyBytes)
		}
		return nil, err
	}
	return doc, nil
}

func requestFormat(r *http.Request) (pkgio.Format, error) {
	if in := r.URL.Query().Get("input"); in != "" {
		return pkgio.ParseFormat(in)
	}
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return pkgio.FormatJSON, nil
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return "", errs.Wrap(errs.ErrCodeInvalidFormat, err, "content type %q", ct)
	}
	if f, ok := mediaFormats[mt]; ok {
		return f, nil
	}
	if mt == "text/plain" {
		return pkgio.FormatTSV, nil
	}
	return "", errs.New(errs.ErrCodeInvalidFormat, "unsupported content type %q", mt)
}

// partitionOptions reads strategy, merge and verify from the query string.
func (s *Server) partitionOptions(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := pipeline.Options{
		Strategy: q.Get("strategy"),
		Merge:    q.Get("merge"),
		Logger:   s.logger,
	}
	if v := q.Get("verify"); v != "" {
		verify, err := strconv.ParseBool(v)
		if err != nil {
			return opts, errs.New(errs.ErrCodeInvalidInput, "verify: %q is not a boolean", v)
		}
		opts.Verify = verify
	}
	return opts, opts.ValidateForPartition()
}

// statusFor maps an error to its HTTP status.
func statusFor(err error) int {
	switch errs.GetCode(err) {
	case errs.ErrCodeInvalidFormat, errs.ErrCodeInvalidStrategy, errs.ErrCodeInvalidMerge:
		return http.StatusBadRequest
	}
	if errs.IsDocumentError(err) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, err)

	code := errs.GetCode(err)
	if code == "" {
		code = errs.ErrCodeInternal
	}
	msg := errs.UserMessage(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("internal error", "run", runIDFromContext(r.Context()), "err", err)
		if code == errs.ErrCodeInternal {
			msg = "internal error"
		}
	}
	writeJSON(w, status, errorResponse{Code: string(code), Error: msg})
}

func cacheStatus(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeBytes(w http.ResponseWriter, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
