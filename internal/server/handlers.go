package server

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"strconv"

	"github.com/matzehuels/roughdraw/pkg/buildinfo"
	"github.com/matzehuels/roughdraw/pkg/errors"
	"github.com/matzehuels/roughdraw/pkg/pipeline"
)

// HeaderCache reports whether the artifact came from the cache ("hit") or
// was rendered for this request ("miss").
const HeaderCache = "X-Cache"

type errorBody struct {
	Error     errorDetail `json:"error"`
	RequestID string      `json:"request_id,omitempty"`
}

type errorDetail struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"version": buildinfo.Version,
		"commit":  buildinfo.Commit,
		"date":    buildinfo.Date,
	})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	opts, err := parseQuery(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.opts.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "document exceeds %d bytes", tooLarge.Limit))
			return
		}
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "read body"))
		return
	}

	res, err := s.runner.Execute(ctx, body, opts)
	if err != nil {
		if ctx.Err() != nil {
			// client went away; nobody is reading the response
			return
		}
		s.writeError(w, r, err)
		return
	}

	format := opts.Formats[0]
	data := res.Artifacts[format]
	cacheStatus := "miss"
	if res.CacheInfo.RenderHit {
		cacheStatus = "hit"
	}

	w.Header().Set("Content-Type", pipeline.ContentTypes[format])
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set(HeaderCache, cacheStatus)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// parseQuery reads render options from the query string. The options are
// validated here so that bad parameters fail before the body is read.
func parseQuery(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := pipeline.Options{
		Background: q.Get("background"),
		Refresh:    q.Get("refresh") == "true",
	}
	if f := q.Get("format"); f != "" {
		opts.Formats = []string{f}
	}
	if v := q.Get("quality"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidQuality, "quality must be an integer, got %q", v)
		}
		opts.Quality = n
	}
	if v := q.Get("dpi"); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidDPI, "dpi must be a number, got %q", v)
		}
		opts.DPI = n
	}
	if v := q.Get("legacy"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "legacy must be a boolean, got %q", v)
		}
		opts.Legacy = b
	}
	if v := q.Get("precision"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "precision must be an integer, got %q", v)
		}
		opts.Precision = &n
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return opts, err
	}
	return opts, nil
}

// statusFor maps error codes to HTTP status codes.
func statusFor(err error) int {
	var mbe *http.MaxBytesError
	if stderrors.As(err, &mbe) {
		return http.StatusRequestEntityTooLarge
	}
	switch code := errors.GetCode(err); {
	case code == errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case code.UserFault():
		return http.StatusBadRequest
	case code == errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	msg := errors.UserMessage(err)
	if status == http.StatusInternalServerError {
		s.opts.Logger.Error("render failed", "request_id", RequestIDFromContext(r.Context()), "err", err)
		msg = "internal error"
	}
	writeJSON(w, status, errorBody{
		Error:     errorDetail{Code: code, Message: msg},
		RequestID: RequestIDFromContext(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
