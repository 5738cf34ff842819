package api

import (
	"encoding/json"
	"mime"
	"net/http"
	"path"
	"slices"

	"github.com/matzehuels/cubetex/pkg/buildinfo"
	"github.com/matzehuels/cubetex/pkg/core/grid"
	"github.com/matzehuels/cubetex/pkg/core/render/cube"
	"github.com/matzehuels/cubetex/pkg/errors"
	specio "github.com/matzehuels/cubetex/pkg/io"
	"github.com/matzehuels/cubetex/pkg/pipeline"
)

// renderRequest is the body of POST /v1/render.
type renderRequest struct {
	Spec *specio.Spec `json:"spec"`
	pipeline.Options
}

// renderResponse is the JSON answer of POST /v1/render.
type renderResponse struct {
	RequestID string            `json:"request_id"`
	SpecHash  string            `json:"spec_hash"`
	Kind      cube.Kind         `json:"kind"`
	Shape     grid.Shape3       `json:"shape"`
	Cached    bool              `json:"cached"`
	Artifacts map[string]string `json:"artifacts"`
}

var rawContentTypes = map[string]string{
	pipeline.FormatTeX:  "application/x-tex; charset=utf-8",
	pipeline.FormatTikZ: "text/plain; charset=utf-8",
	pipeline.FormatJSON: "application/json",
}

func (s *Server) render(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		fail(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		return
	}
	if req.Spec == nil {
		fail(w, r, errors.New(errors.ErrCodeInvalidInput, "request has no spec"))
		return
	}

	raw := r.URL.Query().Get("raw")
	filename := r.URL.Query().Get("filename")
	if raw != "" {
		if err := pipeline.ValidateFormat(raw); err != nil {
			fail(w, r, err)
			return
		}
		if filename != "" {
			if err := errors.ValidatePath(filename); err != nil {
				fail(w, r, err)
				return
			}
		}
		if !slices.Contains(req.Formats, raw) {
			req.Formats = append(req.Formats, raw)
		}
	}

	req.Logger = s.logger
	res, err := s.runner.Render(r.Context(), req.Spec, req.Options)
	if err != nil {
		fail(w, r, err)
		return
	}

	if raw != "" {
		w.Header().Set("Content-Type", rawContentTypes[raw])
		if filename != "" {
			w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment",
				map[string]string{"filename": path.Base(filename)}))
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(res.Artifacts[raw])
		return
	}

	out := renderResponse{
		RequestID: RequestIDFrom(r.Context()),
		SpecHash:  res.SpecHash,
		Kind:      res.Kind,
		Shape:     res.Shape,
		Cached:    res.CacheInfo.RenderHit,
		Artifacts: make(map[string]string, len(res.Artifacts)),
	}
	for format, data := range res.Artifacts {
		out.Artifacts[format] = string(data)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) example(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, specio.ExampleSpec())
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) version(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, buildinfo.Get())
}
