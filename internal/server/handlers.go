package server

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"go.uber.org/zap"

	"github.com/ChicagoDave/takeoff/pkg/cost"
	"github.com/ChicagoDave/takeoff/pkg/materials"
	"github.com/ChicagoDave/takeoff/pkg/spec"
	"github.com/ChicagoDave/takeoff/pkg/validation"
)

// maxBody bounds request bodies; a takeoff file is a few kilobytes.
const maxBody = 1 << 20

type errorResponse struct {
	Error string                `json:"error"`
	Input *materials.InputError `json:"input,omitempty"`
}

type concreteRequest struct {
	Grade   string           `json:"grade"`
	Volume  float64          `json:"volume"`
	Element *spec.ElementDef `json:"element,omitempty"`
}

type steelRequest struct {
	Element   spec.ElementDef `json:"element"`
	Gauge     int             `json:"gauge"`
	Bars      int             `json:"bars"`
	SpacingCm float64         `json:"spacing_cm"`
}

type excavationRequest struct {
	Work   string  `json:"work"`
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type excavationResponse struct {
	Work     string  `json:"work"`
	VolumeM3 float64 `json:"volume_m3"`
}

type blockRequest struct {
	Length float64 `json:"length"`
	Height float64 `json:"height"`
}

type blockResponse struct {
	materials.BlockResult
	Pieces int `json:"pieces"`
}

type paintRequest struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
}

type takeoffResponse struct {
	Validation *validation.Report `json:"validation"`
	Estimate   *cost.Report       `json:"estimate,omitempty"`
}

type gradeInfo struct {
	Grade   materials.Grade `json:"grade"`
	Default bool            `json:"default,omitempty"`
	materials.Mix
}

type gaugeInfo struct {
	Gauge  materials.Gauge `json:"gauge"`
	KgPerM float64         `json:"kg_per_m"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGrades(w http.ResponseWriter, _ *http.Request) {
	out := make([]gradeInfo, 0, len(materials.Grades))
	for _, g := range materials.Grades {
		mix, _ := materials.LookupGrade(g)
		out = append(out, gradeInfo{Grade: g, Default: g == materials.DefaultGrade, Mix: mix})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGauges(w http.ResponseWriter, _ *http.Request) {
	out := make([]gaugeInfo, 0, len(materials.Gauges))
	for _, g := range materials.Gauges {
		kg, _ := materials.GaugeWeight(g)
		out = append(out, gaugeInfo{Gauge: g, KgPerM: kg})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleConcrete(w http.ResponseWriter, r *http.Request) {
	var req concreteRequest
	if !s.decode(w, r, &req) {
		return
	}

	if req.Element != nil && req.Volume != 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "give either element or volume, not both"})
		return
	}

	volume := req.Volume
	if req.Element != nil {
		el, err := req.Element.Element()
		if err != nil {
			s.fail(w, err)
			return
		}
		if volume, err = materials.Volume(el); err != nil {
			s.fail(w, err)
			return
		}
	}

	res, err := materials.Concrete(volume, materials.Grade(req.Grade))
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleSteel(w http.ResponseWriter, r *http.Request) {
	var req steelRequest
	if !s.decode(w, r, &req) {
		return
	}
	el, err := req.Element.Element()
	if err != nil {
		s.fail(w, err)
		return
	}
	res, err := materials.Steel(el, materials.Rebar{
		Gauge:     materials.Gauge(req.Gauge),
		Bars:      req.Bars,
		SpacingCm: req.SpacingCm,
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleExcavation(w http.ResponseWriter, r *http.Request) {
	var req excavationRequest
	if !s.decode(w, r, &req) {
		return
	}
	v, err := materials.Excavation(req.Length, req.Width, req.Height)
	if err != nil {
		s.fail(w, err)
		return
	}
	work := req.Work
	if work == "" {
		work = string(materials.WorkExcavation)
	}
	writeJSON(w, http.StatusOK, excavationResponse{Work: work, VolumeM3: v})
}

func (s *Server) handleBlock(w http.ResponseWriter, r *http.Request) {
	var req blockRequest
	if !s.decode(w, r, &req) {
		return
	}
	res, err := materials.Block(req.Length, req.Height)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, blockResponse{BlockResult: res, Pieces: res.Pieces()})
}

func (s *Server) handlePaint(w http.ResponseWriter, r *http.Request) {
	var req paintRequest
	if !s.decode(w, r, &req) {
		return
	}
	res, err := materials.Paint(req.Length, req.Width)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleTakeoff accepts a takeoff as JSON (Content-Type application/json) or
// YAML (anything else), validates it and returns the estimate.
//
// Validation errors answer 422 with the report and no estimate.
func (s *Server) handleTakeoff(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBody))
	if err != nil {
		s.fail(w, err)
		return
	}

	var t *spec.Takeoff
	if isJSON(r) {
		t = &spec.Takeoff{}
		err = json.Unmarshal(data, t)
	} else {
		t, err = spec.Parse(data)
	}
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	report := validation.Validate(t)
	if !report.Valid {
		writeJSON(w, http.StatusUnprocessableEntity, takeoffResponse{Validation: report})
		return
	}

	est, err := cost.Estimate(t)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.log.Info("takeoff estimated",
		zap.String("project", t.Project.Name),
		zap.Int("lines", len(est.Lines)),
	)
	writeJSON(w, http.StatusOK, takeoffResponse{Validation: report, Estimate: est})
}

func isJSON(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "application/json"
}

// decode reads a JSON body into v, answering 400 itself on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		s.log.Debug("bad request body", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body: " + err.Error()})
		return false
	}
	return true
}

// fail maps calculator errors to 400 and everything else to 500.
func (s *Server) fail(w http.ResponseWriter, err error) {
	if errors.Is(err, materials.ErrInvalidInput) {
		resp := errorResponse{Error: err.Error()}
		var ie *materials.InputError
		if errors.As(err, &ie) {
			resp.Input = ie
		}
		writeJSON(w, http.StatusBadRequest, resp)
		return
	}
	s.log.Error("request failed", zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
