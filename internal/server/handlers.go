package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"tubelens/internal/core"
	"tubelens/internal/strategy"
)

// AnalyzeRequest is the body of POST /api/analyze.
type AnalyzeRequest struct {
	Videos      []core.VideoRecord `json:"videos"`
	ChannelName string             `json:"channel_name,omitempty"`
	ChannelID   string             `json:"channel_id,omitempty"`
}

// SaveEngagementRequest is the body of POST /api/engagement.
type SaveEngagementRequest struct {
	ChannelID      string          `json:"channel_id"`
	EngagementType string          `json:"engagement_type"`
	Data           json.RawMessage `json:"data"`
}

// StrategyRequest is the body of POST /api/strategy.
type StrategyRequest struct {
	ChannelID string `json:"channel_id"`
	Region    string `json:"region,omitempty"`
	Language  string `json:"language,omitempty"`
}

// EngagementResponse is a single engagement lookup result.
type EngagementResponse struct {
	ChannelID      string          `json:"channel_id"`
	EngagementType string          `json:"engagement_type"`
	Data           json.RawMessage `json:"data"`
	Found          bool            `json:"found"`
}

// EngagementListResponse is a bulk engagement lookup result.
type EngagementListResponse struct {
	ChannelID            string                     `json:"channel_id"`
	EngagementData       map[string]json.RawMessage `json:"engagement_data"`
	TotalEngagementTypes int                        `json:"total_engagement_types"`
}

// ErrorResponse carries a client-facing error message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleAnalyze runs the keyword analysis pipeline over a video batch.
// Persistence of the result is best-effort: a store failure is logged and the
// analysis is still returned.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Videos == nil {
		s.respondError(w, http.StatusBadRequest, "videos is required (an empty list is allowed)")
		return
	}

	result := s.analyzer.Analyze(req.Videos)

	if req.ChannelID != "" {
		payload, err := json.Marshal(result)
		if err == nil {
			err = s.store.Save(req.ChannelID, core.EngagementKeywordAnalysis, payload)
		}
		if err != nil {
			s.log.Error().Err(err).
				Str("channel_id", req.ChannelID).
				Msg("Failed to persist keyword analysis")
		}
	}

	s.respondJSON(w, http.StatusOK, result)
}

// handleStrategy derives channel-strategy insights from the stored keyword
// analysis for a channel.
func (s *Server) handleStrategy(w http.ResponseWriter, r *http.Request) {
	var req StrategyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.ChannelID == "" {
		s.respondError(w, http.StatusBadRequest, "channel_id is required")
		return
	}
	if req.Region == "" {
		req.Region = "global"
	}
	if req.Language == "" {
		req.Language = "en"
	}

	payload, found, err := s.store.Get(req.ChannelID, core.EngagementKeywordAnalysis)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "engagement lookup failed")
		return
	}
	if !found {
		s.respondError(w, http.StatusNotFound,
			"no keyword analysis stored for this channel; run /api/analyze with a channel_id first")
		return
	}

	var analysis core.AnalysisResult
	if err := json.Unmarshal(payload, &analysis); err != nil {
		s.respondError(w, http.StatusInternalServerError, "stored keyword analysis is unreadable")
		return
	}

	topKeywords := make([]string, 0, len(analysis.TopKeywords))
	for _, kc := range analysis.TopKeywords {
		topKeywords = append(topKeywords, kc.Keyword)
	}

	result := core.ChannelStrategy{
		ChannelID:         req.ChannelID,
		Region:            req.Region,
		Language:          req.Language,
		StrategicInsights: strategy.BuildInsights(topKeywords, req.Region, req.Language),
	}

	if data, err := json.Marshal(result); err == nil {
		if err := s.store.Save(req.ChannelID, core.EngagementChannelStrategy, data); err != nil {
			s.log.Error().Err(err).
				Str("channel_id", req.ChannelID).
				Msg("Failed to persist channel strategy")
		}
	}

	s.respondJSON(w, http.StatusOK, result)
}

// handleGetEngagement looks up one stored payload. A missing key is not an
// error: it responds found=false with empty data.
func (s *Server) handleGetEngagement(w http.ResponseWriter, r *http.Request) {
	channelID := chi.URLParam(r, "channelID")
	engagementType := chi.URLParam(r, "engagementType")

	payload, found, err := s.store.Get(channelID, engagementType)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "engagement lookup failed")
		return
	}

	s.respondJSON(w, http.StatusOK, EngagementResponse{
		ChannelID:      channelID,
		EngagementType: engagementType,
		Data:           payload,
		Found:          found,
	})
}

// handleSaveEngagement stores an arbitrary engagement payload.
func (s *Server) handleSaveEngagement(w http.ResponseWriter, r *http.Request) {
	var req SaveEngagementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.ChannelID == "" || req.EngagementType == "" {
		s.respondError(w, http.StatusBadRequest, "channel_id and engagement_type are required")
		return
	}
	if len(req.Data) == 0 {
		s.respondError(w, http.StatusBadRequest, "data is required")
		return
	}

	if err := s.store.Save(req.ChannelID, req.EngagementType, req.Data); err != nil {
		s.log.Error().Err(err).
			Str("channel_id", req.ChannelID).
			Str("engagement_type", req.EngagementType).
			Msg("Failed to save engagement data")
		s.respondError(w, http.StatusInternalServerError, "failed to save engagement data")
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]string{
		"message":         "engagement data saved",
		"channel_id":      req.ChannelID,
		"engagement_type": req.EngagementType,
	})
}

// handleListEngagement returns every engagement entry for a channel.
func (s *Server) handleListEngagement(w http.ResponseWriter, r *http.Request) {
	channelID := chi.URLParam(r, "channelID")

	data, err := s.store.GetAll(channelID)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "engagement lookup failed")
		return
	}

	s.respondJSON(w, http.StatusOK, EngagementListResponse{
		ChannelID:            channelID,
		EngagementData:       data,
		TotalEngagementTypes: len(data),
	})
}

// HealthResponse reports liveness and store connectivity.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// StatusResponse reports version, uptime, and store statistics.
type StatusResponse struct {
	Version string      `json:"version"`
	Uptime  string      `json:"uptime"`
	Store   StoreStatus `json:"store"`
}

// StoreStatus summarizes engagement store health.
type StoreStatus struct {
	Connected bool `json:"connected"`
	Entries   int  `json:"entries"`
	Channels  int  `json:"channels"`
}

var serverStartTime = time.Now()

// handleHealth handles the /health endpoint.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]string)

	if err := s.store.Ping(r.Context()); err != nil {
		checks["database"] = "error"
		s.respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status: "unhealthy",
			Checks: checks,
		})
		return
	}
	checks["database"] = "ok"

	s.respondJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Checks: checks,
	})
}

// handleStatus handles the /api/status endpoint.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	status := StoreStatus{Connected: true}
	if stats, err := s.store.GetStats(); err == nil {
		status.Entries = stats.Entries
		status.Channels = stats.Channels
	} else {
		status.Connected = false
	}

	s.respondJSON(w, http.StatusOK, StatusResponse{
		Version: "v1.0.0",
		Uptime:  time.Since(serverStartTime).String(),
		Store:   status,
	})
}

// respondJSON writes a JSON response.
func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// respondError writes a JSON error response.
func (s *Server) respondError(w http.ResponseWriter, status int, msg string) {
	s.respondJSON(w, status, ErrorResponse{Error: msg})
}
