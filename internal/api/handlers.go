package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/limbo/placebetween/internal/catalog"
	errorvalues "github.com/limbo/placebetween/internal/error_values"
	"github.com/limbo/placebetween/internal/service"
	"github.com/limbo/placebetween/pkg/entity"
	"github.com/limbo/placebetween/pkg/httputil"
)

type CompleteActivityRequest struct {
	View  string `json:"view"`
	Phase string `json:"phase"`
}

type CheckinRequest struct {
	EmotionID int    `json:"emotion_id"`
	Intensity int    `json:"intensity"`
	Note      string `json:"note"`
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (s *Server) Today(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), s.handlerTimeout)
	defer cancel()
	view, err := s.engine.Today(ctx, GetScopeFromCtx(r.Context()), entity.Phase(r.URL.Query().Get("phase")))
	if err != nil {
		s.writeServiceError(w, logger, "today view", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, view)
	logger.Info("today view provided", slog.String("phase", string(view.Phase)))
}

func (s *Server) CompleteActivity(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req CompleteActivityRequest
	if err := httputil.DecodeJSON(r, &req, true); err != nil {
		logger.Error("complete activity error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.handlerTimeout)
	defer cancel()
	outcome, err := s.engine.Complete(ctx, &service.CompleteRequest{
		UserScope:  GetScopeFromCtx(r.Context()),
		Token:      GetBearerFromCtx(r.Context()),
		ActivityID: chi.URLParam(r, "id"),
		View:       entity.View(req.View),
		Phase:      entity.Phase(req.Phase),
	})
	if err != nil {
		s.writeServiceError(w, logger, "complete activity", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, outcome)
	logger.Info("activity completed",
		slog.String("activity_id", outcome.ActivityID),
		slog.Int("points", outcome.Points),
		slog.Bool("awarded", outcome.Awarded),
	)
}

func (s *Server) ListActivities(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	q := r.URL.Query()
	filter := catalog.Filter{
		Branch: q.Get("branch"),
		Query:  q.Get("q"),
	}
	if p := q.Get("phase"); p != "" {
		phase, err := entity.ParsePhase(p)
		if err != nil {
			s.writeServiceError(w, logger, "list activities", err)
			return
		}
		filter.Phase = phase
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.handlerTimeout)
	defer cancel()
	view, err := s.engine.ListActivities(ctx, GetScopeFromCtx(r.Context()), GetBearerFromCtx(r.Context()), filter)
	if err != nil {
		s.writeServiceError(w, logger, "list activities", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, view)
	logger.Info("activities provided", slog.Int("count", len(view.Activities)), slog.Bool("remote", view.Remote))
}

func (s *Server) Points(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), s.handlerTimeout)
	defer cancel()
	day, err := s.engine.Points(ctx, GetScopeFromCtx(r.Context()), r.URL.Query().Get("date"))
	if err != nil {
		s.writeServiceError(w, logger, "points", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, day)
}

func (s *Server) ListEmotions(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), s.handlerTimeout)
	defer cancel()
	emotions, err := s.mirror.ListEmotions(ctx)
	if err != nil {
		s.writeServiceError(w, logger, "list emotions", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, emotions)
}

func (s *Server) Checkin(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req CheckinRequest
	if err := httputil.DecodeJSON(r, &req, false); err != nil {
		logger.Error("checkin error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.handlerTimeout)
	defer cancel()
	checkin, err := s.mirror.Checkin(ctx, GetBearerFromCtx(r.Context()), &entity.CheckinRequest{
		EmotionID: req.EmotionID,
		Intensity: req.Intensity,
		Note:      req.Note,
	})
	if err != nil {
		s.writeServiceError(w, logger, "checkin", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, checkin)
	logger.Info("emotion checkin saved")
}

func (s *Server) MirrorToday(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), s.handlerTimeout)
	defer cancel()
	summary, err := s.mirror.DailySummary(ctx, GetBearerFromCtx(r.Context()))
	if err != nil {
		s.writeServiceError(w, logger, "mirror", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, summary)
}

func (s *Server) writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	var verr validator.ValidationErrors
	switch {
	case errors.As(err, &verr):
		logger.Error(op + " error: validation failed")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request", err)
	case errors.Is(err, errorvalues.ErrInvalidPhase), errors.Is(err, errorvalues.ErrInvalidDate):
		logger.Error(op + " error: " + err.Error())
		httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, errorvalues.ErrActivityNotFound):
		logger.Error(op + " error: unexist activity")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "activity doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrAuthRequired):
		logger.Error(op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "sign in to continue", nil)
	case errors.Is(err, errorvalues.ErrBackendNotConfigured):
		logger.Error(op + " error: backend url is not configured")
		httputil.WriteErrorResponse(w, http.StatusServiceUnavailable, "backend is not configured", nil)
	case errors.Is(err, errorvalues.ErrRemoteUnavailable):
		logger.Error(op+" error: remote api", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadGateway, "remote api unavailable", nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during "+op, nil)
	}
}
