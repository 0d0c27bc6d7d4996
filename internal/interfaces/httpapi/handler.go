package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/match-analytics/internal/platform/logging"
	"github.com/riskibarqy/match-analytics/internal/usecase"
)

const defaultLimit = 10

type Handler struct {
	matchService        *usecase.MatchService
	standingsService    *usecase.StandingsService
	playerSeasonService *usecase.PlayerSeasonService
	logger              *logging.Logger
	validator           *validator.Validate
}

func NewHandler(
	matchService *usecase.MatchService,
	standingsService *usecase.StandingsService,
	playerSeasonService *usecase.PlayerSeasonService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		matchService:        matchService,
		standingsService:    standingsService,
		playerSeasonService: playerSeasonService,
		logger:              logger,
		validator:           validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// fail logs a failed request and writes the error envelope. Client errors log
// at warn, everything else at error.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error, args ...any) {
	args = append(args, "error", err)
	if mapError(ctx, err).HTTPStatus >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, args...)
	} else {
		h.logger.WarnContext(ctx, msg, args...)
	}
	writeError(ctx, w, err)
}

type limitQuery struct {
	Limit int `validate:"gte=1,lte=100"`
}

type eventWindowQuery struct {
	Team   string `validate:"required"`
	Kind   string `validate:"required,oneof=shots passes saves goals"`
	Minute int    `validate:"gte=0"`
	Half   int    `validate:"gte=0,lte=1"`
}

type playerWindowQuery struct {
	Players []string `validate:"required,min=1,dive,required"`
	Kind    string   `validate:"required,oneof=shots passes saves goals"`
	Minute  int      `validate:"gte=0"`
}

type standingsQuery struct {
	Matchday int `validate:"gte=0"`
}

type evolutionQuery struct {
	Team        string `validate:"required"`
	Aggregation string `validate:"required,oneof=match month"`
}

type profileQuery struct {
	Team string `validate:"required"`
}

type locationsQuery struct {
	Kind    string `validate:"required,oneof=shots touches"`
	MatchID string
}

type searchQuery struct {
	Query string `validate:"required,max=100"`
	Limit int    `validate:"gte=1,lte=50"`
}

func queryString(values url.Values, key, fallback string) string {
	if v := strings.TrimSpace(values.Get(key)); v != "" {
		return v
	}
	return fallback
}

func queryInt(values url.Values, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, key)
	}
	return v, nil
}

func pathInt(r *http.Request, key string) (int, error) {
	raw := strings.TrimSpace(r.PathValue(key))
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, key)
	}
	return v, nil
}

func (h *Handler) parseLimit(ctx context.Context, r *http.Request) (int, error) {
	limit, err := queryInt(r.URL.Query(), "limit", defaultLimit)
	if err != nil {
		return 0, err
	}
	q := limitQuery{Limit: limit}
	if err := h.validateRequest(ctx, q); err != nil {
		return 0, err
	}
	return q.Limit, nil
}
