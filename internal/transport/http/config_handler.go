package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"boxarr/internal/config"
	apierrors "boxarr/internal/errors"
)

// ConfigHandler exposes the resolved configuration over HTTP: a masked
// export and an explicit reload.
type ConfigHandler struct {
	holder *config.Holder
	logger *slog.Logger
}

// NewConfigHandler creates a new configuration handler.
func NewConfigHandler(holder *config.Holder, logger *slog.Logger) *ConfigHandler {
	return &ConfigHandler{
		holder: holder,
		logger: logger.With(slog.String("handler", "config")),
	}
}

// Routes returns the configuration subrouter.
func (h *ConfigHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Get)
	r.Post("/reload", h.Reload)
	return r
}

// Get handles GET /api/config. The API key is always masked here;
// sensitive export stays an in-process operation.
func (h *ConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.holder.Get()
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to resolve settings",
			slog.String("error", err.Error()))
		render.Render(w, r, apierrors.ConfigValidationFailed(err))
		return
	}
	render.JSON(w, r, settings.ToMap(false))
}

// Reload handles POST /api/config/reload. A failed reload keeps the
// previous settings active and reports the validation error.
func (h *ConfigHandler) Reload(w http.ResponseWriter, r *http.Request) {
	settings, err := h.holder.Reload()
	if err != nil {
		h.logger.ErrorContext(r.Context(), "configuration reload failed",
			slog.String("error", err.Error()))
		render.Render(w, r, apierrors.ConfigValidationFailed(err))
		return
	}

	h.logger.InfoContext(r.Context(), "configuration reloaded",
		slog.String("source", settings.SourceFile()))
	render.JSON(w, r, settings.ToMap(false))
}
