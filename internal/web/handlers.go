package web

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"newsportal.dev/editor-console/internal/config"
	"newsportal.dev/editor-console/internal/gateway"
)

type draftListData struct {
	Drafts []gateway.Draft
}

type draftDetailData struct {
	Draft *gateway.Draft
}

type errorData struct {
	Message string
}

type settingsData struct {
	Config config.Config
}

// RootHandler redirects the bare root to the draft list
func RootHandler(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/drafts", http.StatusFound)
}

// DraftListHandler renders the draft list page. A gateway failure renders
// the error page with 502; there is no retry and no partial rendering.
func DraftListHandler(gw *gateway.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		drafts, err := gw.ListDrafts(ctx)
		if err != nil {
			log.Ctx(ctx).Error().
				Err(err).
				Str("path", r.URL.Path).
				Msg("Failed to fetch draft list")

			renderPage(w, http.StatusBadGateway, "error.html", errorData{
				Message: "Не удалось получить список черновиков от шлюза.",
			})
			return
		}

		log.Ctx(ctx).Info().
			Int("drafts", len(drafts)).
			Msg("Draft list rendered")

		renderPage(w, http.StatusOK, "drafts.html", draftListData{Drafts: drafts})
	}
}

// DraftDetailHandler renders a single draft located by ID over the filtered
// list fetch. A missing or malformed ID is a quiet lookup miss rendered as
// the not-found page, distinct from a gateway error.
func DraftDetailHandler(gw *gateway.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			log.Ctx(ctx).Warn().
				Str("id", mux.Vars(r)["id"]).
				Msg("Malformed draft ID in request")

			renderPage(w, http.StatusNotFound, "notfound.html", nil)
			return
		}

		draft, found, err := gw.FindDraft(ctx, id)
		if err != nil {
			log.Ctx(ctx).Error().
				Err(err).
				Int("draft_id", id).
				Msg("Failed to fetch draft")

			renderPage(w, http.StatusBadGateway, "error.html", errorData{
				Message: "Не удалось получить данные черновика от шлюза.",
			})
			return
		}

		if !found {
			log.Ctx(ctx).Warn().
				Int("draft_id", id).
				Msg("Draft not found in filtered list")

			renderPage(w, http.StatusNotFound, "notfound.html", nil)
			return
		}

		renderPage(w, http.StatusOK, "draft.html", draftDetailData{Draft: draft})
	}
}

// SettingsHandler renders the effective configuration, read-only
func SettingsHandler(cfg config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderPage(w, http.StatusOK, "settings.html", settingsData{Config: cfg})
	}
}

// HealthHandler returns a simple liveness response
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
	})
}
