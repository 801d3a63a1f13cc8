package web

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"newsportal.dev/editor-console/internal/gateway"
	"newsportal.dev/editor-console/internal/metrics"
)

// ApproveHandler marks a draft as approved via the gateway, then sends the
// editor back to the detail page so it re-renders with fresh state. A
// gateway failure is surfaced on the error page instead of redirecting.
func ApproveHandler(gw *gateway.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			metrics.RecordEditorAction("approve", "bad_request")
			renderPage(w, http.StatusNotFound, "notfound.html", nil)
			return
		}

		if err := gw.ApprovePost(ctx, id); err != nil {
			log.Ctx(ctx).Error().
				Err(err).
				Int("draft_id", id).
				Msg("Approve action failed")

			metrics.RecordEditorAction("approve", "gateway_error")

			renderPage(w, http.StatusBadGateway, "error.html", errorData{
				Message: "Не удалось одобрить черновик: шлюз вернул ошибку.",
			})
			return
		}

		log.Ctx(ctx).Info().
			Int("draft_id", id).
			Msg("Draft approved")

		metrics.RecordEditorAction("approve", "success")

		http.Redirect(w, r, "/drafts/"+strconv.Itoa(id), http.StatusSeeOther)
	}
}

// PublishHandler publishes an approved draft to the fixed channel set, then
// sends the editor back to the list page.
func PublishHandler(gw *gateway.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			metrics.RecordEditorAction("publish", "bad_request")
			renderPage(w, http.StatusNotFound, "notfound.html", nil)
			return
		}

		if err := gw.PublishPost(ctx, id); err != nil {
			log.Ctx(ctx).Error().
				Err(err).
				Int("draft_id", id).
				Msg("Publish action failed")

			metrics.RecordEditorAction("publish", "gateway_error")

			renderPage(w, http.StatusBadGateway, "error.html", errorData{
				Message: "Не удалось опубликовать черновик: шлюз вернул ошибку.",
			})
			return
		}

		log.Ctx(ctx).Info().
			Int("draft_id", id).
			Strs("channels", gateway.PublishChannels).
			Msg("Draft published")

		metrics.RecordEditorAction("publish", "success")

		http.Redirect(w, r, "/drafts", http.StatusSeeOther)
	}
}
