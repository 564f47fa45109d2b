package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/language"

	"bullion/internal/board"
	"bullion/internal/config"
	"bullion/internal/render"
	"bullion/internal/repository/snapshots"
	"bullion/locales"
)

var matcher = language.NewMatcher(locales.Languages)

// PricesResponse is the body of GET /api/prices and of every websocket message.
type PricesResponse struct {
	Busy    bool                `json:"busy"`
	Regions []board.RegionState `json:"regions"`
	Cards   []render.Card       `json:"cards"`
}

type pageData struct {
	Lang           string
	Dir            string
	Title          string
	RefreshLabel   string
	RefreshSeconds int
	Busy           bool
	Cards          []render.Card
}

func (that *Interaction) handleIndex(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "handleIndex")

	lang := requestLanguage(r)
	snapshot := that.board.Snapshot()

	data := pageData{
		Lang:           lang,
		Dir:            "ltr",
		Title:          that.renderer.Localize(lang, "boardTitle", nil),
		RefreshLabel:   that.renderer.Localize(lang, "refreshButton", nil),
		RefreshSeconds: that.refresh,
		Busy:           snapshot.Busy,
		Cards:          that.renderer.Cards(lang, snapshot),
	}
	if lang == language.Arabic.String() {
		data.Dir = "rtl"
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := that.page.Execute(w, data); err != nil {
		log.Error("failed to render page", "error", err)
	}
}

func (that *Interaction) handleRefresh(w http.ResponseWriter, r *http.Request) {
	// The cycle outlives a client that disconnects mid-refresh.
	if !that.cycle.RunCycle(context.WithoutCancel(r.Context())) {
		http.Error(w, that.renderer.Localize(requestLanguage(r), "busyMessage", nil), http.StatusConflict)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (that *Interaction) handlePrices(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "handlePrices")

	body, err := that.payload(requestLanguage(r), that.board.Snapshot())
	if err != nil {
		log.Error("failed to encode prices", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

func (that *Interaction) handleLatestSnapshot(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "handleLatestSnapshot")

	if that.archive == nil {
		http.Error(w, "archive is disabled", http.StatusNotFound)
		return
	}

	source := chi.URLParam(r, "source")
	snapshot, err := that.archive.Latest(r.Context(), source)
	if errors.Is(err, snapshots.ErrNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		log.Error("failed to read latest snapshot", "source", source, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(snapshot); err != nil {
		log.Error("failed to encode snapshot", "error", err)
	}
}

func (that *Interaction) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (that *Interaction) payload(lang string, snapshot board.Snapshot) ([]byte, error) {
	return json.Marshal(PricesResponse{
		Busy:    snapshot.Busy,
		Regions: snapshot.Regions,
		Cards:   that.renderer.Cards(lang, snapshot),
	})
}

// requestLanguage picks the lang query parameter, then Accept-Language.
func requestLanguage(r *http.Request) string {
	accept := r.Header.Get("Accept-Language")
	if lang := r.URL.Query().Get("lang"); lang != "" {
		accept = lang
	}

	if accept == "" {
		return config.DefaultLanguageCode
	}

	_, index := language.MatchStrings(matcher, accept)
	return locales.Languages[index].String()
}
