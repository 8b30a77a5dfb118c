package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-draft-keeper/internal/app"
	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/service"
	"github.com/MKhiriev/go-draft-keeper/models"
)

const (
	// rescueActionField carries the editor's choice for a pending draft.
	rescueActionField = "rescue_action"

	multilineThreshold = 80
)

type fieldView struct {
	Name      string
	Value     string
	Multiline bool
	Changed   bool
}

type editView struct {
	Page   models.Page
	Fields []fieldView
	Info   string

	Pending      bool
	PendingSince string
	Preview      bool

	Saved    bool
	Restored bool
	Changed  []string

	EditURL             string
	PingIntervalSeconds int
	MessageUnsaved      string
	MessageExpired      string
}

type expiredView struct {
	EditURL string
}

func editURL(pageID int64) string {
	return fmt.Sprintf("/pages/%d/edit", pageID)
}

func pageIDFromURL(r *http.Request) (int64, error) {
	return parsePageID(chi.URLParam(r, "id"))
}

func parsePageID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidPageID
	}
	return id, nil
}

// editPage renders the edit form with the identity block, the restore banner
// and the heartbeat configuration.
func (h *Handler) editPage(w http.ResponseWriter, r *http.Request) {
	pageID, err := pageIDFromURL(r)
	if err != nil {
		writeError(w, r, err, "invalid page id")
		return
	}

	scope := h.scope(w, r)
	if !scope.Authenticated {
		redirectToLogin(w, r)
		return
	}

	page, fields, err := h.services.PageService.Edit(r.Context(), scope, pageID)
	if err != nil {
		writeError(w, r, err, "error opening page for edit")
		return
	}

	h.renderEdit(w, r, scope, page, fields, editView{Saved: r.URL.Query().Get("saved") == "1"})
}

// submitPage handles the edit form. Editors save, optionally resolving a
// pending draft; anonymous submissions are staged and always get the same
// "session expired" page.
func (h *Handler) submitPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	pageID, err := pageIDFromURL(r)
	if err != nil {
		writeError(w, r, err, "invalid page id")
		return
	}

	if err = r.ParseForm(); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err), "invalid form")
		return
	}

	fields := formFields(r.PostForm)
	rawInfo := fields[models.InfoKey]
	delete(fields, models.InfoKey)
	action := models.RestoreAction(fields[rescueActionField])
	delete(fields, rescueActionField)

	scope := h.scope(w, r)
	if !scope.Authenticated {
		h.stageDraft(w, r, scope, pageID, fields, rawInfo)
		return
	}

	page, _, err := h.services.PageService.Edit(ctx, scope, pageID)
	if err != nil {
		writeError(w, r, err, "error opening page for edit")
		return
	}

	if action == "" {
		h.saveAndRedirect(w, r, scope, pageID, fields)
		return
	}

	result, err := h.services.RestoreService.Apply(ctx, scope, pageID, action, fields)
	switch {
	case errors.Is(err, service.ErrDraftNotFound):
		h.saveAndRedirect(w, r, scope, pageID, fields)
		return
	case err != nil:
		writeError(w, r, err, "error applying restore action")
		return
	}

	switch action {
	case models.ActionRestore:
		if err = h.services.PageService.Save(ctx, scope, pageID, result.Fields); err != nil {
			writeError(w, r, err, "error saving restored fields")
			return
		}
		h.renderEdit(w, r, scope, page, result.Fields, editView{Restored: true, Changed: result.Changed})
	case models.ActionTest:
		h.renderEdit(w, r, scope, page, result.Fields, editView{Preview: true, Changed: result.Changed})
	default:
		h.saveAndRedirect(w, r, scope, pageID, fields)
	}
}

func (h *Handler) saveAndRedirect(w http.ResponseWriter, r *http.Request, scope service.Scope, pageID int64, fields models.Fields) {
	if err := h.services.PageService.Save(r.Context(), scope, pageID, fields); err != nil {
		writeError(w, r, err, "error saving page fields")
		return
	}

	http.Redirect(w, r, editURL(pageID)+"?saved=1", http.StatusSeeOther)
}

// stageDraft hands an anonymous submission to the draft service. The outcome
// is only visible in the logs.
func (h *Handler) stageDraft(w http.ResponseWriter, r *http.Request, scope service.Scope, pageID int64, fields models.Fields, rawInfo string) {
	log := logger.FromRequest(r)

	var info models.IdentityInfo
	if err := json.Unmarshal([]byte(rawInfo), &info); err != nil {
		log.Debug().Err(err).Int64("page_id", pageID).Msg("anonymous submission without identity block")
	}

	if err := h.services.DraftService.Save(r.Context(), scope, pageID, fields, info); err != nil {
		log.Debug().Err(err).Int64("page_id", pageID).Msg("anonymous submission not staged")
	}

	h.render(w, r, "expired.html", http.StatusOK, expiredView{EditURL: editURL(pageID)})
}

func (h *Handler) renderEdit(w http.ResponseWriter, r *http.Request, scope service.Scope, page models.Page, fields models.Fields, view editView) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := h.services.TrustCookieService.SetUserCookie(ctx, scope, scope.UserID); err != nil {
		log.Err(err).Int64("user_id", scope.UserID).Msg("error setting user trust cookie")
	}

	info := h.services.IdentityService.Info(ctx, scope, page.ID, scope.UserID)
	rawInfo, err := json.Marshal(info)
	if err != nil {
		writeError(w, r, err, "error encoding identity info")
		return
	}

	status, err := h.services.RestoreService.Status(ctx, scope, page.ID)
	if err != nil {
		log.Warn().Err(err).Int64("page_id", page.ID).Msg("pending draft is not usable")
	}

	view.Page = page
	view.Info = string(rawInfo)
	view.Pending = status.State == models.DraftPendingDecision
	if view.Pending {
		view.PendingSince = time.Unix(status.Info.Time, 0).Format("2006-01-02 15:04")
	}
	view.Fields = fieldViews(fields, view.Changed)
	view.EditURL = editURL(page.ID)
	view.PingIntervalSeconds = h.options.PingIntervalSeconds
	view.MessageUnsaved = app.MsgSessionExpiredUnsaved
	view.MessageExpired = app.MsgSessionExpired

	h.render(w, r, "edit.html", http.StatusOK, view)
}

// formFields keeps the first value of every submitted key.
func formFields(form url.Values) models.Fields {
	fields := make(models.Fields, len(form))
	for k, v := range form {
		if len(v) > 0 {
			fields[k] = v[0]
		}
	}
	return fields
}

func fieldViews(fields models.Fields, changed []string) []fieldView {
	changedSet := make(map[string]bool, len(changed))
	for _, name := range changed {
		changedSet[name] = true
	}

	views := make([]fieldView, 0, len(fields))
	for name, value := range fields {
		views = append(views, fieldView{
			Name:      name,
			Value:     value,
			Multiline: strings.Contains(value, "\n") || len(value) > multilineThreshold,
			Changed:   changedSet[name],
		})
	}
	sort.Slice(views, func(i, j int) bool { return views[i].Name < views[j].Name })

	return views
}
