package httpx

import (
	"log/slog"
	"net/http"

	"github.com/stackfall/workdesk/internal/domain/party"
	"github.com/stackfall/workdesk/internal/service"
)

// PortalHandlers serves the unauthenticated portal surface: external
// parties verify a passcode or magic link, then hold a soft-session
// cookie scoped to one resource. Routes carry OptionalAuth so staff
// sessions resolve too.
type PortalHandlers struct {
	Access *service.AccessService
	Chat   *service.ChatService
	Logger *slog.Logger
}

// verifyIssueRequest is the body for POST /portal/issues/{slug}/verify.
type verifyIssueRequest struct {
	Passcode string `json:"passcode"`
	Name     string `json:"name"`
}

// verifyRFPRequest is the body for POST /portal/rfps/{slug}/verify.
type verifyRFPRequest struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// VerifyIssue handles POST /portal/issues/{slug}/verify.
func (h *PortalHandlers) VerifyIssue(w http.ResponseWriter, r *http.Request) {
	var req verifyIssueRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	verified, err := h.Access.VerifyIssueAccess(r.Context(), r.PathValue("slug"), req.Passcode, req.Name)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	h.setPortalCookie(w, r, verified)
	WriteJSON(w, http.StatusOK, map[string]any{"status": "verified"})
}

// VerifyRFP handles POST /portal/rfps/{slug}/verify.
func (h *PortalHandlers) VerifyRFP(w http.ResponseWriter, r *http.Request) {
	var req verifyRFPRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	verified, err := h.Access.VerifyRFPAccess(r.Context(), r.PathValue("slug"), req.Token, req.Email, req.Name)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	h.setPortalCookie(w, r, verified)
	WriteJSON(w, http.StatusOK, map[string]any{"status": "verified"})
}

// AuthCheckIssue handles GET /portal/issues/{slug}/auth-check.
func (h *PortalHandlers) AuthCheckIssue(w http.ResponseWriter, r *http.Request) {
	h.authCheck(w, r, party.KindIssue)
}

// AuthCheckRFP handles GET /portal/rfps/{slug}/auth-check.
func (h *PortalHandlers) AuthCheckRFP(w http.ResponseWriter, r *http.Request) {
	h.authCheck(w, r, party.KindRFP)
}

// ChatIssue handles POST /portal/issues/{slug}/chat.
func (h *PortalHandlers) ChatIssue(w http.ResponseWriter, r *http.Request) {
	h.chat(w, r, party.KindIssue)
}

// ChatRFP handles POST /portal/rfps/{slug}/chat.
func (h *PortalHandlers) ChatRFP(w http.ResponseWriter, r *http.Request) {
	h.chat(w, r, party.KindRFP)
}

// authCheck reports whether the requester already holds access to the
// resource behind the slug, without extending or minting anything.
func (h *PortalHandlers) authCheck(w http.ResponseWriter, r *http.Request, kind party.ResourceKind) {
	res, err := h.Access.ResourceBySlug(r.Context(), kind, r.PathValue("slug"))
	if err != nil {
		WriteAppError(w, err)
		return
	}

	viewer := h.resolveViewer(r, res)
	out := map[string]any{
		"authenticated": viewer.Kind != party.ViewerAnonymous,
		"title":         res.Title,
	}
	if viewer.Kind != party.ViewerAnonymous {
		out["display_name"] = viewer.DisplayName
		out["viewer_kind"] = viewer.Kind.String()
	}
	WriteJSON(w, http.StatusOK, out)
}

// chat provisions the resource's channel for the requester and returns the
// client bootstrap payload.
func (h *PortalHandlers) chat(w http.ResponseWriter, r *http.Request, kind party.ResourceKind) {
	res, err := h.Access.ResourceBySlug(r.Context(), kind, r.PathValue("slug"))
	if err != nil {
		WriteAppError(w, err)
		return
	}

	viewer := h.resolveViewer(r, res)
	bootstrap, err := h.Chat.Bootstrap(r.Context(), res, viewer)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, bootstrap)
}

// resolveViewer classifies the requester from the per-resource soft-session
// cookie, falling back to any staff session OptionalAuth placed in context.
func (h *PortalHandlers) resolveViewer(r *http.Request, res *service.PortalResource) party.Viewer {
	var cookieValue string
	if c, err := r.Cookie(res.Kind.CookieName(res.ID)); err == nil {
		cookieValue = c.Value
	}
	staff, _ := GetUserSessionFromContext(r.Context())
	return h.Access.ResolveViewer(r.Context(), res, cookieValue, staff)
}

// setPortalCookie attaches the freshly minted soft-session cookie. Each
// resource gets its own cookie name so visiting a second portal never
// clobbers access to the first.
func (h *PortalHandlers) setPortalCookie(w http.ResponseWriter, r *http.Request, v *service.VerifiedSession) {
	http.SetCookie(w, &http.Cookie{
		Name:     v.CookieName,
		Value:    v.CookieValue,
		Path:     "/",
		MaxAge:   int(v.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
	})
}
