package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/manevdusko/fitbody-sub000/internal/notify"
)

type NotificationHandler struct{}

func NewNotificationHandler() *NotificationHandler {
	return &NotificationHandler{}
}

type NotificationsResponse struct {
	Notifications []notify.Notification `json:"notifications"`
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	respondJSON(w, http.StatusOK, NotificationsResponse{Notifications: sess.Notifications.List()})
}

func (h *NotificationHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	sess.Notifications.Dismiss(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// ClearAll suppresses every pending toast, e.g. when the user acts on
// an added-to-cart notification and navigates right away.
func (h *NotificationHandler) ClearAll(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	sess.Notifications.ClearAll()
	w.WriteHeader(http.StatusNoContent)
}
