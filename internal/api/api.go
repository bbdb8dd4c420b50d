// Package api exposes the session operations as a JSON HTTP surface.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/skillswap-app/skillswap/internal/session"
	"github.com/skillswap-app/skillswap/internal/skills"
)

const maxBodySize = 1 << 20 // 1MB

type skillRequest struct {
	Name string `json:"name"`
}

type bioRequest struct {
	Bio string `json:"bio"`
}

type messageRequest struct {
	Text string `json:"text"`
}

type conversationResponse struct {
	Match    *skills.UserProfile `json:"match"`
	Messages []*skills.Message   `json:"messages"`
}

// NewHandler mounts the session operations under /api/v1.
func NewHandler(sess *session.Session, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(requestLogger(logger))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/profile", handleGetProfile(sess))
		r.Put("/profile/bio", handleSetBio(sess))
		r.Post("/profile/offered", handleAddOffered(sess))
		r.Delete("/profile/offered/{id}", handleRemoveOffered(sess))
		r.Post("/profile/wanted", handleAddWanted(sess))
		r.Delete("/profile/wanted/{name}", handleRemoveWanted(sess))

		r.Get("/users", handleListUsers(sess))

		r.Get("/matches", handleGetMatches(sess))

		r.Post("/chats/{userID}", handleOpenChat(sess))
		r.Get("/chats/{userID}", handleGetChat(sess))
		r.Post("/chats/{userID}/messages", handleSendMessage(sess))
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger.Debug("api request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
			)
			next.ServeHTTP(w, r)
		})
	}
}

func handleGetProfile(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, sess.Profile())
	}
}

func handleSetBio(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req bioRequest
		if !decodeBody(w, r, &req) {
			return
		}

		profile := sess.UpdateProfile(func(p skills.UserProfile) skills.UserProfile {
			return skills.SetBio(p, req.Bio)
		})
		writeJSON(w, http.StatusOK, profile)
	}
}

func handleAddOffered(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req skillRequest
		if !decodeBody(w, r, &req) {
			return
		}

		profile := sess.UpdateProfile(func(p skills.UserProfile) skills.UserProfile {
			return skills.AddOffered(p, req.Name)
		})
		writeJSON(w, http.StatusOK, profile)
	}
}

func handleRemoveOffered(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID := chi.URLParam(r, "id")

		profile := sess.UpdateProfile(func(p skills.UserProfile) skills.UserProfile {
			return skills.RemoveOffered(p, skillID)
		})
		writeJSON(w, http.StatusOK, profile)
	}
}

func handleAddWanted(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req skillRequest
		if !decodeBody(w, r, &req) {
			return
		}

		profile := sess.UpdateProfile(func(p skills.UserProfile) skills.UserProfile {
			return skills.AddWanted(p, req.Name)
		})
		writeJSON(w, http.StatusOK, profile)
	}
}

func handleRemoveWanted(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		if decoded, err := url.PathUnescape(name); err == nil {
			name = decoded
		}

		profile := sess.UpdateProfile(func(p skills.UserProfile) skills.UserProfile {
			return skills.RemoveWanted(p, name)
		})
		writeJSON(w, http.StatusOK, profile)
	}
}

func handleListUsers(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, sess.Directory().Items)
	}
}

// handleGetMatches runs a fresh ranking query on every request; there is no
// caching. A profile with nothing offered and nothing wanted short-circuits
// to an empty list without calling the ranking service.
func handleGetMatches(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !sess.HasMatchBasis() {
			writeJSON(w, http.StatusOK, []skills.MatchResult{})
			return
		}

		matches := sess.RefreshMatches(r.Context())
		if matches == nil {
			matches = []skills.MatchResult{}
		}
		writeJSON(w, http.StatusOK, matches)
	}
}

func handleOpenChat(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conv, err := sess.OpenConversation(chi.URLParam(r, "userID"))
		if err != nil {
			httpError(w, http.StatusNotFound, "%v", err)
			return
		}

		writeJSON(w, http.StatusCreated, conversationResponse{
			Match:    conv.Match(),
			Messages: conv.History(),
		})
	}
}

func handleGetChat(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conv := sess.Conversation(chi.URLParam(r, "userID"))
		if conv == nil {
			httpError(w, http.StatusNotFound, "conversation is not open")
			return
		}

		writeJSON(w, http.StatusOK, conversationResponse{
			Match:    conv.Match(),
			Messages: conv.History(),
		})
	}
}

func handleSendMessage(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conv := sess.Conversation(chi.URLParam(r, "userID"))
		if conv == nil {
			httpError(w, http.StatusNotFound, "conversation is not open")
			return
		}

		var req messageRequest
		if !decodeBody(w, r, &req) {
			return
		}

		reply := conv.Send(r.Context(), req.Text)
		if reply == nil {
			httpError(w, http.StatusBadRequest, "message text is required")
			return
		}

		writeJSON(w, http.StatusOK, reply)
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, target any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		httpError(w, http.StatusBadRequest, "invalid request body: %v", err)
		return false
	}

	return true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func httpError(w http.ResponseWriter, status int, format string, args ...any) {
	writeJSON(w, status, map[string]string{
		"error": fmt.Sprintf(format, args...),
	})
}
