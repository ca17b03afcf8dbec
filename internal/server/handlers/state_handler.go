package handlers

import (
	"net/http"

	"github.com/shouni/canon-forge-kit/pkg/domain"
)

// State は編集セッションの状態を返します。
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.ws.Snapshot())
}

// UpdateCharacter は作業中キャラクターを置き換えます。
func (h *Handler) UpdateCharacter(w http.ResponseWriter, r *http.Request) {
	var p domain.CharacterProfile
	if !decodeJSON(w, r, &p) {
		return
	}
	writeJSON(w, http.StatusOK, h.ws.UpdateCharacter(p))
}

// UpdateSet は作業中セットを置き換えます。
func (h *Handler) UpdateSet(w http.ResponseWriter, r *http.Request) {
	var p domain.SetProfile
	if !decodeJSON(w, r, &p) {
		return
	}
	writeJSON(w, http.StatusOK, h.ws.UpdateSet(p))
}

func (h *Handler) RandomizeCharacter(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.ws.RandomizeCharacter())
}

func (h *Handler) RandomizeSet(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.ws.RandomizeSet())
}

func (h *Handler) RandomizeComposite(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.ws.RandomizeComposite())
}

// ClearAuth は再認証が済んだことを通知します。
func (h *Handler) ClearAuth(w http.ResponseWriter, r *http.Request) {
	h.ws.ClearAuthRequired()
	w.WriteHeader(http.StatusNoContent)
}
