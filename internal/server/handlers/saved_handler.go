package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shouni/canon-forge-kit/pkg/generator"
)

const storageFailureMessage = "保存先への書き込みに失敗しました"

// ListCharacters は保存済みキャラクターを返します。
func (h *Handler) ListCharacters(w http.ResponseWriter, r *http.Request) {
	h.ws.Refresh(r.Context())
	writeJSON(w, http.StatusOK, h.ws.Snapshot().SavedCharacters)
}

// ListSets は保存済みセットを返します。
func (h *Handler) ListSets(w http.ResponseWriter, r *http.Request) {
	h.ws.Refresh(r.Context())
	writeJSON(w, http.StatusOK, h.ws.Snapshot().SavedSets)
}

// SaveCharacter は作業中キャラクターを保存します。同じ ID があれば上書きです。
func (h *Handler) SaveCharacter(w http.ResponseWriter, r *http.Request) {
	if !h.ws.SaveCharacter(r.Context()) {
		writeError(w, http.StatusInsufficientStorage, string(generator.KindStorageFailure), storageFailureMessage)
		return
	}
	writeJSON(w, http.StatusOK, h.ws.Snapshot().SavedCharacters)
}

// SaveSet は作業中セットを保存します。
func (h *Handler) SaveSet(w http.ResponseWriter, r *http.Request) {
	if !h.ws.SaveSet(r.Context()) {
		writeError(w, http.StatusInsufficientStorage, string(generator.KindStorageFailure), storageFailureMessage)
		return
	}
	writeJSON(w, http.StatusOK, h.ws.Snapshot().SavedSets)
}

// SelectCharacter は保存済みキャラクターを作業中に読み込みます。
func (h *Handler) SelectCharacter(w http.ResponseWriter, r *http.Request) {
	p, err := h.ws.SelectCharacter(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, statusFor(err), "", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// SelectSet は保存済みセットを作業中に読み込みます。
func (h *Handler) SelectSet(w http.ResponseWriter, r *http.Request) {
	p, err := h.ws.SelectSet(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, statusFor(err), "", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// DeleteCharacter は保存済みキャラクターを削除します。
func (h *Handler) DeleteCharacter(w http.ResponseWriter, r *http.Request) {
	if !h.ws.DeleteCharacter(r.Context(), chi.URLParam(r, "id")) {
		writeError(w, http.StatusInsufficientStorage, string(generator.KindStorageFailure), storageFailureMessage)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteSet は保存済みセットを削除します。
func (h *Handler) DeleteSet(w http.ResponseWriter, r *http.Request) {
	if !h.ws.DeleteSet(r.Context(), chi.URLParam(r, "id")) {
		writeError(w, http.StatusInsufficientStorage, string(generator.KindStorageFailure), storageFailureMessage)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
