package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shouni/canon-forge-kit/pkg/domain"
)

// GenerateCharacterImage はパスのカテゴリーでキャラクターの参照画像を生成します。
func (h *Handler) GenerateCharacterImage(w http.ResponseWriter, r *http.Request) {
	category := categoryParam(r)
	img, err := h.ws.GenerateCharacterImage(r.Context(), category)
	if err != nil {
		h.writeGenerationError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, img)
}

// GenerateSetImage はパスのカテゴリーでセットの参照画像を生成します。
func (h *Handler) GenerateSetImage(w http.ResponseWriter, r *http.Request) {
	category := categoryParam(r)
	img, err := h.ws.GenerateSetImage(r.Context(), category)
	if err != nil {
		h.writeGenerationError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, img)
}

// GenerateComposite は本文の演出指定を反映してから合成画像を生成します。
// 本文が空なら現在の演出指定のまま生成するのだ。
func (h *Handler) GenerateComposite(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength != 0 {
		var cfg domain.CompositeConfig
		if !decodeJSON(w, r, &cfg) {
			return
		}
		h.ws.UpdateComposite(cfg)
	}

	img, err := h.ws.GenerateCompositeImage(r.Context())
	if err != nil {
		h.writeGenerationError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, img)
}

func categoryParam(r *http.Request) domain.Category {
	return domain.Category(strings.ToUpper(chi.URLParam(r, "category")))
}
