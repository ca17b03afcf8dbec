package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/shouni/canon-forge-kit/pkg/generator"
	"github.com/shouni/canon-forge-kit/pkg/workspace"
)

const maxBodyBytes = 1 << 20

// errorBody はエラー応答の形です。kind は生成エラーの分類をそのまま載せます。
type errorBody struct {
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("レスポンスの書き込みに失敗しました", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, kind, msg string) {
	writeJSON(w, status, map[string]errorBody{"error": {Kind: kind, Message: msg}})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "", fmt.Sprintf("invalid request body: %v", err))
		return false
	}
	return true
}

// statusFor は生成エラーを HTTP ステータスに対応付けます。
func statusFor(err error) int {
	switch {
	case errors.Is(err, workspace.ErrUnknownCategory):
		return http.StatusBadRequest
	case errors.Is(err, workspace.ErrProfileNotFound):
		return http.StatusNotFound
	case errors.Is(err, workspace.ErrGenerationInProgress):
		return http.StatusConflict
	}

	switch generator.KindOf(err) {
	case generator.KindAuthRequired:
		return http.StatusUnauthorized
	case generator.KindSafetyBlocked:
		return http.StatusUnprocessableEntity
	case generator.KindNoResult:
		return http.StatusBadGateway
	case generator.KindStorageFailure:
		return http.StatusInsufficientStorage
	default:
		if errors.Is(err, context.DeadlineExceeded) {
			return http.StatusGatewayTimeout
		}
		return http.StatusBadGateway
	}
}

func (h *Handler) writeGenerationError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	kind := ""
	var ge *generator.GenerationError
	if errors.As(err, &ge) {
		kind = string(ge.Kind)
	}
	slog.WarnContext(r.Context(), "生成リクエストが失敗しました", "path", r.URL.Path, "status", status, "kind", kind, "error", err)
	writeError(w, status, kind, err.Error())
}
