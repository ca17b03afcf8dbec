package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shouni/canon-forge-kit/internal/server/handlers"
	"github.com/shouni/canon-forge-kit/pkg/domain"
	"github.com/shouni/canon-forge-kit/pkg/generator"
	"github.com/shouni/canon-forge-kit/pkg/workspace"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	ws   *workspace.Workspace
	repo *memoryRepo
	gen  *mockGenerator
	h    http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gen := &mockGenerator{}
	repo := &memoryRepo{}
	ws, err := workspace.New(gen, repo)
	require.NoError(t, err)
	h, err := handlers.NewHandler(ws)
	require.NoError(t, err)
	return &testServer{ws: ws, repo: repo, gen: gen, h: NewRouter(h)}
}

func (s *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	rec := httptest.NewRecorder()
	s.h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

type errorResponse struct {
	Error struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
	} `json:"error"`
}

func TestRouter_State(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/state", "")

	require.Equal(t, http.StatusOK, rec.Code)
	state := decode[workspace.State](t, rec)
	assert.Equal(t, s.ws.Snapshot().Character.ID, state.Character.ID)
	assert.Empty(t, state.CharacterImages)
	assert.False(t, state.Generating)
}

func TestRouter_UpdateCharacter(t *testing.T) {
	s := newTestServer(t)
	before := s.ws.Snapshot().Character

	rec := s.do(t, http.MethodPut, "/api/character", `{"id":"other","name":"Mara","age":"29","seed":1}`)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[domain.CharacterProfile](t, rec)
	assert.Equal(t, "Mara", got.Name)
	assert.Equal(t, before.ID, got.ID)
	assert.Equal(t, before.Seed, got.Seed)

	t.Run("不正な本文は 400", func(t *testing.T) {
		rec := s.do(t, http.MethodPut, "/api/character", `{"name":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRouter_GenerateImages(t *testing.T) {
	t.Run("Success: キャラクター画像が先頭に追加される", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(t, http.MethodPost, "/api/character/images/headshot", "")

		require.Equal(t, http.StatusCreated, rec.Code)
		img := decode[domain.ReferenceImage](t, rec)
		assert.Equal(t, domain.CategoryHeadshot, img.Category)
		assert.Equal(t, "https://img/HEADSHOT", img.URL)
		assert.Len(t, s.ws.Snapshot().CharacterImages, 1)
	})

	t.Run("Success: セット画像", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(t, http.MethodPost, "/api/set/images/WIDE", "")

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Len(t, s.ws.Snapshot().SetImages, 1)
	})

	t.Run("対象に合わないカテゴリーは 400", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(t, http.MethodPost, "/api/character/images/WIDE", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = s.do(t, http.MethodPost, "/api/set/images/unknown", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Success: 合成は本文の演出指定を反映する", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(t, http.MethodPost, "/api/composite", `{"action":"running","extraActors":"","compositionStyle":""}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		img := decode[domain.ReferenceImage](t, rec)
		assert.Equal(t, domain.CategoryComposite, img.Category)
		assert.Equal(t, "running", img.Prompt)
		state := s.ws.Snapshot()
		assert.Equal(t, state.Character.ID, state.Composite.CharacterID)
		assert.Len(t, state.CompositeImages, 1)
	})
}

func TestRouter_GenerationErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   string
	}{
		{"AUTH_REQUIRED は 401", generator.NewError(generator.KindAuthRequired, "no key", nil), http.StatusUnauthorized, "AUTH_REQUIRED"},
		{"SAFETY_BLOCKED は 422", generator.NewError(generator.KindSafetyBlocked, "blocked", nil), http.StatusUnprocessableEntity, "SAFETY_BLOCKED"},
		{"NO_RESULT は 502", generator.NewError(generator.KindNoResult, "empty", nil), http.StatusBadGateway, "NO_RESULT"},
		{"TRANSPORT は 502", generator.NewError(generator.KindTransport, "down", nil), http.StatusBadGateway, "TRANSPORT"},
		{"期限切れの TRANSPORT は 504", generator.NewError(generator.KindTransport, "timed out", context.DeadlineExceeded), http.StatusGatewayTimeout, "TRANSPORT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			s.gen.err = tt.err

			rec := s.do(t, http.MethodPost, "/api/character/images/HEADSHOT", "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decode[errorResponse](t, rec)
			assert.Equal(t, tt.wantKind, body.Error.Kind)

			state := s.ws.Snapshot()
			assert.Empty(t, state.CharacterImages)
			assert.False(t, state.Generating)
			assert.Equal(t, tt.wantKind == "AUTH_REQUIRED", state.AuthRequired)
		})
	}

	t.Run("再認証の通知でフラグが戻る", func(t *testing.T) {
		s := newTestServer(t)
		s.gen.err = generator.ErrAuthRequired
		s.do(t, http.MethodPost, "/api/set/images/WIDE", "")
		require.True(t, s.ws.Snapshot().AuthRequired)

		rec := s.do(t, http.MethodPost, "/api/auth/clear", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.False(t, s.ws.Snapshot().AuthRequired)
	})
}

func TestRouter_SavedCollections(t *testing.T) {
	t.Run("Success: 保存、一覧、選択、削除", func(t *testing.T) {
		s := newTestServer(t)
		s.do(t, http.MethodPut, "/api/character", `{"name":"Ren"}`)
		id := s.ws.Snapshot().Character.ID

		rec := s.do(t, http.MethodPost, "/api/characters", "")
		require.Equal(t, http.StatusOK, rec.Code)
		saved := decode[[]domain.CharacterProfile](t, rec)
		require.Len(t, saved, 1)
		assert.Equal(t, "Ren", saved[0].Name)

		// 作業中を作り直してから保存済みを選ぶ
		s.ws.RandomizeCharacter()
		s.ws.GenerateCharacterImage(context.Background(), domain.CategoryHeadshot)

		rec = s.do(t, http.MethodPost, fmt.Sprintf("/api/characters/%s/select", id), "")
		require.Equal(t, http.StatusOK, rec.Code)
		state := s.ws.Snapshot()
		assert.Equal(t, "Ren", state.Character.Name)
		assert.Empty(t, state.CharacterImages)

		rec = s.do(t, http.MethodGet, "/api/characters", "")
		assert.Len(t, decode[[]domain.CharacterProfile](t, rec), 1)

		rec = s.do(t, http.MethodDelete, "/api/characters/"+id, "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, s.ws.Snapshot().SavedCharacters)
	})

	t.Run("保存失敗は 507", func(t *testing.T) {
		s := newTestServer(t)
		s.repo.fail = true

		rec := s.do(t, http.MethodPost, "/api/sets", "")

		assert.Equal(t, http.StatusInsufficientStorage, rec.Code)
		assert.Equal(t, "STORAGE_FAILURE", decode[errorResponse](t, rec).Error.Kind)
	})

	t.Run("存在しない ID の選択は 404", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(t, http.MethodPost, "/api/sets/missing/select", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
