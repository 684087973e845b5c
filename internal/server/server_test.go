package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/text/language"

	"github.com/agenthands/kamsam/internal/core"
	"github.com/agenthands/kamsam/internal/core/model"
	"github.com/agenthands/kamsam/internal/core/segment"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	goleak.VerifyTestMain(m)
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	seg, err := segment.New(language.Thai)
	require.NoError(t, err)
	return NewServer(core.NewGame(seg), nil).SetupRouter()
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func submit(t *testing.T, r http.Handler, word string) model.SubmitResult {
	t.Helper()
	w := do(t, r, http.MethodPost, "/words", SubmitRequest{Word: word})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode[model.SubmitResult](t, w)
}

func TestSubmitWord_ExactScenario(t *testing.T) {
	r := newTestRouter(t)

	for _, word := range []string{"apple", "banana", "cherry"} {
		res := submit(t, r, word)
		assert.Equal(t, model.OutcomeAccepted, res.Outcome)
	}
	res := submit(t, r, "apple")
	assert.Equal(t, model.OutcomeDuplicate, res.Outcome)
	assert.Equal(t, []int{1}, res.Positions)

	w := do(t, r, http.MethodPost, "/round/close", nil)
	require.Equal(t, http.StatusOK, w.Code)
	rec := decode[model.HistoryRecord](t, w)
	require.Len(t, rec.Entries, 4)
	assert.True(t, rec.Entries[0].Highlighted)
	assert.True(t, rec.Entries[3].Highlighted)
	assert.Equal(t, rec.Entries[0].Color, rec.Entries[3].Color)

	w = do(t, r, http.MethodGet, "/history", nil)
	require.Equal(t, http.StatusOK, w.Code)
	hist := decode[struct {
		Records []model.HistoryRecord `json:"records"`
	}](t, w)
	require.Len(t, hist.Records, 1)
	assert.Equal(t, rec.ID, hist.Records[0].ID)

	w = do(t, r, http.MethodGet, "/round", nil)
	round := decode[struct {
		Entries []model.Entry `json:"entries"`
	}](t, w)
	assert.Empty(t, round.Entries)
}

func TestSetPolicy_PartialThai(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPut, "/policy", PolicyRequest{Policy: "partial"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.PolicyPartial, decode[model.Snapshot](t, w).Policy)

	submit(t, r, "การเรียน")
	res := submit(t, r, "เรียนหนังสือ")
	assert.Equal(t, model.OutcomeDuplicate, res.Outcome)
	assert.Equal(t, []int{1}, res.Positions)
}

func TestRemoveLast(t *testing.T) {
	r := newTestRouter(t)
	submit(t, r, "apple")
	submit(t, r, "apple")

	w := do(t, r, http.MethodGet, "/state", nil)
	state := decode[model.Snapshot](t, w)
	assert.Equal(t, model.StatePendingResolution, state.State)
	require.NotNil(t, state.Pending)
	assert.Equal(t, "apple", state.Pending.Word)

	w = do(t, r, http.MethodPost, "/round/remove-last", nil)
	require.Equal(t, http.StatusOK, w.Code)
	state = decode[model.Snapshot](t, w)
	assert.Equal(t, model.StateIdle, state.State)
	assert.Len(t, state.Round, 1)
	assert.Nil(t, state.Pending)
}

func TestErrors(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		want   int
	}{
		{"empty word", http.MethodPost, "/words", SubmitRequest{Word: "   "}, http.StatusBadRequest},
		{"remove while idle", http.MethodPost, "/round/remove-last", nil, http.StatusConflict},
		{"close while idle", http.MethodPost, "/round/close", nil, http.StatusConflict},
		{"unknown policy", http.MethodPut, "/policy", PolicyRequest{Policy: "fuzzy"}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.want, w.Code)
			assert.Contains(t, w.Body.String(), "error")
		})
	}

	req := httptest.NewRequest(http.MethodPost, "/words", bytes.NewBufferString("{oops"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLockedWhilePending(t *testing.T) {
	r := newTestRouter(t)
	submit(t, r, "apple")
	submit(t, r, "apple")

	w := do(t, r, http.MethodPost, "/words", SubmitRequest{Word: "banana"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, r, http.MethodPut, "/policy", PolicyRequest{Policy: "partial"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHistoryBoundedOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	for i := 0; i < 21; i++ {
		word := fmt.Sprintf("w%d", i)
		submit(t, r, word)
		submit(t, r, word)
		w := do(t, r, http.MethodPost, "/round/close", nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := do(t, r, http.MethodGet, "/state", nil)
	state := decode[model.Snapshot](t, w)
	require.Len(t, state.History, 20)
	assert.Equal(t, "w20", state.History[0].Entries[0].Text)
}
