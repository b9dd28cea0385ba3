package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentoraqua/guardianes-api/internal/dto"
	"github.com/mentoraqua/guardianes-api/pkg/config"
	appErrors "github.com/mentoraqua/guardianes-api/pkg/errors"
)

func feedbackTestServer(t *testing.T, status int, reply string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, ":generateContent")
		assert.NotEmpty(t, r.URL.Query().Get("key"))

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))

		w.WriteHeader(status)
		if status == http.StatusOK {
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"candidates": []map[string]interface{}{
					{"content": map[string]interface{}{"parts": []map[string]string{{"text": reply}}}},
				},
			})
		}
	}))
}

func feedbackCfg(endpoint string) config.FeedbackConfig {
	return config.FeedbackConfig{
		Enabled:  true,
		Endpoint: endpoint,
		APIKey:   "test-key",
		Model:    "gemini-pro",
		Timeout:  2 * time.Second,
	}
}

func validFeedbackRequest() dto.FeedbackRequest {
	return dto.FeedbackRequest{
		FieldLabel:  "Pregunta de investigacion 1:",
		StudentText: "Cuantos litros de agua se estancan en la calle despues de llover?",
		Task:        "researchQuestion",
	}
}

func TestFeedbackServiceApprovedVerdict(t *testing.T) {
	server := feedbackTestServer(t, http.StatusOK, "APROBADO\n- Muy buena pregunta medible.\n- Definan el area exacta.")
	defer server.Close()
	svc := NewFeedbackService(feedbackCfg(server.URL), nil, nil)

	result, err := svc.RequestFeedback(context.Background(), validFeedbackRequest())
	require.NoError(t, err)
	assert.True(t, result.Approved)
	assert.Equal(t, "APROBADO", result.Summary)
	assert.Equal(t, []string{"Muy buena pregunta medible.", "Definan el area exacta."}, result.Suggestions)
}

func TestFeedbackServiceRejectedVerdict(t *testing.T) {
	server := feedbackTestServer(t, http.StatusOK, "RECHAZADO\nLa pregunta no se puede medir.")
	defer server.Close()
	svc := NewFeedbackService(feedbackCfg(server.URL), nil, nil)

	result, err := svc.RequestFeedback(context.Background(), validFeedbackRequest())
	require.NoError(t, err)
	assert.False(t, result.Approved)
	assert.Equal(t, []string{"La pregunta no se puede medir."}, result.Suggestions)
}

func TestFeedbackServiceUpstreamErrorIsRecoverable(t *testing.T) {
	server := feedbackTestServer(t, http.StatusTooManyRequests, "")
	defer server.Close()
	svc := NewFeedbackService(feedbackCfg(server.URL), nil, nil)

	_, err := svc.RequestFeedback(context.Background(), validFeedbackRequest())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrFeedbackUnavailable.Code, appErrors.FromError(err).Code)
}

func TestFeedbackServiceDisabled(t *testing.T) {
	cfg := feedbackCfg("http://localhost:0")
	cfg.Enabled = false
	svc := NewFeedbackService(cfg, nil, nil)

	_, err := svc.RequestFeedback(context.Background(), validFeedbackRequest())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrFeedbackUnavailable.Code, appErrors.FromError(err).Code)
}

func TestFeedbackServiceValidatesInput(t *testing.T) {
	svc := NewFeedbackService(feedbackCfg("http://localhost:0"), nil, nil)

	_, err := svc.RequestFeedback(context.Background(), dto.FeedbackRequest{FieldLabel: "x", StudentText: "corto"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestParseVerdictUnrecognizedFirstLine(t *testing.T) {
	result := parseVerdict("Hola equipo, revisen su pregunta.")
	assert.False(t, result.Approved)
	assert.Equal(t, "Hola equipo, revisen su pregunta.", result.Summary)
	assert.Empty(t, result.Suggestions)
}
