package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/mentoraqua/guardianes-api/internal/dto"
	"github.com/mentoraqua/guardianes-api/pkg/config"
	appErrors "github.com/mentoraqua/guardianes-api/pkg/errors"
)

// FeedbackService proxies student answers to the generative-language API
// and parses the mentor verdict. Failures here are recoverable and never
// touch progress records.
type FeedbackService struct {
	cfg      config.FeedbackConfig
	client   *http.Client
	validate *validator.Validate
	logger   *zap.Logger
}

// NewFeedbackService constructs a FeedbackService.
func NewFeedbackService(cfg config.FeedbackConfig, validate *validator.Validate, logger *zap.Logger) *FeedbackService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FeedbackService{
		cfg:      cfg,
		client:   &http.Client{Timeout: cfg.Timeout},
		validate: validate,
		logger:   logger,
	}
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// RequestFeedback evaluates one answer. The reply's first line carries the
// APROBADO/RECHAZADO verdict; the remaining lines become suggestions.
func (s *FeedbackService) RequestFeedback(ctx context.Context, req dto.FeedbackRequest) (*dto.FeedbackResult, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid feedback request")
	}
	if !s.cfg.Enabled || s.cfg.APIKey == "" {
		return nil, appErrors.Clone(appErrors.ErrFeedbackUnavailable, "mentor feedback is disabled")
	}

	payload := generateContentRequest{Contents: []content{{Parts: []part{{Text: s.buildPrompt(req)}}}}}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "encode feedback request")
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", strings.TrimRight(s.cfg.Endpoint, "/"), s.cfg.Model, s.cfg.APIKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "build feedback request")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		s.logger.Warn("feedback endpoint unreachable", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrFeedbackUnavailable.Code, appErrors.ErrFeedbackUnavailable.Status, appErrors.ErrFeedbackUnavailable.Message)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("feedback endpoint error", zap.Int("status", resp.StatusCode))
		return nil, appErrors.Clone(appErrors.ErrFeedbackUnavailable, fmt.Sprintf("mentor feedback returned status %d", resp.StatusCode))
	}

	var decoded generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrFeedbackUnavailable.Code, appErrors.ErrFeedbackUnavailable.Status, "decode mentor reply")
	}
	text := extractText(decoded)
	if text == "" {
		return nil, appErrors.Clone(appErrors.ErrFeedbackUnavailable, "mentor reply was empty")
	}
	return parseVerdict(text), nil
}

func (s *FeedbackService) buildPrompt(req dto.FeedbackRequest) string {
	var b strings.Builder
	b.WriteString("Eres un mentor amable de un proyecto escolar sobre el cuidado del agua. ")
	b.WriteString("Evalua la respuesta del equipo y responde en espanol. ")
	b.WriteString("La primera linea debe ser exactamente APROBADO o RECHAZADO, seguida de sugerencias breves, una por linea.\n\n")
	if req.Prompt != "" {
		b.WriteString("Criterio: " + req.Prompt + "\n")
	}
	if req.ModuleTitle != "" {
		b.WriteString("Mision: " + req.ModuleTitle + "\n")
	}
	b.WriteString("Campo: " + req.FieldLabel + "\n")
	b.WriteString("Respuesta del equipo: " + req.StudentText + "\n")
	return b.String()
}

func extractText(resp generateContentResponse) string {
	for _, candidate := range resp.Candidates {
		for _, p := range candidate.Content.Parts {
			if strings.TrimSpace(p.Text) != "" {
				return p.Text
			}
		}
	}
	return ""
}

// parseVerdict splits the raw reply into the verdict line and suggestions.
// An unrecognized first line is treated as not approved with the whole text
// kept as the summary.
func parseVerdict(text string) *dto.FeedbackResult {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	first := strings.ToUpper(strings.TrimSpace(lines[0]))

	result := &dto.FeedbackResult{Summary: strings.TrimSpace(lines[0])}
	switch {
	case strings.HasPrefix(first, "APROBADO"):
		result.Approved = true
	case strings.HasPrefix(first, "RECHAZADO"):
		result.Approved = false
	default:
		return &dto.FeedbackResult{Approved: false, Summary: strings.TrimSpace(text)}
	}

	for _, line := range lines[1:] {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-*• "))
		if line != "" {
			result.Suggestions = append(result.Suggestions, line)
		}
	}
	return result
}
