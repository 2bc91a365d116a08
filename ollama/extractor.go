// Package ollama provides a BundleExtractor backed by a local Ollama
// text-generation server. The model receives the raw uploaded text with a
// fixed instruction prompt and returns a JSON object matching the content
// bundle shape embedded somewhere in its response.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jilee1212/sitegen"
	"golang.org/x/time/rate"
)

// Defaults for a local Ollama install.
const (
	DefaultBaseURL = "http://localhost:11434"
	DefaultModel   = "llama3.1:8b"

	// DefaultTimeout bounds a single generate call. Local models can be
	// slow on first load, so this is generous but finite.
	DefaultTimeout = 20 * time.Second

	// requestsPerSecond limits generate calls so a large upload batch
	// does not saturate the local server.
	requestsPerSecond = 2
)

// Ensure Extractor implements sitegen.BundleExtractor at compile time.
var _ sitegen.BundleExtractor = (*Extractor)(nil)

// Extractor implements sitegen.BundleExtractor using the Ollama HTTP API.
type Extractor struct {
	BaseURL string
	Model   string
	Timeout time.Duration

	client  *http.Client
	limiter *rate.Limiter
}

// NewExtractor creates an Extractor. Empty baseURL or model select the
// local defaults.
func NewExtractor(baseURL, model string) *Extractor {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	return &Extractor{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		Model:   model,
		Timeout: DefaultTimeout,
		client:  &http.Client{},
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
}

// generateRequest is the Ollama /api/generate request body.
type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// generateResponse is the subset of the Ollama response we consume.
type generateResponse struct {
	Response string `json:"response"`
}

// ClassifyAndExtract sends the texts to the model and maps the embedded
// JSON object in its response onto a content bundle. All failures are
// recoverable: callers fall back to local extraction.
func (e *Extractor) ClassifyAndExtract(ctx context.Context, texts []string) (*sitegen.ContentBundle, error) {
	if len(texts) == 0 {
		return nil, sitegen.Errorf(sitegen.EINVALID, "no texts to analyze")
	}

	if err := e.limiter.Wait(ctx); err != nil {
		return nil, sitegen.Errorf(sitegen.EUNAVAILABLE, "ollama rate limit wait: %v", err)
	}

	timeout := e.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	response, err := e.generate(ctx, BuildPrompt(texts))
	if err != nil {
		return nil, err
	}

	return sitegen.ParseBundleResponse(response)
}

// Ping verifies the Ollama server is reachable.
func (e *Extractor) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.BaseURL+"/api/tags", nil)
	if err != nil {
		return err
	}
	resp, err := e.client.Do(req)
	if err != nil {
		return sitegen.Errorf(sitegen.EUNAVAILABLE, "ollama unreachable: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return sitegen.Errorf(sitegen.EUNAVAILABLE, "ollama returned status %d", resp.StatusCode)
	}
	return nil
}

// generate performs one /api/generate call and returns the response text.
func (e *Extractor) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{Model: e.Model, Prompt: prompt, Stream: false})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.BaseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return "", sitegen.Errorf(sitegen.EUNAVAILABLE, "ollama request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", sitegen.Errorf(sitegen.EUNAVAILABLE, "ollama returned status %d", resp.StatusCode)
	}

	var gen generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gen); err != nil {
		return "", sitegen.Errorf(sitegen.EINTERNAL, "malformed ollama response: %v", err)
	}
	if gen.Response == "" {
		return "", sitegen.Errorf(sitegen.EINTERNAL, "empty model response")
	}
	return gen.Response, nil
}

// BuildPrompt builds the fixed instruction prompt plus the raw texts.
func BuildPrompt(texts []string) string {
	var sb strings.Builder
	sb.WriteString(`당신은 웹사이트 컨텐츠 분석 전문가입니다. 주어진 회사 소개 문서를 분석하여 웹사이트 각 섹션에 배치할 정보를 추출해주세요.

응답 형식 (반드시 유효한 JSON으로):
{
  "company": {"name": "회사명", "industry": "업종", "description": "회사 소개"},
  "hero": {"title": "메인 제목", "subtitle": "부제목", "description": "소개 (200자 이내)"},
  "services": [{"title": "서비스명", "description": "설명", "features": ["주요 기능"]}],
  "teamMembers": [{"name": "이름", "position": "직책", "description": "소개"}],
  "contact": {"phone": "전화번호", "email": "이메일", "address": "주소"},
  "confidence": 0.95
}

분석할 텍스트:`)
	for i, text := range texts {
		fmt.Fprintf(&sb, "\n\n--- 문서 %d ---\n%s", i+1, text)
	}
	return sb.String()
}
