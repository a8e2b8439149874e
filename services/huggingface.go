package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const huggingFaceBaseURL = "https://api-inference.huggingface.co/models"

type HuggingFaceGenerator struct {
	client  *http.Client
	token   string
	model   string
	baseURL string
}

func NewHuggingFaceGenerator(token, model string) *HuggingFaceGenerator {
	return &HuggingFaceGenerator{
		client:  &http.Client{Timeout: 30 * time.Second},
		token:   token,
		model:   model,
		baseURL: huggingFaceBaseURL,
	}
}

func (h *HuggingFaceGenerator) WithBaseURL(u string) *HuggingFaceGenerator {
	h.baseURL = u
	return h
}

func (h *HuggingFaceGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if h.token == "" {
		return "", ErrAINotConfigured
	}

	b, err := json.Marshal(map[string]any{
		"inputs": prompt,
		"parameters": map[string]any{
			"max_new_tokens":   512,
			"temperature":      0.2,
			"return_full_text": false,
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/%s", h.baseURL, h.model), bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+h.token)
	req.Header.Set("Content-Type", "application/json")
	// load cold models instead of failing with "loading"
	req.Header.Set("x-wait-for-model", "true")

	resp, err := h.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("hf request error: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read hf response error: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var hfErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBytes, &hfErr) == nil && hfErr.Error != "" {
			return "", fmt.Errorf("hf api error (%d): %s", resp.StatusCode, hfErr.Error)
		}
		return "", fmt.Errorf("hf api error (%d): %s", resp.StatusCode, preview(respBytes))
	}

	var hfOut []struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.Unmarshal(respBytes, &hfOut); err != nil {
		return "", fmt.Errorf("decode hf response error: %v | body: %s", err, preview(respBytes))
	}
	if len(hfOut) == 0 || strings.TrimSpace(hfOut[0].GeneratedText) == "" {
		return "", fmt.Errorf("empty generation from hf")
	}
	return hfOut[0].GeneratedText, nil
}
