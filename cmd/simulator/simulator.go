package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/arktech/arktech-brain/internal/domain"
)

// SimulatorConfig configures the front-end simulator.
type SimulatorConfig struct {
	ServerURL string
	Timeout   time.Duration
}

// Simulator plays the role of the ArkTech voice front-end against the brain.
type Simulator struct {
	config *SimulatorConfig
	client *http.Client
	logger *zap.Logger
}

// Reply is the decoded /ask body as the front-end sees it.
type Reply struct {
	Type   string
	Name   string
	Text   string
	Fields map[string]string
}

func NewSimulator(config *SimulatorConfig, logger *zap.Logger) *Simulator {
	return &Simulator{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
		logger: logger,
	}
}

// CheckHealth calls GET /health and expects {"ok": true}.
func (s *Simulator) CheckHealth(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url("/health"), nil)
	if err != nil {
		return err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}
	defer resp.Body.Close()

	var body struct {
		OK bool `json:"ok"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("decode health: %w", err)
	}
	if resp.StatusCode != http.StatusOK || !body.OK {
		return fmt.Errorf("unhealthy: status %d", resp.StatusCode)
	}
	return nil
}

// Ask posts one utterance to /ask.
func (s *Simulator) Ask(ctx context.Context, text string) (*Reply, error) {
	payload, err := json.Marshal(domain.AskRequest{Text: text})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url("/ask"), bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ask request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read ask response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ask failed: status %d: %s", resp.StatusCode, raw)
	}

	reply, err := parseReply(raw)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Reply received",
		zap.String("type", reply.Type),
		zap.Duration("latency", time.Since(start)),
	)
	return reply, nil
}

func parseReply(raw []byte) (*Reply, error) {
	var m map[string]string
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode ask response: %w", err)
	}

	reply := &Reply{Type: m["type"], Fields: map[string]string{}}
	switch domain.ResponseType(reply.Type) {
	case domain.ResponseSpeech:
		reply.Text = m["text"]
	case domain.ResponseAction:
		reply.Name = m["name"]
		for k, v := range m {
			if k != "type" && k != "name" {
				reply.Fields[k] = v
			}
		}
	default:
		return nil, fmt.Errorf("unknown response type %q", reply.Type)
	}
	return reply, nil
}

// Render formats the reply the way a device would surface it.
func (r *Reply) Render() string {
	if r.Type == string(domain.ResponseSpeech) {
		return "[speak] " + r.Text
	}

	keys := make([]string, 0, len(r.Fields))
	for k := range r.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%q", k, r.Fields[k]))
	}
	return fmt.Sprintf("[action] %s %s", r.Name, strings.Join(parts, " "))
}

func (s *Simulator) url(path string) string {
	return strings.TrimRight(s.config.ServerURL, "/") + path
}
