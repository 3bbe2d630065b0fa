package services

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ErrCoachOffline signals that no upstream AI service is configured. Callers
// degrade to the static fallback script; registry state is never affected.
var ErrCoachOffline = errors.New("coach service not configured")

const mentorSystemPrompt = "You are an executive pitch mentor for a 10-year-old student. Be encouraging and calm."

// CoachConfig points the service at an OpenAI-compatible media endpoint.
type CoachConfig struct {
	BaseURL     string
	APIKey      string
	SpeechModel string
	ImageModel  string
	MentorModel string
	Voice       string
}

// CoachService is the only integration point with the external AI
// collaborator: narration, visual asset generation, and the live mentor
// relay. It holds no registry state and its failures stay at the call site.
type CoachService struct {
	cfg    CoachConfig
	client HTTPClient
}

func NewCoachService(cfg CoachConfig, client HTTPClient) *CoachService {
	if client == nil {
		client = http.DefaultClient
	}
	if cfg.SpeechModel == "" {
		cfg.SpeechModel = "gpt-4o-mini-tts"
	}
	if cfg.ImageModel == "" {
		cfg.ImageModel = "gpt-image-1"
	}
	if cfg.MentorModel == "" {
		cfg.MentorModel = "gpt-4o-mini-audio-preview"
	}
	if cfg.Voice == "" {
		cfg.Voice = "alloy"
	}
	return &CoachService{cfg: cfg, client: client}
}

// Enabled reports whether an upstream service is configured at all.
func (s *CoachService) Enabled() bool {
	return strings.TrimSpace(s.cfg.BaseURL) != "" && strings.TrimSpace(s.cfg.APIKey) != ""
}

// Narrate synthesizes a spoken briefing for the given text and returns raw
// audio bytes.
func (s *CoachService) Narrate(text string) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, NewInvalidError("text required")
	}
	if !s.Enabled() {
		return nil, ErrCoachOffline
	}
	payload := map[string]any{
		"model": s.cfg.SpeechModel,
		"voice": s.cfg.Voice,
		"input": "Narrate with authority: " + text,
	}
	body, err := s.post("/audio/speech", payload)
	if err != nil {
		return nil, err
	}
	return body, nil
}

// RenderImage generates a visual asset for the given prompt and returns raw
// image bytes.
func (s *CoachService) RenderImage(prompt string) ([]byte, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, NewInvalidError("prompt required")
	}
	if !s.Enabled() {
		return nil, ErrCoachOffline
	}
	payload := map[string]any{
		"model":           s.cfg.ImageModel,
		"prompt":          prompt,
		"response_format": "b64_json",
	}
	body, err := s.post("/images/generations", payload)
	if err != nil {
		return nil, err
	}
	var out struct {
		Data []struct {
			B64JSON string `json:"b64_json"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, NewBadGatewayError(err.Error())
	}
	if len(out.Data) == 0 {
		return nil, NewBadGatewayError("no image data")
	}
	img, err := base64.StdEncoding.DecodeString(out.Data[0].B64JSON)
	if err != nil {
		return nil, NewBadGatewayError("invalid image payload")
	}
	return img, nil
}

// MentorReply sends one utterance of microphone audio upstream and returns
// the mentor's spoken reply. The live session handler relays chunks through
// this; each exchange is independent.
func (s *CoachService) MentorReply(audio []byte) ([]byte, error) {
	if len(audio) == 0 {
		return nil, NewInvalidError("audio required")
	}
	if !s.Enabled() {
		return nil, ErrCoachOffline
	}
	payload := map[string]any{
		"model":  s.cfg.MentorModel,
		"voice":  s.cfg.Voice,
		"system": mentorSystemPrompt,
		"audio":  base64.StdEncoding.EncodeToString(audio),
	}
	body, err := s.post("/audio/mentor", payload)
	if err != nil {
		return nil, err
	}
	var out struct {
		Audio string `json:"audio"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, NewBadGatewayError(err.Error())
	}
	reply, err := base64.StdEncoding.DecodeString(out.Audio)
	if err != nil {
		return nil, NewBadGatewayError("invalid audio payload")
	}
	return reply, nil
}

// FallbackScript is the offline degradation path: a script the portal reads
// out with on-device speech synthesis instead of streamed audio.
func (s *CoachService) FallbackScript(text string) string {
	if strings.TrimSpace(text) == "" {
		return "The AI mentor is offline. Read your briefing aloud, pause between points, and keep your pace calm."
	}
	return text
}

func (s *CoachService) post(path string, payload any) ([]byte, error) {
	pb, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest(http.MethodPost, strings.TrimRight(s.cfg.BaseURL, "/")+path, bytes.NewReader(pb))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, NewBadGatewayError(err.Error())
	}
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewBadGatewayError(err.Error())
	}
	if resp.StatusCode >= 300 {
		return nil, NewBadGatewayError(string(body))
	}
	return body, nil
}
