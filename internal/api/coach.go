package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/brightpath-labs/brightpath/internal/services"
)

// handleNarrate synthesizes a spoken briefing. When no upstream AI service is
// configured the portal gets a script back instead and reads it out with
// on-device speech synthesis.
func (rt *Router) handleNarrate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	audio, err := rt.coach.Narrate(req.Text)
	if errors.Is(err, services.ErrCoachOffline) {
		writeJSON(w, map[string]any{"fallback": true, "script": rt.coach.FallbackScript(req.Text)})
		return
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "audio/mpeg")
	_, _ = w.Write(audio)
}

func (rt *Router) handleRenderImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Prompt string `json:"prompt"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	img, err := rt.coach.RenderImage(req.Prompt)
	if errors.Is(err, services.ErrCoachOffline) {
		writeJSON(w, map[string]any{"fallback": true, "message": "image generation is offline"})
		return
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(img)
}

// handleLiveCoach relays a pitch rehearsal over a websocket. The client
// streams microphone audio as binary frames and sends the text frame "commit"
// to end an utterance; the mentor's spoken reply comes back as one binary
// frame. Errors and the offline case degrade to a text frame carrying a
// fallback script, never a dropped connection.
func (rt *Router) handleLiveCoach(w http.ResponseWriter, r *http.Request) {
	conn, err := rt.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("coach live: upgrade failed: %v", err)
		return
	}
	defer func() { _ = conn.Close() }()

	var utterance []byte
	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		switch msgType {
		case websocket.BinaryMessage:
			utterance = append(utterance, data...)
		case websocket.TextMessage:
			switch string(data) {
			case "commit":
				rt.relayMentorReply(conn, utterance)
				utterance = nil
			case "bye":
				return
			}
		}
	}
}

func (rt *Router) relayMentorReply(conn *websocket.Conn, utterance []byte) {
	reply, err := rt.coach.MentorReply(utterance)
	if err != nil {
		log.Printf("coach live: mentor reply failed: %v", err)
		msg, _ := json.Marshal(map[string]any{"type": "fallback", "script": rt.coach.FallbackScript("")})
		_ = conn.WriteMessage(websocket.TextMessage, msg)
		return
	}
	_ = conn.WriteMessage(websocket.BinaryMessage, reply)
}
