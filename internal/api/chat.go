package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/origintiles/storefront/internal/chat"
	"github.com/origintiles/storefront/internal/platform/models"
)

type chatResponse struct {
	State    chat.WindowState     `json:"state"`
	Unread   int                  `json:"unread"`
	Typing   bool                 `json:"typing"`
	Messages []models.ChatMessage `json:"messages"`
}

type sendMessageRequest struct {
	Text string `json:"text"`
}

func (a *API) getChat(w http.ResponseWriter, _ *http.Request) {
	a.respond(w, http.StatusOK, a.chatState())
}

func (a *API) openChat(w http.ResponseWriter, _ *http.Request) {
	a.chat.Open()
	a.respond(w, http.StatusOK, a.chatState())
}

func (a *API) minimizeChat(w http.ResponseWriter, _ *http.Request) {
	a.chat.Minimize()
	a.respond(w, http.StatusOK, a.chatState())
}

func (a *API) closeChat(w http.ResponseWriter, _ *http.Request) {
	a.chat.Close()
	a.respond(w, http.StatusOK, a.chatState())
}

func (a *API) sendChatMessage(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	message, err := a.chat.Send(req.Text)
	if errors.Is(err, chat.ErrEmptyMessage) {
		a.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		a.respondError(w, http.StatusInternalServerError, "can't send message")
		return
	}

	a.respond(w, http.StatusCreated, message)
}

func (a *API) clearChat(w http.ResponseWriter, _ *http.Request) {
	a.chat.ClearHistory()
	a.respond(w, http.StatusNoContent, nil)
}

func (a *API) chatState() chatResponse {
	return chatResponse{
		State:    a.chat.State(),
		Unread:   a.chat.Unread(),
		Typing:   a.chat.Typing(),
		Messages: a.chat.History(),
	}
}
