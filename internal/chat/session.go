// Package chat implements the simulated live-chat session: a window state
// machine, a persisted message history, scripted delivery receipts and a
// typing delay derived from the canned reply length.
package chat

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/origintiles/storefront/internal/platform/models"
	"github.com/origintiles/storefront/internal/responder"
	"github.com/origintiles/storefront/internal/securestorage"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// WindowState is the chat widget window state.
type WindowState string

// Window states.
const (
	WindowClosed    WindowState = "closed"
	WindowOpen      WindowState = "open"
	WindowMinimized WindowState = "minimized"
)

// Simulated latency schedule. None of these correspond to real network
// acknowledgments.
const (
	welcomeDelay   = 500 * time.Millisecond
	sentDelay      = 300 * time.Millisecond
	deliveredDelay = 800 * time.Millisecond
	readDelay      = 1200 * time.Millisecond

	typingPerChar = 20 * time.Millisecond
	typingMin     = 1500 * time.Millisecond
	typingMax     = 4000 * time.Millisecond
)

const agentName = "Priya"

const welcomeText = "Hi! Welcome to Origin Tiles. I'm Priya from the support team. " +
	"Ask me anything about our tiles, prices, samples or showrooms."

// ErrEmptyMessage is returned when sending a blank message.
var ErrEmptyMessage = errors.New("message text is empty")

// Responder selects the canned reply for a user message.
type Responder interface {
	Reply(text string, ctx responder.Context) responder.Response
}

// Option is custom configuration of Session.
type Option func(s *Session)

// WithScheduler sets Session's custom Scheduler.
func WithScheduler(sched Scheduler) Option {
	return func(s *Session) {
		s.sched = sched
	}
}

// WithNotify sets the callback fired for an agent message arriving while
// the window is minimized or closed (the toast notification).
func WithNotify(notify func(models.ChatMessage)) Option {
	return func(s *Session) {
		s.notify = notify
	}
}

// Session is one visitor's chat. History is loaded once at construction
// and persisted after every mutation; it never expires on its own.
type Session struct {
	storage   *securestorage.Storage
	responder Responder
	logger    *zerolog.Logger
	sched     Scheduler
	notify    func(models.ChatMessage)

	mu       sync.Mutex
	state    WindowState
	messages []models.ChatMessage
	unread   int
	typing   bool
	welcomed bool
	stopped  bool
	stops    []func() bool
}

// NewSession returns a Session with history loaded from storage.
func NewSession(
	storage *securestorage.Storage,
	resp Responder,
	logger *zerolog.Logger,
	ops ...Option,
) *Session {
	session := &Session{
		storage:   storage,
		responder: resp,
		logger:    logger,
		sched:     systemScheduler{},
		state:     WindowClosed,
		messages:  securestorage.GetItem(storage, securestorage.ChatHistoryKey, []models.ChatMessage{}),
	}

	for _, op := range ops {
		op(session)
	}

	return session
}

// Open expands the chat window and clears the unread counter. The first
// open of a session with no history schedules the one-shot welcome
// message; the guard flag keeps it from firing twice.
func (s *Session) Open() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = WindowOpen
	s.unread = 0

	if !s.welcomed && len(s.messages) == 0 {
		s.welcomed = true
		s.schedule(welcomeDelay, func() {
			s.appendAgentMessage(welcomeText)
		})
	}
}

// Minimize collapses the window without closing the session.
func (s *Session) Minimize() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == WindowOpen {
		s.state = WindowMinimized
	}
}

// Close closes the window. Scheduled replies keep running, arriving
// messages count as unread.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = WindowClosed
}

// State returns the current window state.
func (s *Session) State() WindowState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Unread returns the number of agent messages the visitor hasn't seen.
func (s *Session) Unread() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.unread
}

// Typing reports whether the agent typing indicator is showing.
func (s *Session) Typing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.typing
}

// History returns a copy of the message history in order.
func (s *Session) History() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	messages := make([]models.ChatMessage, len(s.messages))
	copy(messages, s.messages)
	return messages
}

// Send appends a user message and schedules its delivery receipts and the
// agent's reply. Returns the appended message.
func (s *Session) Send(text string) (models.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.ChatMessage{}, ErrEmptyMessage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prior := lo.CountBy(s.messages, func(m models.ChatMessage) bool {
		return m.Sender == models.SenderUser
	})

	now := s.sched.Now()
	message := models.ChatMessage{
		ID:        newMessageID(now),
		Text:      text,
		Sender:    models.SenderUser,
		Timestamp: now,
		Status:    models.StatusSending,
	}

	s.messages = append(s.messages, message)
	s.persist()

	// scripted receipt progression, not a network acknowledgment
	s.schedule(sentDelay, func() { s.advanceStatus(message.ID, models.StatusSent) })
	s.schedule(deliveredDelay, func() { s.advanceStatus(message.ID, models.StatusDelivered) })
	s.schedule(readDelay, func() { s.advanceStatus(message.ID, models.StatusRead) })

	reply := s.responder.Reply(text, responder.Context{PriorUserMessages: prior})

	s.typing = true
	s.schedule(typingDuration(reply.Text), func() {
		s.appendAgentMessage(reply.Text)
	})

	s.logger.Debug().Str("topic", reply.Topic).Msg("reply selected")

	return message, nil
}

// ClearHistory deletes the persisted history and empties the session.
// The caller is expected to confirm this with the visitor first.
func (s *Session) ClearHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = []models.ChatMessage{}
	s.unread = 0
	s.storage.RemoveItem(securestorage.ChatHistoryKey)
}

// Shutdown stops every outstanding timer. Callbacks that already fired
// have completed, none will fire afterwards.
func (s *Session) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	for _, stop := range s.stops {
		stop()
	}
	s.stops = nil
}

// schedule is called with the mutex held. The callback re-acquires it.
func (s *Session) schedule(d time.Duration, fn func()) {
	stop := s.sched.AfterFunc(d, func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if s.stopped {
			return
		}
		fn()
	})
	s.stops = append(s.stops, stop)
}

// advanceStatus is called with the mutex held. Statuses only move forward.
func (s *Session) advanceStatus(id string, status models.DeliveryStatus) {
	for ix := range s.messages {
		if s.messages[ix].ID != id {
			continue
		}
		if s.messages[ix].Status.Before(status) {
			s.messages[ix].Status = status
			s.persist()
		}
		return
	}
}

// appendAgentMessage is called with the mutex held.
func (s *Session) appendAgentMessage(text string) {
	s.typing = false

	now := s.sched.Now()
	message := models.ChatMessage{
		ID:        newMessageID(now),
		Text:      text,
		Sender:    models.SenderAgent,
		Timestamp: now,
		AgentName: lo.ToPtr(agentName),
	}

	s.messages = append(s.messages, message)
	s.persist()

	if s.state != WindowOpen {
		s.unread++
		if s.notify != nil {
			s.notify(message)
		}
	}
}

// persist is called with the mutex held.
func (s *Session) persist() {
	s.storage.SetItem(securestorage.ChatHistoryKey, s.messages)
}

// typingDuration derives the typing indicator duration from the reply
// length, clamped to keep short replies believable and long ones snappy.
func typingDuration(reply string) time.Duration {
	d := time.Duration(len(reply)) * typingPerChar
	if d < typingMin {
		return typingMin
	}
	if d > typingMax {
		return typingMax
	}
	return d
}

// newMessageID builds a timestamp-derived id. The uuid suffix keeps ids
// unique when two messages land on the same millisecond.
func newMessageID(now time.Time) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.NewString()[:8])
}
