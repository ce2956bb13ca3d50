package views

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Notification lifetimes
const (
	SuccessTimeout = 3 * time.Second
	ErrorTimeout   = 4 * time.Second
)

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool

	// messageSeq identifies the current message so stale dismiss ticks are ignored
	messageSeq int
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message and returns a command that clears it after its timeout
func (s *ViewState) SetMessage(msg string, isErr bool) tea.Cmd {
	s.Message = msg
	s.MessageErr = isErr
	s.messageSeq++

	seq := s.messageSeq
	timeout := SuccessTimeout
	if isErr {
		timeout = ErrorTimeout
	}
	return tea.Tick(timeout, func(time.Time) tea.Msg {
		return dismissMsg{seq: seq}
	})
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// dismiss clears the message if msg belongs to it
func (s *ViewState) dismiss(msg dismissMsg) {
	if msg.seq == s.messageSeq {
		s.ClearMessage()
	}
}

type dismissMsg struct {
	seq int
}

// Messages for view switching
type SwitchToHelpMsg struct{}

type SwitchToPanelMsg struct{}
