package chat

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/steeptui/steep/pkg/store/storedefs"
)

// Conn is a connection to the chat server. The subprogram supplies a
// websocket one from [DialWS]; tests substitute their own.
//
// Send and Recv may block. Recv runs inside a command, on its own
// goroutine, so a blocking Recv never stalls the UI.
type Conn interface {
	// Send sends a line to the server.
	Send(line string) error
	// Recv returns the next line from the server. It returns an error when
	// the connection is closed or broken.
	Recv() (string, error)
}

// RecvMsg carries a line received from the server.
type RecvMsg struct{ Line string }

// RecvErrMsg reports that receiving from the server failed. The connection
// is considered dead afterwards.
type RecvErrMsg struct{ Err error }

// SendErrMsg reports that sending a line to the server failed.
type SendErrMsg struct{ Err error }

// listen returns a command that reads one line from conn. The model re-arms
// it each time a line arrives, and stops re-arming on error.
func listen(conn Conn) tea.Cmd {
	return func() tea.Msg {
		line, err := conn.Recv()
		if err != nil {
			return RecvErrMsg{Err: err}
		}
		return RecvMsg{Line: line}
	}
}

func send(conn Conn, line string) tea.Cmd {
	return func() tea.Msg {
		if err := conn.Send(line); err != nil {
			return SendErrMsg{Err: err}
		}
		return nil
	}
}

// StoredConn is a [Conn] that records every received line in a store. This
// is what gives the chat demo its transcript replay across runs.
type StoredConn struct {
	Conn
	Store storedefs.Store
}

func (c StoredConn) Recv() (string, error) {
	line, err := c.Conn.Recv()
	if err != nil {
		return "", err
	}
	if _, err := c.Store.AddLine(line); err != nil {
		logger.Printf("failed to record a line: %v", err)
	}
	return line, nil
}
