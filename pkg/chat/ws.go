package chat

import (
	"github.com/gorilla/websocket"
)

// WSConn is a [Conn] over a websocket connection, sending and receiving one
// text message per line.
type WSConn struct {
	ws *websocket.Conn
}

// DialWS connects to the websocket server at url.
func DialWS(url string) (*WSConn, error) {
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, err
	}
	return &WSConn{ws: ws}, nil
}

func (c *WSConn) Send(line string) error {
	return c.ws.WriteMessage(websocket.TextMessage, []byte(line))
}

func (c *WSConn) Recv() (string, error) {
	_, data, err := c.ws.ReadMessage()
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Close closes the underlying connection.
func (c *WSConn) Close() error { return c.ws.Close() }
