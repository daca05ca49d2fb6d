// Package echod implements a small websocket echo server. It exists to give
// the chat demo something to talk to without depending on an external
// service: whatever a client sends to /echo comes straight back.
package echod

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/websocket"

	"github.com/steeptui/steep/pkg/logutil"
	"github.com/steeptui/steep/pkg/prog"
)

var logger = logutil.GetLogger("[echod] ")

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Program is the echo server subprogram, selected by -echod.
type Program struct {
	run  bool
	addr string
}

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	fs.BoolVar(&p.run, "echod", false, "Run the websocket echo server")
	fs.StringVar(&p.addr, "addr", "localhost:3379",
		"Address for -echod to listen on")
}

func (p *Program) Run(fds [3]*os.File, _ []string) error {
	if !p.run {
		return prog.ErrNextProgram
	}
	fmt.Fprintf(fds[1], "listening on ws://%v/echo\n", p.addr)
	return http.ListenAndServe(p.addr, Handler())
}

// Handler returns an HTTP handler serving the echo endpoint at /echo. It is
// separate from [Program] so that tests can serve it from [httptest].
func Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/echo", serveEcho)
	return mux
}

func serveEcho(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Printf("upgrade: %v", err)
		return
	}
	defer conn.Close()
	for {
		mt, data, err := conn.ReadMessage()
		if err != nil {
			logger.Printf("read: %v", err)
			return
		}
		if err := conn.WriteMessage(mt, data); err != nil {
			logger.Printf("write: %v", err)
			return
		}
	}
}
