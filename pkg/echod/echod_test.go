package echod

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"github.com/steeptui/steep/pkg/prog/progtest"
)

func TestHandler_EchoesMessages(t *testing.T) {
	server := httptest.NewServer(Handler())
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/echo"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial -> error %v", err)
	}
	defer conn.Close()

	for _, text := range []string{"hello", "wörld"} {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(text)); err != nil {
			t.Fatalf("WriteMessage -> error %v", err)
		}
		mt, data, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("ReadMessage -> error %v", err)
		}
		if mt != websocket.TextMessage || string(data) != text {
			t.Errorf("got (%v, %q), want (%v, %q)",
				mt, data, websocket.TextMessage, text)
		}
	}
}

func TestHandler_RejectsPlainGET(t *testing.T) {
	server := httptest.NewServer(Handler())
	defer server.Close()

	resp, err := http.Get(server.URL + "/echo")
	if err != nil {
		t.Fatalf("Get -> error %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %v, want %v", resp.StatusCode, http.StatusBadRequest)
	}
}

func TestProgram_NotSelected(t *testing.T) {
	progtest.Test(t, &Program{},
		progtest.ThatSteep().ExitsWith(2).
			WritesStderrContaining("internal error: no next program"),
	)
}
