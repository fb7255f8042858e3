package status

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const onlinePayload = `{
	"online": true,
	"motd": {"clean": ["Welcome to", "the server"]},
	"players": {"online": 5, "max": 20},
	"version": "1.20.1",
	"icon": "data:image/png;base64,aGVsbG8="
}`

func TestAPIClientFetchOnline(t *testing.T) {
	var requested string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = r.URL.Path
		w.Write([]byte(onlinePayload))
	}))
	defer srv.Close()

	c := NewAPIClient(srv.URL, time.Second)
	snap, err := c.Fetch("mc.example.com:25565")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if snap == nil {
		t.Fatal("expected an online snapshot")
	}
	if requested != "/mc.example.com:25565" {
		t.Errorf("requested path = %q", requested)
	}
	if snap.MOTD != "Welcome to\nthe server" {
		t.Errorf("motd = %q", snap.MOTD)
	}
	if snap.PlayersOnline != 5 || snap.PlayersMax != 20 {
		t.Errorf("players = %d/%d, want 5/20", snap.PlayersOnline, snap.PlayersMax)
	}
	if snap.Version != "1.20.1" {
		t.Errorf("version = %q", snap.Version)
	}
	if snap.Favicon == "" {
		t.Error("favicon should be passed through")
	}
}

func TestAPIClientFetchOffline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"online": false}`))
	}))
	defer srv.Close()

	snap, err := NewAPIClient(srv.URL, time.Second).Fetch("down.example.com")
	if err != nil {
		t.Fatalf("an explicit offline report is not an error: %v", err)
	}
	if snap != nil {
		t.Errorf("snapshot = %+v, want nil for offline", snap)
	}
}

func TestAPIClientFetchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := NewAPIClient(srv.URL, time.Second).Fetch("mc.example.com"); err == nil {
		t.Fatal("expected an error for a failing API")
	}
}

func TestAPIClientFetchMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	if _, err := NewAPIClient(srv.URL, time.Second).Fetch("mc.example.com"); err == nil {
		t.Fatal("expected a decode error")
	}
}

func TestNewSourceSelection(t *testing.T) {
	if _, err := NewSource("", "", time.Second); err != nil {
		t.Errorf("empty kind should default to ping: %v", err)
	}
	if _, err := NewSource("api", "", time.Second); err != nil {
		t.Errorf("api source: %v", err)
	}
	if _, err := NewSource("carrier-pigeon", "", time.Second); err == nil {
		t.Error("unknown kind should be rejected")
	}
}
