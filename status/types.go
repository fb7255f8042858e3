package status

// Snapshot is a point-in-time result of querying a server's status.
// A nil *Snapshot stands for an offline or unreachable server.
type Snapshot struct {
	MOTD          string
	PlayersOnline int
	PlayersMax    int
	Version       string
	// Favicon is either a data URI carrying an inline base64 image or
	// a plain URL, exactly as reported by the server. Empty when the
	// server reports none.
	Favicon string
}
