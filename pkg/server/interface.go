/*
Package server implements msgpack IPC for the word index.

The server provides a minimal interface over stdin/stdout using binary
msgpack encoding. Clients send one request per message and receive one
response, processed synchronously with timing info included where it
matters.

# IPC

Each request carries an ID, an action and the word or prefix it applies
to:

	{"id": "req_001", "a": "complete", "w": "app", "l": 10}

Completion responses rank suggestions by their position in the
enumeration order:

	{"id": "req_001", "s": [{"w": "apple", "r": 1}, {"w": "apply", "r": 2}], "c": 2, "t": 145}

Supported actions: "complete" (prefix enumeration), "lookup" (exact
membership), "prefix" (prefix existence), "correct" (single-edit spelling
suggestions), "add" (insert a word) and "stats". Correction responses
distinguish an already correct word from a correction list via the "ok"
flag, never via the list contents.

Errors come back with the request ID, a message and a code in the
HTTP-status style.
*/
package server

// Request is the single incoming message shape; Action selects the op.
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"a"`
	Word   string `msgpack:"w,omitempty"`
	Limit  int    `msgpack:"l,omitempty"`
}

// Suggestion - one ranked completion
type Suggestion struct {
	Word string `msgpack:"w"`
	Rank uint16 `msgpack:"r"`
}

// CompleteResponse - response for the "complete" action
type CompleteResponse struct {
	ID          string       `msgpack:"id"`
	Suggestions []Suggestion `msgpack:"s"`
	Count       int          `msgpack:"c"`
	TimeTaken   int64        `msgpack:"t"`
}

// BoolResponse - response for "lookup" and "prefix" actions
type BoolResponse struct {
	ID     string `msgpack:"id"`
	Result bool   `msgpack:"f"`
}

// CorrectResponse - response for the "correct" action. Correct is the
// already-correct signal; Corrections is only populated when it is false.
type CorrectResponse struct {
	ID          string   `msgpack:"id"`
	Correct     bool     `msgpack:"ok"`
	Corrections []string `msgpack:"s,omitempty"`
	Count       int      `msgpack:"c"`
	TimeTaken   int64    `msgpack:"t"`
}

// StatusResponse - readiness signal and "add" acknowledgements
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// StatsResponse - response for the "stats" action
type StatsResponse struct {
	ID    string         `msgpack:"id"`
	Stats map[string]int `msgpack:"st"`
}

// ErrorResponse holds basic error information for failed requests
type ErrorResponse struct {
	ID    string `msgpack:"id,omitempty"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
