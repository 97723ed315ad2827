/*
Package server implements msgpack IPC for suffix tree queries.

The server speaks binary msgpack over stdin/stdout on a request response
model: the client sends one message per operation, the server answers with
a message carrying the same ID. Messages are processed synchronously and
responses for query ops include timing info in microseconds.

# IPC

Index a text first; queries run against the most recent index:

	{"id": "idx_001", "op": "index", "text": "banana"}
	{"id": "idx_001", "status": "ok", "n": 6}

Substring search returns one occurrence offset, or found=false:

	{"id": "req_001", "op": "find", "p": "ana"}
	{"id": "req_001", "off": 1, "found": true, "t": 12}

Repeat queries come in two flavors: "repeat" keeps the historical
offset-zero slicing, "repeat_exact" returns the actual longest repeated
substring:

	{"id": "rep_001", "op": "repeat_exact"}
	{"id": "rep_001", "sub": "ana", "t": 40}

"stats" returns index and cache counters. Any op before the first index,
an unknown op, or oversize input gets an error response with a status code
and a message; the loop itself never dies on bad input. EOF on stdin shuts
the server down cleanly.
*/
package server

// Request is the single incoming message shape; which fields matter
// depends on Op.
type Request struct {
	ID      string `msgpack:"id"`
	Op      string `msgpack:"op"`
	Text    string `msgpack:"text,omitempty"`
	Pattern string `msgpack:"p,omitempty"`
}

// ReadyResponse signals that the server accepts requests.
type ReadyResponse struct {
	Status string `msgpack:"status"`
}

// IndexResponse acknowledges an index op.
type IndexResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
	Length int    `msgpack:"n"`
}

// FindResponse answers a find op.
type FindResponse struct {
	ID        string `msgpack:"id"`
	Offset    int    `msgpack:"off"`
	Found     bool   `msgpack:"found"`
	TimeTaken int64  `msgpack:"t"`
}

// RepeatResponse answers repeat and repeat_exact ops.
type RepeatResponse struct {
	ID        string `msgpack:"id"`
	Substring string `msgpack:"sub"`
	TimeTaken int64  `msgpack:"t"`
}

// StatsResponse answers a stats op.
type StatsResponse struct {
	ID    string         `msgpack:"id"`
	Stats map[string]int `msgpack:"stats"`
}

// ErrorResponse reports a failed op.
type ErrorResponse struct {
	ID     string `msgpack:"id"`
	Error  string `msgpack:"error"`
	Status int    `msgpack:"status"`
}
