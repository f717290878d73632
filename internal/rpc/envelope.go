// Package rpc implements the JSON-RPC 2.0 endpoint that exposes the bounty
// board: envelope validation, per-method parameter decoding, dispatch to the
// repositories and the mapping of failures onto JSON-RPC error codes and
// HTTP statuses.
package rpc

import (
	"encoding/json"
	"net/http"
)

const Version = "2.0"

type ErrorCode int

const (
	CodeParseError     ErrorCode = -32700
	CodeInvalidRequest ErrorCode = -32600
	CodeMethodNotFound ErrorCode = -32601
	CodeInvalidParams  ErrorCode = -32602
	CodeInternalError  ErrorCode = -32603
)

// ID is the caller's request id, kept as the raw JSON it arrived as so it
// can be echoed unchanged. An empty ID encodes as null.
type ID json.RawMessage

func (id ID) MarshalJSON() ([]byte, error) {
	if len(id) == 0 {
		return []byte("null"), nil
	}
	return id, nil
}

func (id ID) String() string {
	if len(id) == 0 {
		return "null"
	}
	return string(id)
}

type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Data    any       `json:"data,omitempty"`
}

// Response carries exactly one of Result and Error.
type Response struct {
	JSONRPC string `json:"jsonrpc"`
	Result  any    `json:"result,omitempty"`
	Error   *Error `json:"error,omitempty"`
	ID      ID     `json:"id"`
}

// Reply is a response together with the HTTP status it travels with.
type Reply struct {
	Status   int
	Response Response
}

func success(id ID, result any) Reply {
	return Reply{
		Status:   http.StatusOK,
		Response: Response{JSONRPC: Version, Result: result, ID: id},
	}
}

// failure is an error reply before it is bound to a request id.
type failure struct {
	status int
	err    Error
}

func (f *failure) Error() string {
	return f.err.Message
}

func (f *failure) reply(id ID) Reply {
	e := f.err
	return Reply{
		Status:   f.status,
		Response: Response{JSONRPC: Version, Error: &e, ID: id},
	}
}

func fail(status int, code ErrorCode, msg string) *failure {
	return &failure{status: status, err: Error{Code: code, Message: msg}}
}

func invalidParams(msg string) *failure {
	// Parameter errors are application-level: they travel inside a 200.
	return fail(http.StatusOK, CodeInvalidParams, "Invalid params: "+msg)
}
