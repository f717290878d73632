package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/meatsuits/bountyboard/internal/bounty"
	"github.com/meatsuits/bountyboard/internal/worker"
	"github.com/meatsuits/bountyboard/pkg/cerr"
	"github.com/meatsuits/bountyboard/pkg/clog"
	"github.com/meatsuits/bountyboard/pkg/panicerr"
)

type BountiesListResult struct {
	Bounties []*bounty.Bounty `json:"bounties"`
	Total    int              `json:"total"`
}

type WorkersAvailableResult struct {
	Workers []*worker.Worker `json:"workers"`
	Total   int              `json:"total"`
}

// Dispatcher validates JSON-RPC requests and routes them to the
// repositories. It holds no per-request state.
type Dispatcher struct {
	bounties bounty.Repository
	workers  worker.Repository
}

func NewDispatcher(bounties bounty.Repository, workers worker.Repository) *Dispatcher {
	return &Dispatcher{bounties: bounties, workers: workers}
}

// Handle processes one request body. Every outcome, including panics in a
// method, is returned as an enveloped Reply.
func (d *Dispatcher) Handle(ctx context.Context, body []byte) Reply {
	reply := d.handle(ctx, body)
	code := "ok"
	if reply.Response.Error != nil {
		code = fmt.Sprint(reply.Response.Error.Code)
	}
	clog.AddAttributes(ctx, map[string]any{
		clog.RPCIDAttributeKey:   reply.Response.ID.String(),
		clog.RPCCodeAttributeKey: code,
	})
	return reply
}

func (d *Dispatcher) handle(ctx context.Context, body []byte) Reply {
	trimmed := bytes.TrimSpace(body)
	if !json.Valid(trimmed) {
		return fail(http.StatusBadRequest, CodeParseError, "Parse error: Invalid JSON").reply(nil)
	}
	var envelope map[string]json.RawMessage
	if trimmed[0] != '{' || json.Unmarshal(trimmed, &envelope) != nil {
		return fail(http.StatusBadRequest, CodeInvalidRequest, "Invalid Request: request must be an object").reply(nil)
	}
	id := ID(envelope["id"])

	var version string
	if raw, ok := envelope["jsonrpc"]; !ok || json.Unmarshal(raw, &version) != nil || version != Version {
		return fail(http.StatusBadRequest, CodeInvalidRequest, `Invalid Request: jsonrpc must be "2.0"`).reply(id)
	}

	var name string
	if raw, ok := envelope["method"]; !ok || isNull(raw) || json.Unmarshal(raw, &name) != nil {
		return fail(http.StatusBadRequest, CodeInvalidRequest, "Invalid Request: method must be a string").reply(id)
	}
	clog.AddAttribute(ctx, clog.RPCMethodAttributeKey, name)

	m, ok := lookupMethod(name)
	if !ok {
		return fail(http.StatusNotFound, CodeMethodNotFound, "Method not found: "+name).reply(id)
	}

	params, f := parseParams(m, envelope["params"])
	if f != nil {
		return f.reply(id)
	}

	result, err := panicerr.SafeValue(func() (any, error) {
		return d.invoke(ctx, params)
	})()
	if err != nil {
		return toFailure(ctx, err).reply(id)
	}
	return success(id, result)
}

func (d *Dispatcher) invoke(ctx context.Context, params Params) (any, error) {
	switch p := params.(type) {
	case BountiesListParams:
		bounties, total, err := d.bounties.List(ctx, bounty.Filter{
			Status: bounty.Status(p.Status),
			Limit:  p.Limit,
			Offset: p.Offset,
		})
		if err != nil {
			return nil, err
		}
		return BountiesListResult{Bounties: bounties, Total: total}, nil
	case BountiesGetParams:
		return d.bounties.Get(ctx, p.ID)
	case BountiesCreateParams:
		// The request body is never inspected: the fixture backend rejects
		// every write regardless of shape.
		return nil, d.bounties.Create(ctx, nil)
	case WorkersAvailableParams:
		workers, err := d.workers.ListByStatus(ctx, worker.StatusAvailable, p.Sector)
		if err != nil {
			return nil, err
		}
		return WorkersAvailableResult{Workers: workers, Total: len(workers)}, nil
	}
	return nil, fmt.Errorf("unhandled params type %T", params)
}

// toFailure maps an error from a method onto the JSON-RPC taxonomy. Lookup
// misses and disabled writes keep the internal-error code but carry their
// own transport status.
func toFailure(ctx context.Context, err error) *failure {
	var f *failure
	if errors.As(err, &f) {
		return f
	}
	if v, ok := panicerr.Recovered(err); ok {
		clog.AddError(ctx, err)
		slog.ErrorContext(ctx, "panic in rpc method", clog.ErrorAttributeKey, err)
		return internalFailure(fmt.Sprint(v))
	}

	cErr := cerr.Extract(ctx, err)
	switch cErr.Code {
	case cerr.InvalidArgument:
		return invalidParams(cErr.Msg)
	case cerr.NotFound:
		return fail(http.StatusNotFound, CodeInternalError, cErr.Msg)
	case cerr.Unavailable:
		f := fail(http.StatusServiceUnavailable, CodeInternalError, cErr.Msg)
		f.err.Data = cErr.Data
		return f
	}
	slog.ErrorContext(ctx, "rpc method failed", clog.ErrorAttributeKey, err)
	if cErr.Err != nil {
		return internalFailure(cErr.Err.Error())
	}
	return internalFailure(cErr.Msg)
}

func internalFailure(data string) *failure {
	f := fail(http.StatusInternalServerError, CodeInternalError, "Internal error")
	f.err.Data = data
	return f
}
