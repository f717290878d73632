package rpc

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
)

// Params is the closed set of decoded parameter shapes, one per method.
type Params interface {
	method() Method
}

type BountiesListParams struct {
	Status string // empty means no status filter
	Limit  int    // zero means no limit
	Offset int
}

type BountiesGetParams struct {
	ID string
}

// BountiesCreateParams keeps the raw params; creation is rejected before
// they are ever inspected.
type BountiesCreateParams struct {
	Raw json.RawMessage
}

type WorkersAvailableParams struct {
	Sector string // empty means every sector
}

func (BountiesListParams) method() Method     { return MethodBountiesList }
func (BountiesGetParams) method() Method      { return MethodBountiesGet }
func (BountiesCreateParams) method() Method   { return MethodBountiesCreate }
func (WorkersAvailableParams) method() Method { return MethodWorkersAvailable }

// paramBag is the params object keyed by member name. A member present with
// a JSON null is still present.
type paramBag map[string]json.RawMessage

func decodeBag(raw json.RawMessage) (paramBag, *failure) {
	if len(raw) == 0 || isNull(raw) {
		return paramBag{}, nil
	}
	var bag paramBag
	if bytes.TrimSpace(raw)[0] != '{' || json.Unmarshal(raw, &bag) != nil {
		return nil, invalidParams("params must be an object")
	}
	return bag, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// optionalString returns "" when key is absent. A present member must be a
// JSON string.
func (b paramBag) optionalString(key string) (string, bool) {
	raw, ok := b[key]
	if !ok {
		return "", true
	}
	var s string
	if isNull(raw) || json.Unmarshal(raw, &s) != nil {
		return "", false
	}
	return s, true
}

// optionalCount returns def when key is absent. A present member must be a
// non-negative JSON number; fractions are truncated.
func (b paramBag) optionalCount(key string, def int) (int, bool) {
	raw, ok := b[key]
	if !ok {
		return def, true
	}
	var f float64
	if isNull(raw) || json.Unmarshal(raw, &f) != nil || f < 0 {
		return 0, false
	}
	if f > math.MaxInt32 {
		return math.MaxInt32, true
	}
	return int(f), true
}

func parseParams(m Method, raw json.RawMessage) (Params, *failure) {
	if m == MethodBountiesCreate {
		return BountiesCreateParams{Raw: raw}, nil
	}
	bag, f := decodeBag(raw)
	if f != nil {
		return nil, f
	}
	switch m {
	case MethodBountiesList:
		var p BountiesListParams
		var ok bool
		if p.Status, ok = bag.optionalString("status"); !ok {
			return nil, invalidParams("status must be a string")
		}
		if p.Limit, ok = bag.optionalCount("limit", 0); !ok {
			return nil, invalidParams("limit must be a positive number")
		}
		if p.Offset, ok = bag.optionalCount("offset", 0); !ok {
			return nil, invalidParams("offset must be a positive number")
		}
		return p, nil
	case MethodBountiesGet:
		id, ok := bag.optionalString("id")
		if !ok || id == "" {
			return nil, invalidParams("id is required and must be a string")
		}
		return BountiesGetParams{ID: id}, nil
	case MethodWorkersAvailable:
		sector, ok := bag.optionalString("sector")
		if !ok {
			return nil, invalidParams("sector must be a string")
		}
		return WorkersAvailableParams{Sector: sector}, nil
	}
	return nil, fail(http.StatusInternalServerError, CodeInternalError, "Internal error")
}
