package rpc

type Method string

const (
	MethodBountiesList     Method = "bounties.list"
	MethodBountiesGet      Method = "bounties.get"
	MethodBountiesCreate   Method = "bounties.create"
	MethodWorkersAvailable Method = "workers.available"
)

// Methods lists every supported method in discovery order.
var Methods = []Method{
	MethodBountiesList,
	MethodBountiesGet,
	MethodBountiesCreate,
	MethodWorkersAvailable,
}

func lookupMethod(name string) (Method, bool) {
	for _, m := range Methods {
		if string(m) == name {
			return m, true
		}
	}
	return "", false
}

type MethodDoc struct {
	Description string            `json:"description"`
	Params      map[string]string `json:"params"`
}

// Discovery is the self-description served on GET.
type Discovery struct {
	Name          string               `json:"name"`
	Version       string               `json:"version"`
	Description   string               `json:"description"`
	Methods       []Method             `json:"methods"`
	JSONRPC       string               `json:"jsonrpc"`
	Documentation map[Method]MethodDoc `json:"documentation"`
}

func NewDiscovery() Discovery {
	return Discovery{
		Name:        "bountyboard-mcp",
		Version:     "1.0.0",
		Description: "Bounty board MCP endpoint for AI agent interaction",
		Methods:     Methods,
		JSONRPC:     Version,
		Documentation: map[Method]MethodDoc{
			MethodBountiesList: {
				Description: "List bounties with optional filters",
				Params: map[string]string{
					"status": "optional BountyStatus filter",
					"limit":  "optional number of results (default: all)",
					"offset": "optional offset for pagination (default: 0)",
				},
			},
			MethodBountiesGet: {
				Description: "Get a single bounty by ID",
				Params: map[string]string{
					"id": "required bounty ID string",
				},
			},
			MethodBountiesCreate: {
				Description: "Create a new bounty (requires a persistent backend)",
				Params: map[string]string{
					"title":         "required string",
					"description":   "required string",
					"sector":        "required BountySector",
					"reward_amount": "required number",
					"difficulty":    "required BountyDifficulty",
					"agent_id":      "required string",
				},
			},
			MethodWorkersAvailable: {
				Description: "List available workers with optional sector filter",
				Params: map[string]string{
					"sector": "optional BountySector filter",
				},
			},
		},
	}
}
