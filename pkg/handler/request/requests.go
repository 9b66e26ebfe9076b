package request

import "net/url"

// Action is a sidebar button press.
type Action int

const (
	ActionNone Action = iota
	ActionAdd
	ActionReset
)

func (a Action) String() string {
	switch a {
	case ActionAdd:
		return "add"
	case ActionReset:
		return "reset"
	default:
		return ""
	}
}

func ParseAction(action string) Action {
	switch action {
	case "add":
		return ActionAdd
	case "reset":
		return ActionReset
	default:
		return ActionNone
	}
}

// PageRequest is the state submitted by the sidebar form: one gene per
// dropdown, in order, and the button pressed if any.
type PageRequest struct {
	Genes  []string `json:"genes"`
	Action Action   `json:"action"`
}

func ParsePageRequest(query url.Values) PageRequest {
	genes := make([]string, 0, len(query["gene"]))
	for _, g := range query["gene"] {
		if g != "" {
			genes = append(genes, g)
		}
	}
	return PageRequest{
		Genes:  genes,
		Action: ParseAction(query.Get("action")),
	}
}
