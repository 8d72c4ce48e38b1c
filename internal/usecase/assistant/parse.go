package assistant

import (
	"encoding/json"
	"strings"

	"github.com/kailas-cloud/shopassist/internal/domain/action"
)

// Fallback replies for malformed model output.
const (
	ReplyUnparsable = "Here are some recommendations for you."
	ReplyEmpty      = "Here are some suggestions for you."
)

type modelReply struct {
	Response             string            `json:"response"`
	NeedsRecommendations bool              `json:"needsRecommendations"`
	Actions              []json.RawMessage `json:"actions"`
}

type rawAction struct {
	Type    action.Type    `json:"type"`
	Payload map[string]any `json:"payload"`
}

// parseReply decodes the model output. It never fails: malformed output maps
// to a recommendation request for q.
func parseReply(raw, q string) Reply {
	var mr modelReply
	if err := json.Unmarshal([]byte(stripFences(raw)), &mr); err != nil {
		return Reply{
			Response:             ReplyUnparsable,
			NeedsRecommendations: true,
			Actions:              []action.Action{action.Recommend(q)},
		}
	}

	reply := Reply{
		Response:             strings.TrimSpace(mr.Response),
		NeedsRecommendations: mr.NeedsRecommendations,
	}
	if reply.Response == "" {
		reply.Response = ReplyEmpty
	}

	for _, ra := range mr.Actions {
		reply.Actions = append(reply.Actions, decodeAction(ra, q))
	}
	if len(reply.Actions) == 0 {
		reply.Actions = []action.Action{action.Recommend(q)}
	}
	return reply
}

func decodeAction(raw json.RawMessage, q string) action.Action {
	var ra rawAction
	if err := json.Unmarshal(raw, &ra); err != nil {
		return action.Recommend(q)
	}
	a, err := action.New(ra.Type, ra.Payload)
	if err != nil {
		return action.Recommend(q)
	}
	return a
}

// stripFences removes a surrounding Markdown code fence, with or without a language tag.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
