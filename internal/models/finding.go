package models

// Recommendation is a remediation proposal for a recorded non-conformity
type Recommendation struct {
	How      string `json:"how"`
	WithWhat string `json:"withWhat"`
	Deadline string `json:"deadline"`
	Action   string `json:"action"`
}

// Remediation actions the recommendation service may choose from
var RecommendationActions = []string{
	"Reparație imediată",
	"Înlocuire piesă",
	"Curățare",
	"Gresare",
	"Oprire echipament până la remediere",
	"Monitorizare atentă",
}

// NonConformity is a defect recorded against a piece of equipment during inspection
type NonConformity struct {
	ID             string          `json:"id"`
	Type           string          `json:"type"`
	Notes          string          `json:"notes"`
	Photo          string          `json:"photo,omitempty"`
	Recommendation *Recommendation `json:"recommendation,omitempty"`
	DiscoveryDate  string          `json:"discoveryDate,omitempty"`
}

// Clone returns a copy that does not share the recommendation pointer
func (nc NonConformity) Clone() NonConformity {
	out := nc
	if nc.Recommendation != nil {
		r := *nc.Recommendation
		out.Recommendation = &r
	}
	return out
}
