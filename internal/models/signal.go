package models

// TeamSignal carries the optional raw evidence strings for one team. Empty
// strings mean the signal was not supplied; every field degrades to a neutral
// default downstream instead of failing the analysis.
type TeamSignal struct {
	RecentForm string `json:"recent_form,omitempty"`
	Record     string `json:"record,omitempty"`
}

// IsEmpty reports whether no evidence at all was supplied for the team.
func (s TeamSignal) IsEmpty() bool {
	return s.RecentForm == "" && s.Record == ""
}
