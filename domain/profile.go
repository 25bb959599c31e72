package domain

// StudentProfile is the per-request input to the recommendation engine.
// Built from the request body, discarded after the response.
type StudentProfile struct {
	Name              string   `json:"name,omitempty"`
	Cutoff            float64  `json:"cutoff"`
	Category          Category `json:"category"`
	PreferredBranches []string `json:"preferred_branches"`
	District          string   `json:"district"`
	Budget            float64  `json:"budget"`
	RuralOrFirstGen   bool     `json:"rural_or_first_gen"`
	NeedHostel        bool     `json:"need_hostel"`
}
