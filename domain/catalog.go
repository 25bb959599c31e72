package domain

// CatalogOptions lists the values a front-end needs to build a
// recommendation request form.
type CatalogOptions struct {
	Categories     []string `json:"categories"`
	Branches       []string `json:"branches"`
	Districts      []string `json:"districts"`
	DefaultWeights Weights  `json:"default_weights"`
}
