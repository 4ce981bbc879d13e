package datasets

// EnvironmentalImpact compares a conventional process with its circular
// counterpart for one impact metric.
type EnvironmentalImpact struct {
	Name         string `json:"name"`
	Conventional int    `json:"conventional"`
	Circular     int    `json:"circular"`
}

// CircularityIndicator tracks a circularity KPI against its target.
type CircularityIndicator struct {
	Name   string `json:"name"`
	Value  int    `json:"value"`
	Target int    `json:"target"`
}

// FlowStage describes material retention through one lifecycle stage.
type FlowStage struct {
	Stage    string `json:"stage"`
	Material int    `json:"material"`
	Recycled int    `json:"recycled"`
}

// PieSlice is one share of the material-mix breakdown.
type PieSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}
