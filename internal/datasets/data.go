package datasets

// Fixed demo tables. Read-only; identical across requests.

var environmentalImpacts = []EnvironmentalImpact{
	{Name: "CO2 Emissions", Conventional: 850, Circular: 320},
	{Name: "Energy Use", Conventional: 1200, Circular: 680},
	{Name: "Water Use", Conventional: 400, Circular: 180},
	{Name: "Waste Gen.", Conventional: 200, Circular: 45},
}

var circularityIndicators = []CircularityIndicator{
	{Name: "Recycled Content", Value: 65, Target: 80},
	{Name: "Resource Efficiency", Value: 72, Target: 85},
	{Name: "Product Life Ext.", Value: 58, Target: 75},
	{Name: "Reuse Potential", Value: 43, Target: 60},
}

var flowStages = []FlowStage{
	{Stage: "Extraction", Material: 100, Recycled: 0},
	{Stage: "Processing", Material: 95, Recycled: 60},
	{Stage: "Manufacturing", Material: 90, Recycled: 85},
	{Stage: "Use", Material: 88, Recycled: 83},
	{Stage: "End-of-Life", Material: 25, Recycled: 75},
}

var pieSlices = []PieSlice{
	{Name: "Recycled", Value: 45, Color: "#10b981"},
	{Name: "Virgin", Value: 35, Color: "#6366f1"},
	{Name: "Recovered", Value: 20, Color: "#f59e0b"},
}

// EnvironmentalImpacts returns the fixed impact comparison table.
func EnvironmentalImpacts() []EnvironmentalImpact {
	return environmentalImpacts
}

// CircularityIndicators returns the fixed KPI table.
func CircularityIndicators() []CircularityIndicator {
	return circularityIndicators
}

// FlowStages returns the fixed material flow table.
func FlowStages() []FlowStage {
	return flowStages
}

// PieSlices returns the fixed material-mix breakdown.
func PieSlices() []PieSlice {
	return pieSlices
}
