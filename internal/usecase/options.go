package usecase

// GenerateOptions contains optional parameters for itinerary generation.
type GenerateOptions struct {
	// SkipCache bypasses the result cache for this request
	SkipCache bool

	// TargetBudget overrides the preference budget ceiling for the
	// budget report; nil uses the preference budget
	TargetBudget *float64
}

// DefaultGenerateOptions returns GenerateOptions with sensible defaults.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{}
}
