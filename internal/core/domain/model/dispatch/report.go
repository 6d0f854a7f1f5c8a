package dispatch

// Report is the aggregate outcome of one dispatch cycle, returned to the
// invoker. Processed counts every due user, whether delivered, skipped, or
// failed. Result order across users is not guaranteed.
type Report struct {
	results []DeliveryResult
}

// NewReport builds a report over the given per-user results.
func NewReport(results []DeliveryResult) Report {
	return Report{results: results}
}

// Processed returns the number of due users handled in the cycle.
func (r Report) Processed() int {
	return len(r.results)
}

// Results returns the per-user outcomes.
func (r Report) Results() []DeliveryResult {
	return r.results
}

// CountByStatus returns how many results carry the given status.
func (r Report) CountByStatus(status Status) int {
	count := 0
	for _, res := range r.results {
		if res.Status() == status {
			count++
		}
	}
	return count
}
