package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalEvents      int
	FailedEvents     int
	MaxClock         int64
	KindDistribution map[string]int // event kind → count of applied events
	Retries          int
	Drops            int
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		KindDistribution: make(map[string]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalEvents = len(st.Events)
	for _, e := range st.Events {
		summary.KindDistribution[e.Kind]++
		if e.Err != "" {
			summary.FailedEvents++
		}
		if e.Clock > summary.MaxClock {
			summary.MaxClock = e.Clock
		}
	}

	for _, d := range st.Decisions {
		switch d.Action {
		case "retry":
			summary.Retries++
		case "drop":
			summary.Drops++
		}
	}

	return summary
}
