package handlers

// HandlerBundle aggregates the handler groups so route registration takes a
// single dependency.
type HandlerBundle struct {
	Outreach   *OutreachHandler
	Candidates *CandidateHandler
	Jobs       *JobHandler
}
