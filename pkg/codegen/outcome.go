package codegen

// Outcome is the result of one compilation: Generated or Rejected.
type Outcome interface {
	isOutcome()
}

// Generated carries both artifacts of a successful run. They are produced
// together from one Model, or not at all.
type Generated struct {
	Target      string
	Declaration []byte
	Definition  []byte
}

// Rejected carries the diagnostics of a catalog set that cannot be compiled.
// How they are surfaced is up to the caller; see Target.Poison.
type Rejected struct {
	Diagnostics []string
}

func (Generated) isOutcome() {}
func (Rejected) isOutcome()  {}
