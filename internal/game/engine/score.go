package engine

// ScoreReport is the running tally before stage done, and the verdict after.
// NapoleonWin and Reason are meaningful only once Done is set.
type ScoreReport struct {
	Done           bool
	NapoleonPicts  int
	CoalitionPicts int
	TotalPicts     int
	Target         int
	NapoleonWin    bool
	Reason         string
}

// Score totals the picture cards per side. The lieutenant's tally counts
// toward the napoleon only after the reveal; before the game is done the
// report carries no verdict. Taking all 20 picture cards is an automatic
// loss for the napoleon side.
func (e *Engine) Score() ScoreReport {
	side := e.napoleonSide()

	report := ScoreReport{Target: e.Target}
	for _, p := range e.Players {
		n := e.PictCount(p.ID)
		if side[p.ID] {
			report.NapoleonPicts += n
		} else {
			report.CoalitionPicts += n
		}
	}
	report.TotalPicts = report.NapoleonPicts + report.CoalitionPicts

	if e.Stage != StageDone {
		return report
	}
	report.Done = true

	switch {
	case report.NapoleonPicts == 20:
		report.NapoleonWin = false
		report.Reason = "Napoleon side took all 20 pict cards -> LOSE"
	case e.Target > 0 && report.NapoleonPicts >= e.Target:
		report.NapoleonWin = true
		report.Reason = "Napoleon side reached target"
	default:
		report.NapoleonWin = false
		report.Reason = "Target not reached"
	}
	return report
}
