package usecase

// LedgerRecorder observes ledger writes.
type LedgerRecorder interface {
	LedgerApplied(leagueID string, participants int)
	LedgerReversed(leagueID string, participants int)
}

type nopLedgerRecorder struct{}

func (nopLedgerRecorder) LedgerApplied(string, int)  {}
func (nopLedgerRecorder) LedgerReversed(string, int) {}
