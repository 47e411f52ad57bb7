package presenter

// Loop drives periodic UI work on the Tk thread.
//
// It calls Tick on the scan presenter and invokes a scheduler callback that
// re-arms the next tick. The zero value is usable (methods are nil-safe).
type Loop struct {
	Scan     *ScanPresenter
	Schedule func()
}

func NewLoop(scan *ScanPresenter, schedule func()) *Loop {
	return &Loop{Scan: scan, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	if l.Scan != nil {
		l.Scan.Tick()
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
