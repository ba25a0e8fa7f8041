package services

import "log"

// Effect is a single best-effort side effect of a primary write (notification
// row, activity entry, status history append, email). Effects never influence
// the primary result: a failure is logged and swallowed, and later effects
// still run.
type Effect struct {
	Name string
	Run  func() error
}

// RunEffects executes each effect in order, capturing failures.
func RunEffects(effects ...Effect) {
	for _, effect := range effects {
		if effect.Run == nil {
			continue
		}
		if err := effect.Run(); err != nil {
			log.Printf("side effect %q failed: %v", effect.Name, err)
		}
	}
}
