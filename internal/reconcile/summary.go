// Package reconcile holds the outcome bookkeeping shared by the firewall and
// route table reconcilers.
package reconcile

import "fmt"

// Summary counts how many groups or items converged out of those attempted.
type Summary struct {
	Succeeded int
	Total     int
}

// Record adds one attempted item to the summary.
func (s *Summary) Record(ok bool) {
	s.Total++
	if ok {
		s.Succeeded++
	}
}

// AllSucceeded reports whether every attempted item converged. An empty run
// trivially succeeds.
func (s Summary) AllSucceeded() bool {
	return s.Succeeded == s.Total
}

func (s Summary) String() string {
	return fmt.Sprintf("%d/%d", s.Succeeded, s.Total)
}
