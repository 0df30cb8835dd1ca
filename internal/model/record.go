package model

import "time"

// ChangeRecord describes one corrective write issued by the lock controller:
// the attribute it rewrote, the value it replaced and the ratio in force.
type ChangeRecord struct {
	Timestamp time.Time
	Scene     string
	Attr      string // attribute the controller rewrote
	From      int
	To        int
	Ratio     float64
}

// Delta returns the signed size of the correction in pixels.
func (r *ChangeRecord) Delta() int {
	return r.To - r.From
}
