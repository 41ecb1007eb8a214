package game

import "time"

// Driver emits fixed ticks and reports the constant step length.
type Driver struct {
	interval time.Duration
	ticker   *time.Ticker
}

// NewDriver starts a ticker firing every interval.
func NewDriver(interval time.Duration) *Driver {
	return &Driver{interval: interval, ticker: time.NewTicker(interval)}
}

// C delivers one value per tick.
func (d *Driver) C() <-chan time.Time {
	return d.ticker.C
}

// DeltaTime is the fixed step in seconds passed to every Step call.
func (d *Driver) DeltaTime() float64 {
	return d.interval.Seconds()
}

// Stop halts the ticker.
func (d *Driver) Stop() {
	d.ticker.Stop()
}
