// This file is part of Gopher65.
//
// Gopher65 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher65 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher65.  If not, see <https://www.gnu.org/licenses/>.

// Package limiter paces a loop to a fixed number of iterations per second.
// The debugger uses it to run timeslices of the emulation at a rate that
// gives the requested clock speed.
//
//	lim := limiter.NewLimiter(100)
//	defer lim.Stop()
//
//	for {
//		if err := lim.Wait(ctx); err != nil {
//			return err
//		}
//		runTimeslice()
//	}
//
// The limiter does not try to catch up. If an iteration takes longer than the
// period then the next Wait() returns immediately and the missed periods are
// dropped.
package limiter

import (
	"context"
	"sync"
	"time"
)

// Limiter will trigger every period.
type Limiter struct {
	crit   sync.Mutex
	rate   int
	ticker *time.Ticker
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// A rate of zero or less is treated as a rate of one.
func NewLimiter(rate int) *Limiter {
	lim := &Limiter{}
	lim.ticker = time.NewTicker(period(rate))
	lim.rate = max(rate, 1)
	return lim
}

func period(rate int) time.Duration {
	return time.Second / time.Duration(max(rate, 1))
}

// SetLimit changes the rate at which the Limiter triggers.
func (lim *Limiter) SetLimit(rate int) {
	lim.crit.Lock()
	defer lim.crit.Unlock()
	lim.rate = max(rate, 1)
	lim.ticker.Reset(period(rate))
}

// Rate returns the current number of triggers per second.
func (lim *Limiter) Rate() int {
	lim.crit.Lock()
	defer lim.crit.Unlock()
	return lim.rate
}

// Wait will block until the next trigger or until the context is done, in
// which case the context's error is returned.
func (lim *Limiter) Wait(ctx context.Context) error {
	select {
	case <-lim.ticker.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// HasWaited will return true if the trigger has already happened and false
// if it is still yet to happen. It does not block.
func (lim *Limiter) HasWaited() bool {
	select {
	case <-lim.ticker.C:
		return true
	default:
		return false
	}
}

// Stop the limiter. Wait() will block until the context is done after the
// limiter has been stopped.
func (lim *Limiter) Stop() {
	lim.ticker.Stop()
}
