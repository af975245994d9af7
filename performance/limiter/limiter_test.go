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

package limiter_test

import (
	"context"
	"testing"
	"time"

	"github.com/jetsetilly/gopher65/performance/limiter"
	"github.com/jetsetilly/gopher65/test"
)

func TestLimiter(t *testing.T) {
	lim := limiter.NewLimiter(100)
	defer lim.Stop()
	test.ExpectEquality(t, lim.Rate(), 100)

	start := time.Now()
	for i := 0; i < 10; i++ {
		test.ExpectSuccess(t, lim.Wait(context.Background()))
	}

	// ten periods of 10ms. the upper bound is generous to allow for slow
	// test machines
	elapsed := time.Since(start)
	test.ExpectSuccess(t, elapsed >= 80*time.Millisecond, elapsed)
	test.ExpectSuccess(t, elapsed < 2*time.Second, elapsed)

	lim.SetLimit(0)
	test.ExpectEquality(t, lim.Rate(), 1)
}

func TestLimiterContext(t *testing.T) {
	lim := limiter.NewLimiter(1)
	defer lim.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	test.ExpectFailure(t, lim.Wait(ctx))
}
