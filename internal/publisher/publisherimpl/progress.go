package publisherimpl

import (
	"math/rand"
	"time"
)

type progressSim struct {
	stop chan struct{}
	done chan struct{}
}

// startProgress drives a cosmetic progress counter: a random step per
// tick, clamped at 90 until the real upload settles. The value is not
// derived from transferred bytes.
func startProgress(interval time.Duration, set func(int)) *progressSim {
	sim := &progressSim{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	go func() {
		defer close(sim.done)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		progress := 0
		for {
			select {
			case <-sim.stop:
				return
			case <-ticker.C:
				progress += 5 + rand.Intn(10)
				if progress > 90 {
					progress = 90
				}
				set(progress)
			}
		}
	}()

	return sim
}

// Stop halts the simulation and waits until the last tick has landed,
// so no stale write races the flow's own progress updates.
func (s *progressSim) Stop() {
	close(s.stop)
	<-s.done
}
