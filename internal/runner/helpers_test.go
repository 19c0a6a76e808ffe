package runner

import "github.com/vovakirdan/neonrun/internal/config"

// seqRand replays a fixed list of Float64 values, cycling when exhausted.
type seqRand struct {
	vals []float64
	pos  int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.pos%len(r.vals)]
	r.pos++
	return v
}

func (r *seqRand) Intn(n int) int {
	return int(r.Float64() * float64(n))
}

func newSeq(vals ...float64) *seqRand {
	return &seqRand{vals: vals}
}

func defaultCfg() config.RunnerConfig {
	return config.DefaultRunnerConfig()
}
