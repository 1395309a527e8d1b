package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Sim     string
	Width   int
	Height  int
	Scale   int
	TPS     int
	Seed    int64
	Density float64
	Pattern string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Width: 256, Height: 256, Scale: 3, TPS: 60, Seed: 42, Density: 0.2}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.Float64Var(&c.Density, "density", c.Density, "alive probability for random seeding")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "start from a named pattern instead of a random soup")
}
