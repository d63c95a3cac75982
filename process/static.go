package process

// Static is a Monitor with a fixed answer. It backs tests and hosts where
// the simulator cannot be observed directly.
type Static struct {
	IsRunning bool
	Name      string
}

func (s Static) Running() bool { return s.IsRunning }

func (s Static) GameName() string { return s.Name }
