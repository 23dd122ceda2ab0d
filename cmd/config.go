package cmd

// Config carries the process configuration loaded from the environment.
type Config struct {
	HTTPPort string
}
