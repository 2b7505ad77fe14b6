package db

// QueryStats returns per-query latency and error counts, slowest first.
func (c *Database) QueryStats() []QueryStats {
	if c == nil || c.tracker == nil {
		return nil
	}
	return c.tracker.snapshot()
}
