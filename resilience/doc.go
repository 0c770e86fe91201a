// Package resilience provides retry with exponential backoff.
//
// It backs the connection-establishment pipeline in the redis package,
// where the verification ping is retried according to the pool
// configuration:
//
//	conn, err := resilience.Retry(ctx, cfg, func() (*Conn, error) {
//	    return dial()
//	})
package resilience
