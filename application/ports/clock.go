package ports

import "time"

// Clock abstracts "now" so time-dependent rules stay testable
type Clock interface {
	Now() time.Time
}
