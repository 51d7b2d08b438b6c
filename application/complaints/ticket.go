package complaints

import (
	"fmt"
	"math/rand"
	"time"
)

// TicketCodeGenerator produces citizen-facing complaint identifiers of the
// form TKT-<year>-<5-digit-number>. No uniqueness check happens here; the
// store's unique index on ticket_code is the sole collision guard.
type TicketCodeGenerator struct {
	now  func() time.Time
	intN func(n int) int
}

// NewTicketCodeGenerator creates a generator backed by the wall clock and
// the shared random source.
func NewTicketCodeGenerator() *TicketCodeGenerator {
	return &TicketCodeGenerator{
		now:  time.Now,
		intN: rand.Intn,
	}
}

// Generate returns a fresh ticket code for the current year. The numeric
// part is drawn uniformly from [10000, 99999].
func (g *TicketCodeGenerator) Generate() string {
	year := g.now().Year()
	number := 10000 + g.intN(90000)
	return fmt.Sprintf("TKT-%d-%05d", year, number)
}
