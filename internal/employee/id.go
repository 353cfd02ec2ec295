package employee

import (
	"fmt"
	"math/rand"
	"time"
)

// NewEmployeeID builds an id from the date of birth plus a random suffix:
// day (2 digits) + month (2 digits) + year characters [1:4) + a 6-digit
// number in [100000, 999999). For a DOB of 1985-03-07 the prefix is 070398.
func NewEmployeeID(dob time.Time) string {
	year := fmt.Sprintf("%04d", dob.Year())
	return fmt.Sprintf("%02d%02d%s%d", dob.Day(), int(dob.Month()), year[1:4], 100000+rand.Intn(899999))
}
