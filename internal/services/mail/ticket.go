package mail

import (
	"fmt"
	"math/rand/v2"
)

// NewTicketID returns "YW" followed by a zero-padded number below 1000.
// Ids are not unique; they only help a human match the two mails.
func NewTicketID() string {
	return fmt.Sprintf("YW%03d", rand.IntN(1000))
}
