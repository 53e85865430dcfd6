package util

import (
	"github.com/rs/xid"
)

// GenSubmitID generates a submission ID string.
// IDs are globally unique and sortable, so interleaved logs from
// concurrent submissions can be told apart.
func GenSubmitID() string {
	id := xid.New()
	return id.String()
}
