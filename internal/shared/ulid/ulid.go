package ulid

import (
	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string, used as the id of one analysis run.
var NewULID = func() string {
	return ulid.Make().String()
}
