package todo

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Two id namespaces exist: tasks authored locally and tasks imported from
// the remote API. Provenance is recoverable from the prefix alone.
const (
	localIDPrefix  = "todo-"
	remoteIDPrefix = "api-"
)

const localIDSuffixLen = 9

// NewLocalID returns a fresh id in the local namespace. The id embeds the
// creation time in milliseconds plus a random suffix so that ids generated
// within the same millisecond stay unique.
func NewLocalID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:localIDSuffixLen]
	return fmt.Sprintf("%s%d-%s", localIDPrefix, now.UnixMilli(), suffix)
}

// RemoteID returns the id a remote record with the given numeric id maps to.
func RemoteID(id int) string {
	return remoteIDPrefix + strconv.Itoa(id)
}

// IsRemote reports whether the task with this id was imported from the API.
func IsRemote(id string) bool {
	return strings.HasPrefix(id, remoteIDPrefix)
}

// RemoteKey strips the remote namespace prefix, yielding the remote record's
// own id for deduplication.
func RemoteKey(id string) string {
	return strings.TrimPrefix(id, remoteIDPrefix)
}
