package codes

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TimeSource supplies the epoch seconds a deterministic scope id is
// derived from. Injecting it keeps scope generation testable; the wall
// clock satisfies it via SystemTime.
type TimeSource interface {
	Time() int64
}

type systemTime struct{}

func (systemTime) Time() int64 { return time.Now().Unix() }

// SystemTime returns a TimeSource backed by the wall clock.
func SystemTime() TimeSource { return systemTime{} }

// ErrNoTimeSource is returned when no time source was supplied.
var ErrNoTimeSource = errors.New("codes: time source does not expose a time operation")

// NewScopeID derives a short scope identifier from the source's epoch
// seconds: the seconds scaled to hundred-nanosecond ticks, rendered in
// hex and split into dash-joined groups of four. Epoch 1574852918
// yields "37f3-342f-823f-00".
func NewScopeID(source TimeSource) (string, error) {
	if source == nil {
		return "", ErrNoTimeSource
	}
	seconds := source.Time()
	if seconds <= 0 {
		return "", fmt.Errorf("codes: time source returned a non-positive epoch value: %d", seconds)
	}

	digits := strconv.FormatInt(seconds*10_000_000, 16)
	groups := make([]string, 0, len(digits)/4+1)
	for len(digits) > 4 {
		groups = append(groups, digits[:4])
		digits = digits[4:]
	}
	groups = append(groups, digits)
	return strings.Join(groups, "-"), nil
}

// NewScopeIDUUID returns a random UUID scope identifier for callers
// that prefer uniqueness over a time-ordered id.
func NewScopeIDUUID() string {
	return uuid.NewString()
}
