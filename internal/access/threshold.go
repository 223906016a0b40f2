// threshold.go -- allow/deny/rate thresholds for access filters
//
// Author: Sudhi Herle <sudhi@herle.net>
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package access

import (
	"fmt"
	"strconv"
	"strings"
)

// ThresholdKind denotes one of the three forms of a Threshold
type ThresholdKind int

const (
	KindAllow ThresholdKind = iota
	KindDeny
	KindRate
)

func (k ThresholdKind) String() string {
	switch k {
	case KindAllow:
		return "ALLOW"
	case KindDeny:
		return "DENY"
	case KindRate:
		return "RATE"
	default:
		return fmt.Sprintf("KIND_%d", int(k))
	}
}

// Threshold is an immutable allow, deny or rate-limit policy. A rate
// threshold permits up to Connections() events in a rolling window of
// Minutes() minutes.
type Threshold struct {
	kind  ThresholdKind
	conns int
	mins  int
}

var (
	// Allow always permits
	Allow = Threshold{kind: KindAllow}

	// Deny always rejects
	Deny = Threshold{kind: KindDeny}
)

// NewRate returns a rate threshold of 'conns' connections every 'mins'
// minutes. conns must be non-negative and mins at least 1.
func NewRate(conns, mins int) (Threshold, error) {
	s := fmt.Sprintf("%d/%d", conns, mins)
	if conns < 0 {
		return Threshold{}, invalid(s, "number of connections cannot be negative")
	}
	if mins < 1 {
		return Threshold{}, invalid(s, "number of minutes must be at least 1")
	}
	return Threshold{kind: KindRate, conns: conns, mins: mins}, nil
}

// ParseThreshold parses a single threshold token: "allow", "deny" or
// "<connections>/<minutes>". The keywords are case-insensitive.
func ParseThreshold(s string) (Threshold, error) {
	switch lookup(s) {
	case ALLOW:
		return Allow, nil
	case DENY:
		return Deny, nil
	}

	v := strings.Split(s, "/")
	if len(v) != 2 {
		return Threshold{}, invalid(s, "invalid threshold")
	}

	conns, err := strconv.Atoi(v[0])
	if err != nil {
		return Threshold{}, invalidErr(s, "invalid threshold", err)
	}

	mins, err := strconv.Atoi(v[1])
	if err != nil {
		return Threshold{}, invalidErr(s, "invalid threshold", err)
	}

	return NewRate(conns, mins)
}

func (t Threshold) Kind() ThresholdKind { return t.kind }
func (t Threshold) IsAllow() bool       { return t.kind == KindAllow }
func (t Threshold) IsDeny() bool        { return t.kind == KindDeny }
func (t Threshold) IsRate() bool        { return t.kind == KindRate }

// Connections returns the number of connections permitted per window;
// it is zero for allow and deny thresholds.
func (t Threshold) Connections() int { return t.conns }

// Minutes returns the length of the window; zero for allow and deny.
func (t Threshold) Minutes() int { return t.mins }

// String returns the threshold in the same form ParseThreshold accepts
func (t Threshold) String() string {
	switch t.kind {
	case KindAllow:
		return "allow"
	case KindDeny:
		return "deny"
	default:
		return fmt.Sprintf("%d/%d", t.conns, t.mins)
	}
}
