package timeline

import (
	"strings"
	"time"

	"github.com/alexanderramin/milestones/internal/domain"
)

// SentinelName is the milestone name that marks Month 0 in sentinel mode.
const SentinelName = "notice to proceed"

// SentinelFallbackWarning is reported when sentinel mode finds no dated
// "Notice to Proceed" row.
const SentinelFallbackWarning = "'Notice to Proceed' not found with a contractual date. Falling back to first contractual date."

// AnchorResult is the resolved Month 0 plus how it was obtained.
type AnchorResult struct {
	Date    time.Time
	Mode    domain.AnchorMode
	Warning string
}

// ResolveAnchor picks Month 0. It always produces a date: sentinel mode falls
// back to the first contractual date, which falls back to today.
func ResolveAnchor(entries []domain.Entry, mode domain.AnchorMode, custom *time.Time, today time.Time) AnchorResult {
	switch mode {
	case domain.AnchorCustom:
		if custom != nil {
			return AnchorResult{Date: *custom, Mode: domain.AnchorCustom}
		}
		return AnchorResult{Date: domain.StartOfDay(today), Mode: domain.AnchorCustom}
	case domain.AnchorNamedSentinel:
		if d := sentinelDate(entries); d != nil {
			return AnchorResult{Date: *d, Mode: domain.AnchorNamedSentinel}
		}
		res := firstContractual(entries, today)
		res.Warning = SentinelFallbackWarning
		return res
	}
	return firstContractual(entries, today)
}

// IsSentinel reports whether name is the "Notice to Proceed" milestone.
func IsSentinel(name string) bool {
	return strings.ToLower(strings.TrimSpace(name)) == SentinelName
}

func sentinelDate(entries []domain.Entry) *time.Time {
	for i := range entries {
		if IsSentinel(entries[i].Name) && entries[i].Contractual != nil {
			return entries[i].Contractual
		}
	}
	return nil
}

func firstContractual(entries []domain.Entry, today time.Time) AnchorResult {
	var earliest *time.Time
	for i := range entries {
		c := entries[i].Contractual
		if c != nil && (earliest == nil || c.Before(*earliest)) {
			earliest = c
		}
	}
	if earliest == nil {
		return AnchorResult{Date: domain.StartOfDay(today), Mode: domain.AnchorFirstContractual}
	}
	return AnchorResult{Date: domain.StartOfDay(*earliest), Mode: domain.AnchorFirstContractual}
}
