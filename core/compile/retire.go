package compile

import (
	"github.com/FocuswithJustin/iso639/core/mapping"
)

// buildRetirements merges the ISO 639-2 change list and the ISO 639-3
// retirements file into one retirement table keyed by identifier, then
// collapses replacement chains. When two events retire the same key, the
// one with the later effective date wins.
func buildRetirements(src *sources) map[string]mapping.Retirement {
	byID := map[string]mapping.Retirement{}

	put := func(ret mapping.Retirement) {
		if ret.ID == "" {
			return
		}
		if prev, ok := byID[ret.ID]; ok && prev.Effective >= ret.Effective {
			return
		}
		byID[ret.ID] = ret
	}

	for _, changes := range [][]changeRow{src.iso6392Changes, src.iso6395Changes} {
		for _, r := range changes {
			put(mapping.Retirement{
				ID:        r.ID,
				Name:      firstNameSegment(r.EnglishName),
				Reason:    r.Category,
				ChangeTo:  r.ChangeTo,
				RetRemedy: r.Notes,
				Effective: r.Date,
			})
		}
	}
	for _, r := range src.retirements {
		put(mapping.Retirement{
			ID:        r.ID,
			Name:      r.RefName,
			Reason:    r.Reason,
			ChangeTo:  r.ChangeTo,
			RetRemedy: r.RetRemedy,
			Effective: r.Effective,
		})
	}

	collapseRetirements(byID)
	return byID
}

// collapseRetirements rewrites every replacement chain to its final target
// and drops self-loops, so a single lookup lands on a live identifier.
// A cycle resolves to the last identifier reached before revisiting one,
// which turns a two-element cycle into two self-loops and removes both.
func collapseRetirements(byID map[string]mapping.Retirement) {
	final := make(map[string]string, len(byID))
	for id, ret := range byID {
		target := ret.ChangeTo
		seen := map[string]bool{id: true}
		for target != "" {
			next, ok := byID[target]
			if !ok || seen[target] || next.ChangeTo == "" {
				break
			}
			seen[target] = true
			target = next.ChangeTo
		}
		final[id] = target
	}

	for id, target := range final {
		if target == id {
			delete(byID, id)
			continue
		}
		ret := byID[id]
		if ret.ChangeTo != target {
			ret.ChangeTo = target
			byID[id] = ret
		}
	}
}

// retirementsByName reindexes the collapsed table by retired reference name.
// Events with no recorded name (some change-list rows) are skipped.
func retirementsByName(byID map[string]mapping.Retirement) map[string]mapping.Retirement {
	byName := map[string]mapping.Retirement{}
	for _, ret := range byID {
		if ret.Name == "" {
			continue
		}
		if prev, ok := byName[ret.Name]; ok && prev.Effective >= ret.Effective {
			continue
		}
		byName[ret.Name] = ret
	}
	return byName
}
