package settlement

import (
	"sort"
)

// PotLayer is one slice of the pot: the chips contributed between the previous
// threshold and this one.
type PotLayer struct {
	Threshold    int
	Amount       int
	Contributors []int // Everyone who paid into this layer, folded players included
	Eligible     []int // Contending participants who can win it, ascending ID
}

// BuildLayers splits the pot into side-pot layers, one per distinct positive
// contribution level. Folded chips grow a layer but never make anyone eligible
// for it.
func BuildLayers(participants []Participant) ([]PotLayer, error) {
	sorted := sortedByID(participants)

	total := 0
	levels := make([]int, 0, len(sorted))
	seen := make(map[int]bool, len(sorted))
	for _, p := range sorted {
		if p.Committed < 0 {
			return nil, underdetermined(sorted, total, 0, "participant %d committed %d chips", p.ID, p.Committed)
		}
		total += p.Committed
		if p.Committed > 0 && !seen[p.Committed] {
			seen[p.Committed] = true
			levels = append(levels, p.Committed)
		}
	}
	sort.Ints(levels)

	layers := make([]PotLayer, 0, len(levels))
	layerTotal := 0
	previous := 0
	for _, level := range levels {
		layer := PotLayer{Threshold: level}
		for _, p := range sorted {
			if p.Committed < level {
				continue
			}
			layer.Contributors = append(layer.Contributors, p.ID)
			if p.Status.Contending() {
				layer.Eligible = append(layer.Eligible, p.ID)
			}
		}
		layer.Amount = (level - previous) * len(layer.Contributors)

		if len(layer.Eligible) == 0 {
			return nil, underdetermined(sorted, total, layerTotal+layer.Amount,
				"layer at %d has no eligible participant", level)
		}

		layers = append(layers, layer)
		layerTotal += layer.Amount
		previous = level
	}

	if layerTotal != total {
		return nil, underdetermined(sorted, total, layerTotal, "layers do not cover the pot")
	}
	return layers, nil
}

func sortedByID(participants []Participant) []Participant {
	sorted := append([]Participant(nil), participants...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})
	return sorted
}
