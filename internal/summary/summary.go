package summary

import (
	"fmt"
	"math"
	"sort"

	"github.com/JulioAlmeida83/atilog/internal/models"
	"github.com/JulioAlmeida83/atilog/internal/policy"
)

// Group is one chart bucket: record count and estimated minutes for a
// grouping key.
type Group struct {
	Key     string
	Count   int
	Minutes int
}

// TotalEstimatedMinutes sums the duration bucket estimates over all records
func TotalEstimatedMinutes(records []models.Record) int {
	total := 0
	for _, r := range records {
		total += r.EstimatedMinutes()
	}
	return total
}

// FormatHours renders minutes as hours with one decimal place, rounding
// half-up, so 27 min displays as "0.5".
func FormatHours(minutes int) string {
	hours := float64(minutes) / 60.0
	rounded := math.Floor(hours*10+0.5) / 10
	return fmt.Sprintf("%.1f", rounded)
}

// GroupBy buckets the records by the given key function, ordered by
// descending count with ties broken alphabetically.
func GroupBy(records []models.Record, keyFn func(models.Record) string) []Group {
	index := make(map[string]int)
	var groups []Group
	for _, r := range records {
		key := keyFn(r)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Key: key})
		}
		groups[i].Count++
		groups[i].Minutes += r.EstimatedMinutes()
	}

	sort.SliceStable(groups, func(a, b int) bool {
		if groups[a].Count != groups[b].Count {
			return groups[a].Count > groups[b].Count
		}
		return groups[a].Key < groups[b].Key
	})
	return groups
}

// CountByGroup buckets the records by the policy's grouping priority
func CountByGroup(records []models.Record, p policy.Policy) []Group {
	return GroupBy(records, p.GroupKey)
}
