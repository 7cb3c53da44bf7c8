// Package mapreduce tallies product candidates across the records of a run.
package mapreduce

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dtnitsch/geosat-report/models"
)

// Map counts the individual products recommended for one record.
// Records without a recommendation count nothing.
func Map(rec models.SatelliteRecord) map[string]int {
	counts := make(map[string]int)
	if rec.ProductCandidates == models.NoProductCandidates {
		return counts
	}
	for _, product := range strings.Split(rec.ProductCandidates, ",") {
		if product = strings.TrimSpace(product); product != "" {
			counts[product]++
		}
	}
	return counts
}

// Reduce aggregates a slice of count maps into a single map.
func Reduce(intermediate []map[string]int) map[string]int {
	finalResults := make(map[string]int)

	for _, counts := range intermediate {
		for key, count := range counts {
			finalResults[key] += count
		}
	}

	return finalResults
}

// TopN returns the n largest counts as "key:count", largest first.
// Ties are ordered by key.
func TopN(counts map[string]int, n int) []string {
	type kv struct {
		Key   string
		Value int
	}

	ss := make([]kv, 0, len(counts))
	for k, v := range counts {
		ss = append(ss, kv{k, v})
	}

	sort.Slice(ss, func(i, j int) bool {
		if ss[i].Value != ss[j].Value {
			return ss[i].Value > ss[j].Value
		}
		return ss[i].Key < ss[j].Key
	})

	if n < 0 {
		n = 0
	}
	if len(ss) < n {
		n = len(ss)
	}

	top := make([]string, n)
	for i := 0; i < n; i++ {
		top[i] = fmt.Sprintf("%s:%d", ss[i].Key, ss[i].Value)
	}
	return top
}
