package session

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// DefaultBucketSeconds is the aggregation bucket width.
const DefaultBucketSeconds = 5.0

// Bucket is one time interval with its summed word count.
type Bucket struct {
	Index     int
	Label     string
	WordCount int
}

// LabelCount is one sentiment label with its row count.
type LabelCount struct {
	Label string
	Count int
}

// WordCount counts whitespace-delimited tokens; empty text counts 0.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// WordCountBuckets sums transcription word counts into fixed-width time
// buckets. Bucket index = floor(start/width); bucket count =
// ceil(max(start)/width), extended when the max offset lands exactly on
// a bucket boundary so its row is not dropped. Buckets are returned in
// ascending index order, empty ones included.
func WordCountBuckets(records []*Record, width float64) []Bucket {
	if len(records) == 0 {
		return nil
	}
	if width <= 0 {
		width = DefaultBucketSeconds
	}

	maxStart := 0.0
	for _, r := range records {
		if r.StartTimestamp > maxStart {
			maxStart = r.StartTimestamp
		}
	}

	count := int(math.Ceil(maxStart / width))
	if last := int(maxStart / width); last >= count {
		count = last + 1
	}

	sums := make([]int, count)
	for _, r := range records {
		idx := int(r.StartTimestamp / width)
		sums[idx] += WordCount(r.Transcription)
	}

	buckets := make([]Bucket, count)
	for i := range buckets {
		buckets[i] = Bucket{
			Index:     i,
			Label:     fmt.Sprintf("%g-%g sec", float64(i)*width, float64(i+1)*width),
			WordCount: sums[i],
		}
	}
	return buckets
}

// SentimentCounts counts rows per sentiment label, most frequent first.
// Ties keep first-appearance order.
func SentimentCounts(records []*Record) []LabelCount {
	counts := make(map[string]int)
	var order []string
	for _, r := range records {
		if _, seen := counts[r.Sentiment]; !seen {
			order = append(order, r.Sentiment)
		}
		counts[r.Sentiment]++
	}

	out := make([]LabelCount, 0, len(order))
	for _, label := range order {
		out = append(out, LabelCount{Label: label, Count: counts[label]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}
