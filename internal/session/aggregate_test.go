package session

import "testing"

func TestWordCount(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"slow down a bit", 4},
		{"  spaced   out\twords ", 3},
	}

	for _, tt := range tests {
		if got := WordCount(tt.text); got != tt.want {
			t.Errorf("WordCount(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func rows(starts []float64, texts []string) []*Record {
	out := make([]*Record, len(starts))
	for i := range starts {
		out[i] = &Record{VideoFile: "v.mp4", StartTimestamp: starts[i], Transcription: texts[i], Sentiment: "neutral"}
	}
	return out
}

func TestWordCountBuckets(t *testing.T) {
	records := rows(
		[]float64{0.0, 4.9, 5.0, 12.3},
		[]string{"take next exit", "watch out", "brake", "that was too close"},
	)

	buckets := WordCountBuckets(records, 5)

	if len(buckets) != 3 {
		t.Fatalf("got %d buckets, want 3", len(buckets))
	}

	wantCounts := []int{5, 1, 4}
	wantLabels := []string{"0-5 sec", "5-10 sec", "10-15 sec"}
	for i, b := range buckets {
		if b.Index != i {
			t.Errorf("bucket %d index = %d", i, b.Index)
		}
		if b.WordCount != wantCounts[i] {
			t.Errorf("bucket %d word count = %d, want %d", i, b.WordCount, wantCounts[i])
		}
		if b.Label != wantLabels[i] {
			t.Errorf("bucket %d label = %q, want %q", i, b.Label, wantLabels[i])
		}
	}
}

func TestWordCountBucketsGap(t *testing.T) {
	// A silent middle bucket still appears with a zero count.
	records := rows([]float64{0, 5, 10}, []string{"two words", "", "three more words"})

	buckets := WordCountBuckets(records, 5)
	if len(buckets) != 3 {
		t.Fatalf("got %d buckets, want 3", len(buckets))
	}
	if buckets[1].WordCount != 0 {
		t.Errorf("silent bucket word count = %d, want 0", buckets[1].WordCount)
	}
}

func TestWordCountBucketsSingleRow(t *testing.T) {
	// A lone row at offset 0 still lands in one bucket.
	buckets := WordCountBuckets(rows([]float64{0}, []string{"hello there"}), 5)
	if len(buckets) != 1 {
		t.Fatalf("got %d buckets, want 1", len(buckets))
	}
	if buckets[0].WordCount != 2 {
		t.Errorf("word count = %d, want 2", buckets[0].WordCount)
	}
}

func TestWordCountBucketsEmpty(t *testing.T) {
	if got := WordCountBuckets(nil, 5); got != nil {
		t.Errorf("WordCountBuckets(nil) = %v, want nil", got)
	}
}

func TestSentimentCounts(t *testing.T) {
	records := []*Record{
		{Sentiment: "positive"},
		{Sentiment: "positive"},
		{Sentiment: "neutral"},
		{Sentiment: "negative"},
	}

	counts := SentimentCounts(records)

	if len(counts) != 3 {
		t.Fatalf("got %d labels, want 3", len(counts))
	}
	if counts[0].Label != "positive" || counts[0].Count != 2 {
		t.Errorf("first entry = %+v, want positive=2", counts[0])
	}
	// Tie between neutral and negative keeps appearance order.
	if counts[1].Label != "neutral" || counts[1].Count != 1 {
		t.Errorf("second entry = %+v, want neutral=1", counts[1])
	}
	if counts[2].Label != "negative" || counts[2].Count != 1 {
		t.Errorf("third entry = %+v, want negative=1", counts[2])
	}

	total := 0
	for _, c := range counts {
		total += c.Count
	}
	if total != len(records) {
		t.Errorf("counts sum to %d, want %d", total, len(records))
	}
}
