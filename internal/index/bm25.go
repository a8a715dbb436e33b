package index

import (
	"math"
	"sort"
	"strings"
)

// BM25 tuning constants. k1 controls term-frequency saturation, b
// controls document-length normalization; both are the standard Okapi
// defaults. idfFloor smooths the IDF so that very common terms still
// contribute a small positive weight instead of going negative.
const (
	bm25K1   = 1.5
	bm25B    = 0.75
	idfFloor = 0.25
)

// DefaultPhraseBoost multiplies a document's raw score when the query
// occurs in it as an exact contiguous phrase.
const DefaultPhraseBoost = 1.5

// Hit is one ranked document: its position in the fitted corpus and
// its score.
type Hit struct {
	Doc   int
	Score float64
}

type rankerDoc struct {
	tf     map[string]int
	length int
	joined string // space-joined tokens, used for phrase matching
}

// Ranker is a BM25 index over one corpus snapshot. It is immutable
// after Fit and safe for concurrent Score calls without locking.
type Ranker struct {
	docs        []rankerDoc
	idf         map[string]float64
	avgdl       float64
	phraseBoost float64
}

// Fit builds a ranker from tokenized documents. Term statistics are
// computed in full for this snapshot; a refreshed corpus needs a new
// Fit. Fitting zero documents is valid and yields a ranker that
// returns no hits.
func Fit(documents [][]string) *Ranker {
	r := &Ranker{
		idf:         make(map[string]float64),
		phraseBoost: DefaultPhraseBoost,
	}
	if len(documents) == 0 {
		return r
	}

	df := make(map[string]int)
	totalLen := 0
	r.docs = make([]rankerDoc, len(documents))
	for i, tokens := range documents {
		tf := make(map[string]int, len(tokens))
		for _, t := range tokens {
			tf[t]++
		}
		for t := range tf {
			df[t]++
		}
		r.docs[i] = rankerDoc{tf: tf, length: len(tokens), joined: strings.Join(tokens, " ")}
		totalLen += len(tokens)
	}

	n := float64(len(r.docs))
	r.avgdl = float64(totalLen) / n
	for t, f := range df {
		idf := math.Log((n-float64(f)+0.5)/(float64(f)+0.5) + 1)
		r.idf[t] = math.Max(idf, idfFloor)
	}
	return r
}

// WithPhraseBoost overrides the phrase boost factor. Call before the
// ranker is shared across goroutines.
func (r *Ranker) WithPhraseBoost(boost float64) *Ranker {
	if boost > 0 {
		r.phraseBoost = boost
	}
	return r
}

// Len returns the number of fitted documents.
func (r *Ranker) Len() int { return len(r.docs) }

// Score ranks every fitted document against the query, descending by
// score with ties kept in document order. Query terms absent from the
// corpus contribute nothing; a query with no tokens scores every
// document at 0. Neither case is an error.
func (r *Ranker) Score(query string) []Hit {
	if len(r.docs) == 0 {
		return nil
	}

	queryTokens := Tokenize(query)
	phrase := ""
	if len(queryTokens) >= 2 {
		phrase = strings.Join(queryTokens, " ")
	}

	hits := make([]Hit, len(r.docs))
	for i, doc := range r.docs {
		raw := 0.0
		for _, t := range queryTokens {
			idf, ok := r.idf[t]
			if !ok {
				continue
			}
			tf := float64(doc.tf[t])
			num := tf * (bm25K1 + 1)
			den := tf + bm25K1*(1-bm25B+bm25B*float64(doc.length)/r.avgdl)
			raw += idf * num / den
		}
		if phrase != "" && strings.Contains(doc.joined, phrase) {
			raw *= r.phraseBoost
		}
		hits[i] = Hit{Doc: i, Score: raw}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})
	return hits
}
