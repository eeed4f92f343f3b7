// Package vectorspace builds per-request TF-IDF weight spaces over a
// document corpus. A VectorSpace is fitted to exactly one request's corpus
// and is never shared, cached, or merged across requests: IDF is only
// meaningful within the batch being compared, and sharing a fitted space
// would leak vocabulary between users and make scores drift with traffic.
package vectorspace

import (
	"math"
	"sort"
)

// VectorSpace is a fitted term-weight space over one request's corpus.
// Document vectors are indexed in the order the documents were passed to
// Build.
type VectorSpace struct {
	terms   []string       // index -> term, sorted for determinism
	vocab   map[string]int // term -> index
	docFreq []int          // per term, number of documents containing it
	vectors [][]float64    // per document, TF-IDF weights over the vocabulary
}

// Build fits a VectorSpace to the tokenized corpus. The vocabulary is the
// set of distinct tokens across the given documents alone. Weights are
// tf(t,d) * idf(t) with the smoothed idf(t) = log((1+N)/(1+df(t))) + 1,
// which never divides by zero and never goes negative.
//
// Returns *EmptyCorpusError when the corpus induces an empty vocabulary;
// all-zero vectors would otherwise be misread downstream as "no match".
func Build(docs [][]string) (*VectorSpace, error) {
	vocab := make(map[string]int)
	for _, tokens := range docs {
		for _, tok := range tokens {
			if _, ok := vocab[tok]; !ok {
				vocab[tok] = -1 // index assigned after sorting
			}
		}
	}

	if len(vocab) == 0 {
		return nil, &EmptyCorpusError{Documents: len(docs)}
	}

	terms := make([]string, 0, len(vocab))
	for term := range vocab {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	for i, term := range terms {
		vocab[term] = i
	}

	docFreq := make([]int, len(terms))
	counts := make([]map[int]int, len(docs))
	for d, tokens := range docs {
		tf := make(map[int]int, len(tokens))
		for _, tok := range tokens {
			tf[vocab[tok]]++
		}
		for idx := range tf {
			docFreq[idx]++
		}
		counts[d] = tf
	}

	n := float64(len(docs))
	idf := make([]float64, len(terms))
	for i, df := range docFreq {
		idf[i] = math.Log((1+n)/(1+float64(df))) + 1
	}

	vectors := make([][]float64, len(docs))
	for d, tf := range counts {
		vec := make([]float64, len(terms))
		for idx, count := range tf {
			vec[idx] = float64(count) * idf[idx]
		}
		vectors[d] = vec
	}

	return &VectorSpace{
		terms:   terms,
		vocab:   vocab,
		docFreq: docFreq,
		vectors: vectors,
	}, nil
}

// Vector returns the TF-IDF weight vector for document i, in Build order.
func (vs *VectorSpace) Vector(i int) []float64 {
	return vs.vectors[i]
}

// Documents returns the number of documents the space was fitted over.
func (vs *VectorSpace) Documents() int {
	return len(vs.vectors)
}

// VocabularySize returns the number of distinct terms in the space.
func (vs *VectorSpace) VocabularySize() int {
	return len(vs.terms)
}

// Term returns the vocabulary term at index i.
func (vs *VectorSpace) Term(i int) string {
	return vs.terms[i]
}

// TermIndex returns the vocabulary index for term, or -1 if the term is
// not in this space.
func (vs *VectorSpace) TermIndex(term string) int {
	if idx, ok := vs.vocab[term]; ok {
		return idx
	}
	return -1
}

// DocumentFrequency returns the number of corpus documents containing the
// term at index i.
func (vs *VectorSpace) DocumentFrequency(i int) int {
	return vs.docFreq[i]
}
