// Package batch groups populated requests for upload: flattening batch
// descriptors into unique portfolio codes and folding per-row requests
// into one request per batch.
package batch

// SyncBatch describes one synchronous upload batch: the asynchronous
// sub-batches it dispatches plus parallel portfolio codes and effective
// dates.
type SyncBatch struct {
	AsyncBatches []any
	Codes        []string
	EffectiveAt  []string
}

// CodeEffectiveAt pairs a portfolio code with the effective date it was
// batched under.
type CodeEffectiveAt struct {
	Code        string
	EffectiveAt string
}

// UniqueCodes flattens the batches' codes into a deduplicated list,
// keeping first-appearance order.
func UniqueCodes(batches []SyncBatch) []string {
	seen := make(map[string]struct{})
	var codes []string
	for _, b := range batches {
		for _, code := range b.Codes {
			if _, ok := seen[code]; ok {
				continue
			}
			seen[code] = struct{}{}
			codes = append(codes, code)
		}
	}
	return codes
}

// UniqueCodeEffectiveAtPairs flattens the batches into deduplicated
// (code, effective date) pairs, keeping first-appearance order. A code
// without a parallel effective date pairs with the empty string.
func UniqueCodeEffectiveAtPairs(batches []SyncBatch) []CodeEffectiveAt {
	seen := make(map[CodeEffectiveAt]struct{})
	var pairs []CodeEffectiveAt
	for _, b := range batches {
		for i, code := range b.Codes {
			pair := CodeEffectiveAt{Code: code}
			if i < len(b.EffectiveAt) {
				pair.EffectiveAt = b.EffectiveAt[i]
			}
			if _, ok := seen[pair]; ok {
				continue
			}
			seen[pair] = struct{}{}
			pairs = append(pairs, pair)
		}
	}
	return pairs
}
