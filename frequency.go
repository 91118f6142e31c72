package hufftree

import (
	"sort"
	"sync"
)

// Frequencies maps each Symbol that occurs in some input to its number of
// occurrences.  Symbols that never occur are absent; they are never present
// with a count of 0.
type Frequencies map[Symbol]uint64

// CountFrequencies counts the occurrences of each byte in data.
func CountFrequencies(data []byte) Frequencies {
	var counts [NumSymbols]uint64
	for _, b := range data {
		counts[b]++
	}

	freqs := make(Frequencies)
	for symbol, count := range counts {
		if count != 0 {
			freqs[Symbol(symbol)] = count
		}
	}
	return freqs
}

// CountFrequenciesParallel is like CountFrequencies, but splits data into
// up to numShards contiguous shards and counts them concurrently.  The
// result is always identical to CountFrequencies(data).
//
func CountFrequenciesParallel(data []byte, numShards int) Frequencies {
	if numShards <= 1 || len(data) < numShards {
		return CountFrequencies(data)
	}

	shardLen := (len(data) + numShards - 1) / numShards
	partials := make([]Frequencies, 0, numShards)
	for lo := 0; lo < len(data); lo += shardLen {
		partials = append(partials, nil)
	}

	var wg sync.WaitGroup
	for index := range partials {
		lo := index * shardLen
		hi := lo + shardLen
		if hi > len(data) {
			hi = len(data)
		}
		wg.Add(1)
		go func(index int, shard []byte) {
			defer wg.Done()
			partials[index] = CountFrequencies(shard)
		}(index, data[lo:hi])
	}
	wg.Wait()

	freqs := make(Frequencies)
	for _, partial := range partials {
		freqs.Merge(partial)
	}
	return freqs
}

// Add adds count occurrences of symbol.  Adding 0 is a no-op, so that no
// symbol is ever mapped to 0.
func (freqs Frequencies) Add(symbol Symbol, count uint64) {
	if count == 0 {
		return
	}
	freqs[symbol] = saturatingAdd(freqs[symbol], count)
}

// Merge adds every count in other to freqs.
func (freqs Frequencies) Merge(other Frequencies) {
	for symbol, count := range other {
		freqs.Add(symbol, count)
	}
}

// Symbols returns the symbols present in freqs, in ascending order.
func (freqs Frequencies) Symbols() []Symbol {
	out := make([]Symbol, 0, len(freqs))
	for symbol := range freqs {
		out = append(out, symbol)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Total returns the sum of all counts.
func (freqs Frequencies) Total() uint64 {
	var total uint64
	for _, count := range freqs {
		total = saturatingAdd(total, count)
	}
	return total
}
