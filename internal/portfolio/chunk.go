package portfolio

import "fmt"

// SkillChunkSize is the number of skills shown per grid card.
const SkillChunkSize = 9

// Chunk splits items into contiguous groups of size, keeping their order.
// The last group may be shorter. Each group is a copy, so appending to it
// never writes into items. size must be positive.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 {
		panic(fmt.Sprintf("portfolio: chunk size must be positive, got %d", size))
	}
	groups := make([][]T, 0, (len(items)+size-1)/size)
	for i := 0; i < len(items); i += size {
		end := min(i+size, len(items))
		groups = append(groups, clone(items[i:end]))
	}
	return groups
}
