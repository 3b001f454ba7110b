// internal/domain/blocks/sequence.go
package blocks

import "github.com/haemonga/portfolio/internal/domain/models"

// The sequence operations below never mutate their input. Boundary and
// out-of-range indices are silent no-ops returning the input sequence:
// the editor sources indices from its own render of the same sequence,
// but the operations still bounds-check rather than trust the caller.

// Append returns seq with block inserted at the end.
func Append(seq []models.ContentBlock, block models.ContentBlock) []models.ContentBlock {
	out := make([]models.ContentBlock, len(seq), len(seq)+1)
	copy(out, seq)
	return append(out, block)
}

// MoveUp swaps the block at index with its predecessor. Index 0 and
// out-of-range indices return the input unchanged.
func MoveUp(seq []models.ContentBlock, index int) []models.ContentBlock {
	if index <= 0 || index >= len(seq) {
		return seq
	}
	return swap(seq, index, index-1)
}

// MoveDown swaps the block at index with its successor. The last index
// and out-of-range indices return the input unchanged.
func MoveDown(seq []models.ContentBlock, index int) []models.ContentBlock {
	if index < 0 || index >= len(seq)-1 {
		return seq
	}
	return swap(seq, index, index+1)
}

// Remove removes the first block whose id matches. Absent ids are a
// forgiving no-op.
func Remove(seq []models.ContentBlock, blockID string) []models.ContentBlock {
	for i, b := range seq {
		if b.ID == blockID {
			out := make([]models.ContentBlock, 0, len(seq)-1)
			out = append(out, seq[:i]...)
			return append(out, seq[i+1:]...)
		}
	}
	return seq
}

// UpdateField replaces the block at index with the result of applying
// mutate to a deep copy of it. The original block value is never
// touched, which is what change-detection-driven persistence relies
// on. Out-of-range indices are a no-op.
func UpdateField(seq []models.ContentBlock, index int, mutate func(*models.ContentBlock)) []models.ContentBlock {
	if index < 0 || index >= len(seq) || mutate == nil {
		return seq
	}
	out := make([]models.ContentBlock, len(seq))
	copy(out, seq)
	edited := seq[index].Clone()
	mutate(&edited)
	out[index] = edited
	return out
}

func swap(seq []models.ContentBlock, i, j int) []models.ContentBlock {
	out := make([]models.ContentBlock, len(seq))
	copy(out, seq)
	out[i], out[j] = out[j], out[i]
	return out
}
