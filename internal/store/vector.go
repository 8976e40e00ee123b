package store

import (
	"hash/fnv"
	"math"
	"strings"
)

// VectorDims is the width of the title_vec column.
const VectorDims = 64

// TitleVector hashes the character trigrams of a title into a fixed-width,
// L2-normalized vector. Titles sharing many trigrams end up close in cosine
// distance. Returns nil for a blank title.
func TitleVector(title string) []float32 {
	norm := strings.Join(strings.Fields(strings.ToLower(title)), " ")
	if norm == "" {
		return nil
	}

	runes := []rune(" " + norm + " ")
	vec := make([]float32, VectorDims)
	h := fnv.New32a()
	for i := 0; i+3 <= len(runes); i++ {
		h.Reset()
		h.Write([]byte(string(runes[i : i+3])))
		vec[h.Sum32()%VectorDims]++
	}

	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	length := float32(math.Sqrt(sum))
	for i := range vec {
		vec[i] /= length
	}
	return vec
}
