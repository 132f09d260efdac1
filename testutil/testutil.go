package testutil

import (
	"math/rand"
	"slices"
	"strconv"
	"sync"

	"github.com/hupe1980/vecsdk/entity"
)

// Field names used by Hits.
const (
	PKField     = "pk"
	VectorField = "embedding"
	TitleField  = "title"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// FillUniform fills dst with random values in range [0, 1).
// Locks only once per call (preferred over calling Float32 in a loop).
func (r *RNG) FillUniform(dst []float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.Float32()
	}
}

// UniformVectors generates random vectors with values in range [0, 1).
// Uses a single backing array, like a decoded wire payload.
func (r *RNG) UniformVectors(num int, dimensions int) [][]float32 {
	data := make([]float32, num*dimensions)
	r.FillUniform(data)

	vectors := make([][]float32, num)
	for i := 0; i < num; i++ {
		vectors[i] = data[i*dimensions : (i+1)*dimensions]
	}
	return vectors
}

// BinaryVectors generates packed bit vectors. dimBits must be a multiple of 8.
func (r *RNG) BinaryVectors(num int, dimBits int) [][]byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	size := dimBits / 8
	data := make([]byte, num*size)
	r.rand.Read(data) // nolint: gosec

	vectors := make([][]byte, num)
	for i := 0; i < num; i++ {
		vectors[i] = data[i*size : (i+1)*size]
	}
	return vectors
}

// Int64IDs returns n distinct positive IDs in random order.
func (r *RNG) Int64IDs(n int) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[int64]struct{}, n)
	ids := make([]int64, 0, n)
	for len(ids) < n {
		id := r.rand.Int63()
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// Scores returns n scores in descending order, as a similarity search
// returns them.
func (r *RNG) Scores(n int) []float32 {
	scores := make([]float32, n)
	r.FillUniform(scores)
	slices.Sort(scores)
	slices.Reverse(scores)
	return scores
}

// Hits builds n aligned search hits: integer IDs, descending scores and the
// output fields PKField, VectorField (dim-dimensional) and TitleField.
func (r *RNG) Hits(n, dim int) (entity.IDArray, []float32, []entity.Field) {
	ids := r.Int64IDs(n)
	titles := make([]string, n)
	for i, id := range ids {
		titles[i] = "doc-" + strconv.FormatInt(id, 10)
	}

	fields := []entity.Field{
		entity.NewInt64FieldDataFrom(PKField, slices.Clone(ids)),
		entity.NewFloatVecFieldDataFrom(VectorField, r.UniformVectors(n, dim)),
		entity.NewVarCharFieldDataFrom(TitleField, titles),
	}
	return entity.NewInt64IDs(ids), r.Scores(n), fields
}
