/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package count

import (
	"errors"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/sbharg/countsketch-go/internal"
)

// countMinSketchBase is one unsigned row: a counter array and a
// pairwise-independent index hash, with no sign hash. Because every
// contribution is added with positive sign, collisions can only inflate a
// bucket, never deflate it.
type countMinSketchBase[C constraints.Signed] struct {
	numBuckets int32
	counters   []C
	indexHash  *internal.KWiseHash
}

func newCountMinSketchBase[C constraints.Signed](numBuckets int32, seed int64) (*countMinSketchBase[C], error) {
	if numBuckets < 1 {
		return nil, errors.New("numBuckets must be at least 1")
	}

	indexHash, err := internal.NewKWiseHash(pairwiseIndependence, internal.DeriveSeed(seed, 0))
	if err != nil {
		return nil, err
	}

	return &countMinSketchBase[C]{
		numBuckets: numBuckets,
		counters:   make([]C, numBuckets),
		indexHash:  indexHash,
	}, nil
}

func (b *countMinSketchBase[C]) indexOf(key uint32) int32 {
	return int32(b.indexHash.Hash(key) % uint64(b.numBuckets))
}

func (b *countMinSketchBase[C]) update(key uint32, weight C) {
	if weight == 0 {
		return
	}
	b.counters[b.indexOf(key)] += weight
}

func (b *countMinSketchBase[C]) estimate(key uint32) C {
	return b.counters[b.indexOf(key)]
}

// CountMinSketch estimates point frequencies of a stream whose true
// cumulative frequency stays non-negative for every key at all times.
// Negative weights are allowed as long as they never take a key's true
// frequency below zero. Under that restriction every row's bucket is an
// upper bound on the key's frequency, so the minimum across rows is the
// tightest estimate: it never under-counts, and with probability at least
// 1-errorProbability it over-counts by at most relativeError times the
// stream's total weight.
//
// K is the key type (unsigned, at most 32 bits) and C the counter type.
// A sketch is not safe for concurrent use.
type CountMinSketch[K Key, C constraints.Signed] struct {
	numHashes   int8
	numBuckets  int32
	seed        int64
	totalWeight C
	rows        []*countMinSketchBase[C]
}

// NewCountMinSketch returns a CountMinSketch with numHashes rows of
// numBuckets counters each. Every row derives its own sub-seed from seed,
// so two sketches built with the same parameters and seed behave
// identically.
func NewCountMinSketch[K Key, C constraints.Signed](numHashes int8, numBuckets int32, seed int64) (*CountMinSketch[K, C], error) {
	if numHashes < 1 {
		return nil, errors.New("numHashes must be at least 1")
	}
	if numBuckets < 1 {
		return nil, errors.New("numBuckets must be at least 1")
	}

	rows := make([]*countMinSketchBase[C], numHashes)
	for i := range rows {
		row, err := newCountMinSketchBase[C](numBuckets, internal.DeriveSeed(seed, uint64(i)))
		if err != nil {
			return nil, err
		}
		rows[i] = row
	}

	return &CountMinSketch[K, C]{
		numHashes:  numHashes,
		numBuckets: numBuckets,
		seed:       seed,
		rows:       rows,
	}, nil
}

// NewCountMinSketchFromAccuracy sizes the sketch from its accuracy
// guarantee instead of raw dimensions: numBuckets = ceil(e/relativeError)
// and numHashes = ceil(ln(1/errorProbability)). Both parameters must lie
// in (0, 1).
func NewCountMinSketchFromAccuracy[K Key, C constraints.Signed](relativeError, errorProbability float64, seed int64) (*CountMinSketch[K, C], error) {
	numBuckets, err := SuggestNumBuckets(relativeError)
	if err != nil {
		return nil, err
	}
	numHashes, err := SuggestNumHashes(errorProbability)
	if err != nil {
		return nil, err
	}
	return NewCountMinSketch[K, C](numHashes, numBuckets, seed)
}

// GetNumHashes returns the number of rows.
func (c *CountMinSketch[K, C]) GetNumHashes() int8 {
	return c.numHashes
}

// GetNumBuckets returns the number of counters per row.
func (c *CountMinSketch[K, C]) GetNumBuckets() int32 {
	return c.numBuckets
}

// GetSeed returns the seed the sketch was built with.
func (c *CountMinSketch[K, C]) GetSeed() int64 {
	return c.seed
}

// GetTotalWeight returns the sum of the absolute weights of all updates.
func (c *CountMinSketch[K, C]) GetTotalWeight() C {
	return c.totalWeight
}

// GetRelativeError returns e/numBuckets, the factor of the total weight
// by which an estimate can over-count with high probability.
func (c *CountMinSketch[K, C]) GetRelativeError() float64 {
	return math.E / float64(c.numBuckets)
}

// Update adds weight to item's frequency in every row. A zero weight is a
// no-op. The caller must keep every key's cumulative frequency
// non-negative for the estimate guarantees to hold.
func (c *CountMinSketch[K, C]) Update(item K, weight C) {
	if weight == 0 {
		return
	}

	if weight < 0 {
		c.totalWeight += -weight
	} else {
		c.totalWeight += weight
	}

	key := uint32(item)
	for _, row := range c.rows {
		row.update(key, weight)
	}
}

// GetEstimate returns the minimum of the per-row estimates for item. It
// never under-counts the true frequency.
func (c *CountMinSketch[K, C]) GetEstimate(item K) C {
	key := uint32(item)
	estimate := c.rows[0].estimate(key)
	for _, row := range c.rows[1:] {
		estimate = Min(estimate, row.estimate(key))
	}
	return estimate
}

// GetUpperBound returns an estimate that holds with probability at least
// 1-errorProbability: the point estimate plus the sketch's relative error
// share of the total stream weight.
func (c *CountMinSketch[K, C]) GetUpperBound(item K) C {
	return c.GetEstimate(item) + C(c.GetRelativeError()*float64(c.totalWeight))
}

// GetLowerBound returns the point estimate itself, which already never
// under-counts.
func (c *CountMinSketch[K, C]) GetLowerBound(item K) C {
	return c.GetEstimate(item)
}
