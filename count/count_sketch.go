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

	"golang.org/x/exp/constraints"

	"github.com/sbharg/countsketch-go/internal"
)

// CountSketch estimates point frequencies of a turnstile stream: each key's
// frequency may be incremented and decremented arbitrarily over time. It
// keeps numHashes independently hashed rows and answers queries with the
// median of the per-row estimates, which drives the failure probability
// down exponentially in the number of rows while any single row only
// succeeds with constant probability.
//
// K is the key type (unsigned, at most 32 bits) and C the counter type.
// A sketch is not safe for concurrent use.
type CountSketch[K Key, C constraints.Signed] struct {
	numHashes  int8
	numBuckets int32
	seed       int64
	rows       []*countSketchBase[C]
	scratch    []C // per-row estimates, reused across GetEstimate calls
}

// NewCountSketch returns a CountSketch with numHashes rows of numBuckets
// counters each. Every row derives its own sub-seed from seed, so two
// sketches built with the same parameters and seed behave identically.
func NewCountSketch[K Key, C constraints.Signed](numHashes int8, numBuckets int32, seed int64) (*CountSketch[K, C], error) {
	if numHashes < 1 {
		return nil, errors.New("numHashes must be at least 1")
	}
	if numBuckets < 1 {
		return nil, errors.New("numBuckets must be at least 1")
	}

	rows := make([]*countSketchBase[C], numHashes)
	for i := range rows {
		row, err := newCountSketchBase[C](numBuckets, pairwiseIndependence, internal.DeriveSeed(seed, uint64(i)))
		if err != nil {
			return nil, err
		}
		rows[i] = row
	}

	return &CountSketch[K, C]{
		numHashes:  numHashes,
		numBuckets: numBuckets,
		seed:       seed,
		rows:       rows,
		scratch:    make([]C, numHashes),
	}, nil
}

// GetNumHashes returns the number of rows.
func (c *CountSketch[K, C]) GetNumHashes() int8 {
	return c.numHashes
}

// GetNumBuckets returns the number of counters per row.
func (c *CountSketch[K, C]) GetNumBuckets() int32 {
	return c.numBuckets
}

// GetSeed returns the seed the sketch was built with.
func (c *CountSketch[K, C]) GetSeed() int64 {
	return c.seed
}

// Update adds weight to item's frequency in every row. Negative weights
// subtract. A zero weight leaves the sketch untouched.
func (c *CountSketch[K, C]) Update(item K, weight C) {
	key := uint32(item)
	for _, row := range c.rows {
		row.update(key, weight)
	}
}

// GetEstimate returns the median of the per-row estimates for item. For an
// even row count the upper of the two middle values is taken. A key never
// updated returns whatever collision noise its buckets hold, typically
// near zero.
func (c *CountSketch[K, C]) GetEstimate(item K) C {
	key := uint32(item)
	for i, row := range c.rows {
		c.scratch[i] = row.estimate(key)
	}
	d := len(c.scratch)
	return internal.QuickSelect(c.scratch, 0, d-1, d/2)
}
