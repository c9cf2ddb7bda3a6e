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

// countSketchBase is one signed row of a CountSketch: a counter array, a
// pairwise-independent index hash routing each key to a bucket, and a sign
// hash mapping each key to +-1. Scattering keys into random buckets with
// random signs makes the bucket sum an unbiased estimate of
// sign(key)*frequency(key) for every key landing in it.
type countSketchBase[C constraints.Signed] struct {
	numBuckets int32
	counters   []C
	indexHash  *internal.KWiseHash
	signHash   *internal.KWiseHash
}

// newCountSketchBase builds one row of numBuckets zeroed counters. The
// index hash is always pairwise independent; the sign hash independence
// is chosen by the caller (2 for frequency estimation, 4 for L2).
func newCountSketchBase[C constraints.Signed](numBuckets int32, signIndependence int, seed int64) (*countSketchBase[C], error) {
	if numBuckets < 1 {
		return nil, errors.New("numBuckets must be at least 1")
	}

	indexHash, err := internal.NewKWiseHash(pairwiseIndependence, internal.DeriveSeed(seed, 0))
	if err != nil {
		return nil, err
	}
	signHash, err := internal.NewKWiseHash(signIndependence, internal.DeriveSeed(seed, 1))
	if err != nil {
		return nil, err
	}

	return &countSketchBase[C]{
		numBuckets: numBuckets,
		counters:   make([]C, numBuckets),
		indexHash:  indexHash,
		signHash:   signHash,
	}, nil
}

func (b *countSketchBase[C]) indexOf(key uint32) int32 {
	return int32(b.indexHash.Hash(key) % uint64(b.numBuckets))
}

// signOf maps the sign hash's low bit to -1 (even) or +1 (odd).
func (b *countSketchBase[C]) signOf(key uint32) C {
	if b.signHash.Hash(key)&1 == 1 {
		return 1
	}
	return -1
}

func (b *countSketchBase[C]) update(key uint32, weight C) {
	if weight == 0 {
		return
	}
	b.counters[b.indexOf(key)] += b.signOf(key) * weight
}

// estimate returns this row's raw point estimate for key. It is unbiased
// under the turnstile model but a single row can be far off when bucket
// collisions are unlucky; callers combine rows to control that.
func (b *countSketchBase[C]) estimate(key uint32) C {
	return b.signOf(key) * b.counters[b.indexOf(key)]
}
