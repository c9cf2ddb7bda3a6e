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

// L2Estimator approximates the squared L2 norm of a turnstile stream's
// frequency vector, i.e. the sum over all keys of frequency(key)^2. It is
// a single signed row whose sign hash is 4-wise independent; the expected
// sum of squared counters equals the true squared norm exactly, and the
// width chosen from relativeError bounds the variance so a single estimate
// lands within (1 +- relativeError) of the truth with probability at least
// 3/4. Callers wanting higher confidence run several estimators with
// independent seeds and take the median.
type L2Estimator[K Key, C constraints.Signed] struct {
	relativeError float64
	numBuckets    int32
	seed          int64
	row           *countSketchBase[C]
}

// NewL2Estimator returns an L2Estimator with numBuckets =
// ceil(6/relativeError^2). relativeError must lie in (0, 1).
func NewL2Estimator[K Key, C constraints.Signed](relativeError float64, seed int64) (*L2Estimator[K, C], error) {
	if relativeError <= 0 || relativeError >= 1 {
		return nil, errors.New("relativeError must be in range (0, 1)")
	}

	numBuckets := int32(math.Ceil(6.0 / (relativeError * relativeError)))
	row, err := newCountSketchBase[C](numBuckets, fourwiseIndependence, internal.DeriveSeed(seed, 0))
	if err != nil {
		return nil, err
	}

	return &L2Estimator[K, C]{
		relativeError: relativeError,
		numBuckets:    numBuckets,
		seed:          seed,
		row:           row,
	}, nil
}

// GetNumBuckets returns the counter array width derived from relativeError.
func (l *L2Estimator[K, C]) GetNumBuckets() int32 {
	return l.numBuckets
}

// GetRelativeError returns the accuracy parameter the width was sized for.
func (l *L2Estimator[K, C]) GetRelativeError() float64 {
	return l.relativeError
}

// GetSeed returns the seed the estimator was built with.
func (l *L2Estimator[K, C]) GetSeed() int64 {
	return l.seed
}

// Update adds weight to item's frequency. A zero weight is a no-op.
func (l *L2Estimator[K, C]) Update(item K, weight C) {
	l.row.update(uint32(item), weight)
}

// GetEstimate returns the sum of squared counters, the estimate of the
// squared L2 norm of the whole frequency vector.
func (l *L2Estimator[K, C]) GetEstimate() C {
	var sum C
	for _, counter := range l.row.counters {
		sum += counter * counter
	}
	return sum
}
