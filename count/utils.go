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
)

func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// SuggestNumBuckets returns the CountMinSketch width that keeps the
// over-count within relativeError times the total stream weight:
// ceil(e/relativeError). relativeError must lie in (0, 1).
func SuggestNumBuckets(relativeError float64) (int32, error) {
	if relativeError <= 0 || relativeError >= 1 {
		return 0, errors.New("relativeError must be in range (0, 1)")
	}
	return int32(math.Ceil(math.E / relativeError)), nil
}

// SuggestNumHashes returns the CountMinSketch depth that caps the failure
// probability at errorProbability: ceil(ln(1/errorProbability)), clamped
// to the int8 depth range. errorProbability must lie in (0, 1).
func SuggestNumHashes(errorProbability float64) (int8, error) {
	if errorProbability <= 0 || errorProbability >= 1 {
		return 0, errors.New("errorProbability must be in range (0, 1)")
	}
	return int8(Min(int(math.Ceil(math.Log(1.0/errorProbability))), math.MaxInt8)), nil
}
