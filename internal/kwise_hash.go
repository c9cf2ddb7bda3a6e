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

package internal

import (
	"errors"
	"math/rand"
)

// KWiseHash is a k-wise independent hash function in the Carter-Wegman
// style: a random polynomial of degree k-1 over GF(2^61-1), evaluated at
// the key. Any k distinct keys hash as if drawn independently and
// uniformly at random, which is what the sketch error bounds rest on.
//
// The coefficients are fixed at construction and the function is pure
// afterwards, so the same (k, seed) pair always yields the same mapping.
type KWiseHash struct {
	coefficients []uint64
}

// NewKWiseHash builds a k-wise independent hash function whose
// coefficients are drawn from a generator seeded with seed.
// k must be at least 1.
func NewKWiseHash(k int, seed int64) (*KWiseHash, error) {
	if k < 1 {
		return nil, errors.New("independence k must be at least 1")
	}

	rng := rand.New(rand.NewSource(seed))
	coefficients := make([]uint64, k)
	for i := range coefficients {
		coefficients[i] = rng.Uint64() % MersennePrime
	}

	return &KWiseHash{coefficients: coefficients}, nil
}

// GetCoefficientCount returns the independence order k.
func (h *KWiseHash) GetCoefficientCount() int {
	return len(h.coefficients)
}

// Hash evaluates the polynomial at key using Horner's method, starting
// from the highest-degree coefficient. The result is a field element in
// [0, 2^61-1).
func (h *KWiseHash) Hash(key uint32) uint64 {
	k := len(h.coefficients)
	acc := h.coefficients[k-1]
	for i := k - 2; i >= 0; i-- {
		acc = Mul(acc, uint64(key)) + h.coefficients[i]
		if acc >= MersennePrime {
			acc -= MersennePrime
		}
	}
	return acc
}
