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

import "math/bits"

// MersennePrime is 2^61 - 1, the modulus of the field all hash arithmetic
// is carried out in. The Mersenne form lets Reduce fold a 128-bit product
// back into the field with shifts and adds instead of a division.
const MersennePrime uint64 = (1 << 61) - 1

// Reduce maps a 128-bit value, given as high and low 64-bit halves, into
// [0, 2^61-1) using the identity 2^61 = 1 (mod p). The input must be a
// product of two 64-bit values, which keeps the folded sum below 2p.
func Reduce(hi, lo uint64) uint64 {
	lo61 := lo & MersennePrime
	hi61 := (lo >> 61) + (hi << 3) + (hi >> 58)
	sum := lo61 + hi61
	if sum >= MersennePrime {
		sum -= MersennePrime
	}
	return sum
}

// Mul returns a*b mod 2^61-1 for arbitrary 64-bit operands.
func Mul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return Reduce(hi, lo)
}
