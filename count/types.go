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

// Key constrains sketch keys to unsigned integers no wider than 32 bits.
// The hash layer evaluates its polynomials at the key's 32-bit value, so
// wider key types cannot be supported without weakening the independence
// guarantees.
type Key interface {
	~uint8 | ~uint16 | ~uint32
}

const (
	// pairwiseIndependence is the hash independence used for bucket
	// indexing and for frequency-estimation signs.
	pairwiseIndependence = 2
	// fourwiseIndependence is required for the L2 estimator's sign hash;
	// its variance bound depends on the fourth moment of the signs.
	fourwiseIndependence = 4
)
