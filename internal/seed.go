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
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// DeriveSeed maps a top-level seed and a structure index to an independent
// sub-seed. A sketch derives one sub-seed per nested structure (row, hash
// function) by counting indexes up from zero, so the same top-level seed
// always reproduces the same sketch behavior bit for bit.
func DeriveSeed(seed int64, index uint64) int64 {
	var scratch [8]byte
	binary.LittleEndian.PutUint64(scratch[:], index)
	h := xxhash.NewWithSeed(uint64(seed))
	_, _ = h.Write(scratch[:])
	return int64(h.Sum64())
}
