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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveSeedDeterminism(t *testing.T) {
	assert.Equal(t, DeriveSeed(42, 0), DeriveSeed(42, 0))
	assert.Equal(t, DeriveSeed(-7, 13), DeriveSeed(-7, 13))
}

func TestDeriveSeedIndexSensitivity(t *testing.T) {
	seen := make(map[int64]bool)
	for i := uint64(0); i < 100; i++ {
		seen[DeriveSeed(42, i)] = true
	}
	assert.Equal(t, 100, len(seen), "sub-seeds for distinct indexes should be distinct")
}

func TestDeriveSeedSeedSensitivity(t *testing.T) {
	assert.NotEqual(t, DeriveSeed(1, 0), DeriveSeed(2, 0))
}
