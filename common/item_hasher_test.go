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

package common

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringItemHasher(t *testing.T) {
	var hasher StringItemHasher
	assert.Equal(t, hasher.Hash("apple"), hasher.Hash("apple"))
	assert.NotEqual(t, hasher.Hash("apple"), hasher.Hash("banana"))

	seen := make(map[uint64]bool)
	for i := 0; i < 1000; i++ {
		seen[hasher.Hash(fmt.Sprintf("item_%d", i))] = true
	}
	assert.Equal(t, 1000, len(seen))
}

func TestStringItemHasherEmpty(t *testing.T) {
	var hasher StringItemHasher
	assert.Equal(t, hasher.Hash(""), hasher.Hash(""))
}

func TestLongItemHasher(t *testing.T) {
	var hasher LongItemHasher
	assert.Equal(t, hasher.Hash(42), hasher.Hash(42))
	assert.NotEqual(t, hasher.Hash(42), hasher.Hash(43))
	assert.NotEqual(t, hasher.Hash(1), hasher.Hash(-1))
}
