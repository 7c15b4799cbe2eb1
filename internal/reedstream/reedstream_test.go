/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package reedstream

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextSkipsBlankLines(t *testing.T) {
	s := New(strings.NewReader("\n12\n\n   \n28\n"))

	event, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, 12, event)

	event, ok = s.Next()
	require.True(t, ok)
	assert.Equal(t, 28, event)

	_, ok = s.Next()
	assert.False(t, ok)
}

func TestNextSkipsMalformedLinesInsteadOfFailing(t *testing.T) {
	s := New(strings.NewReader("not-a-number\n12\n"))

	event, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, 12, event)

	_, ok = s.Next()
	assert.False(t, ok)
	assert.NoError(t, s.Err())
}

func TestNextReturnsBoundarySentinelVerbatim(t *testing.T) {
	s := New(strings.NewReader("-1\n"))

	event, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, Boundary, event)
}

func TestNextFalseOnEmptyStream(t *testing.T) {
	s := New(strings.NewReader(""))

	_, ok := s.Next()
	assert.False(t, ok)
}
