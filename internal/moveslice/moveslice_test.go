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

package moveslice

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/kopptal/chesscore/internal/types"
)

var (
	e2e4 = CreateMoveValue(SqE2, SqE4, Normal, PtNone, 111)
	d7d5 = CreateMoveValue(SqD7, SqD5, Normal, PtNone, 222)
	e4d5 = CreateMoveValue(SqE4, SqD5, Normal, PtNone, 333)
	d8d5 = CreateMoveValue(SqD8, SqD5, Normal, PtNone, 444)
	b1c3 = CreateMoveValue(SqB1, SqC3, Normal, PtNone, 555)
)

func TestNew(t *testing.T) {
	ms := NewMoveSlice(MaxMoves)
	assert.Equal(t, 0, len(*ms))
	assert.Equal(t, MaxMoves, cap(*ms))
}

func TestPushBack(t *testing.T) {
	ms := NewMoveSlice(MaxMoves)
	ms.PushBack(e2e4)
	ms.PushBack(d7d5)
	ms.PushBack(e4d5)
	ms.PushBack(d8d5)
	ms.PushBack(b1c3)

	assert.Equal(t, 5, len(*ms))
	assert.Equal(t, MaxMoves, cap(*ms))
}

func TestPopBack(t *testing.T) {
	ms := NewMoveSlice(MaxMoves)
	assert.Panics(t, func() { ms.PopBack() })

	ms.PushBack(e2e4)
	ms.PushBack(d7d5)
	ms.PushBack(e4d5)
	ms.PushBack(d8d5)
	ms.PushBack(b1c3)

	m1 := ms.PopBack()
	assert.Equal(t, b1c3, m1)
	m2 := ms.PopBack()
	assert.Equal(t, d8d5, m2)
	assert.Equal(t, 3, len(*ms))
}

func TestPushFront(t *testing.T) {
	ms := NewMoveSlice(MaxMoves)
	ms.PushFront(e2e4)
	ms.PushFront(d7d5)
	ms.PushFront(e4d5)
	ms.PushFront(d8d5)
	ms.PushFront(b1c3)

	assert.Equal(t, 5, len(*ms))
	assert.Equal(t, b1c3, ms.Front())
}

func TestPopFront(t *testing.T) {
	ms := NewMoveSlice(MaxMoves)
	assert.Panics(t, func() { ms.PopFront() })
	ms.PushFront(e2e4)
	ms.PushFront(d7d5)
	ms.PushFront(e4d5)
	ms.PushFront(d8d5)
	ms.PushFront(b1c3)

	m1 := ms.PopFront()
	assert.Equal(t, b1c3, m1)
	m2 := ms.PopFront()
	assert.Equal(t, d8d5, m2)
	assert.Equal(t, 3, len(*ms))
}

func TestClear(t *testing.T) {
	ms := NewMoveSlice(MaxMoves)
	ms.PushBack(e2e4)
	ms.PushBack(d7d5)
	assert.Equal(t, 2, len(*ms))
	ms.Clear()
	assert.Equal(t, 0, len(*ms))
	assert.Equal(t, MaxMoves, cap(*ms))
}

func TestAccess(t *testing.T) {
	ms := NewMoveSlice(MaxMoves)
	ms.PushBack(e2e4)
	ms.PushBack(d7d5)
	ms.PushBack(e4d5)
	ms.PushBack(d8d5)
	ms.PushBack(b1c3)

	assert.Equal(t, e2e4, ms.Front())
	assert.Equal(t, ms.At(0), ms.Front())
	assert.Equal(t, b1c3, ms.Back())
	assert.Equal(t, ms.At(len(*ms)-1), ms.Back())
	ms.Set(0, b1c3)
	assert.Equal(t, b1c3, ms.Front())
}

func TestString(t *testing.T) {
	ms := NewMoveSlice(MaxMoves)
	ms.PushBack(e2e4)
	ms.PushBack(d7d5)
	ms.PushBack(e4d5)
	ms.PushBack(d8d5)
	ms.PushBack(b1c3)
	assert.Equal(t, "e2e4 d7d5 e4d5 d8d5 b1c3", ms.StringUci())
}

func TestSortRandom(t *testing.T) {
	ms := NewMoveSlice(MaxMoves)
	items := 10_000
	for i := 0; i < items; i++ {
		ms.PushBack(Move(rand.Int31()))
	}

	ms.Sort()

	tmp := ms.At(0)
	for i := 0; i < items; i++ {
		assert.True(t, tmp.ValueOf() >= ms.At(i).ValueOf())
		tmp = ms.At(i)
	}
}

func TestFilter(t *testing.T) {
	ms := NewMoveSlice(MaxMoves)
	ms.PushBack(e2e4)
	ms.PushBack(d7d5)
	ms.PushBack(e4d5)
	ms.PushBack(d8d5)
	ms.PushBack(b1c3)

	ms.Filter(func(i int) bool {
		return ms.At(i) != e4d5
	})

	assert.Equal(t, 4, len(*ms))
	assert.Equal(t, "e2e4 d7d5 d8d5 b1c3", ms.StringUci())
}

func TestFilterCopy(t *testing.T) {
	ms := NewMoveSlice(MaxMoves)
	ms.PushBack(e2e4)
	ms.PushBack(d7d5)
	ms.PushBack(e4d5)
	ms.PushBack(d8d5)
	ms.PushBack(b1c3)

	ms2 := NewMoveSlice(cap(*ms))
	ms.FilterCopy(ms2, func(i int) bool {
		return ms.At(i) != e4d5
	})

	assert.Equal(t, 5, len(*ms))
	assert.Equal(t, 4, len(*ms2))
	assert.Equal(t, "e2e4 d7d5 d8d5 b1c3", ms2.StringUci())
}

func TestForEachParallel(t *testing.T) {
	noOfItems := 1_000
	ms := NewMoveSlice(noOfItems)
	for i := 0; i < noOfItems; i++ {
		ms.PushBack(e2e4)
	}

	var mux sync.Mutex
	var counter int

	ms.ForEachParallel(func(i int) {
		m := ms.At(i)
		ms.Set(i, CreateMoveValue(m.From(), m.To(), m.MoveType(), m.PromotionType(), Value(999)))
		mux.Lock()
		counter++
		mux.Unlock()
	})

	assert.Equal(t, noOfItems, counter)
	assert.Equal(t, Value(999), ms.Front().ValueOf())
	assert.Equal(t, Value(999), ms.Back().ValueOf())
}
