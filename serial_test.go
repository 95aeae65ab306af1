package toolbelt

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestSerialOrder(t *testing.T) {
	var calls []string
	record := func(name string) { calls = append(calls, name) }
	join := func(parts ...string) {
		for _, p := range parts {
			record(p)
		}
	}

	run := Serial(
		Func(func() { record("first") }),
		nil,
		Call1(record, "second"),
		Func(nil),
		Call(join, "third", "fourth"),
		Call2(func(a string, n int) {
			for i := 0; i < n; i++ {
				record(a)
			}
		}, "fifth", 2),
	)

	assert.Zero(t, len(calls))
	run()
	assert.Equal(t, []string{"first", "second", "third", "fourth", "fifth", "fifth"}, calls)
}

func TestSerialReplays(t *testing.T) {
	count := 0
	args := []int{1, 2}
	run := Serial(Call(func(n ...int) {
		for _, v := range n {
			count += v
		}
	}, args...))

	args[0] = 100
	run()
	run()
	assert.Equal(t, 6, count)
}

func TestSerialEmpty(t *testing.T) {
	Serial()()
	Serial(nil, nil)()
}

func TestSerialPanicStopsRun(t *testing.T) {
	var calls []int
	run := Serial(
		Func(func() { calls = append(calls, 1) }),
		Func(func() { panic("boom") }),
		Func(func() { calls = append(calls, 3) }),
	)

	func() {
		defer func() {
			assert.Equal(t, any("boom"), recover())
		}()
		run()
	}()
	assert.Equal(t, []int{1}, calls)
}

func TestNilCallables(t *testing.T) {
	assert.True(t, Call[int](nil) == nil)
	assert.True(t, Call1[int](nil, 1) == nil)
	assert.True(t, Call2[int, int](nil, 1, 2) == nil)
}
