package input

import (
	"testing"
	"time"

	"github.com/eiannone/keyboard"
)

type commandTest struct {
	Key      keyboard.Key
	Rune     rune
	Expected Command
}

var commandTests = []commandTest{
	{keyboard.KeyEsc, 0, Quit},
	{keyboard.KeyCtrlC, 0, Quit},
	{0, 'q', Quit},
	{keyboard.KeySpace, 0, Pause},
	{0, 'p', Pause},
	{0, 'x', None},
	{keyboard.KeyEnter, 0, None},
}

func TestCommandFor(t *testing.T) {
	for _, test := range commandTests {
		if got := CommandFor(test.Key, test.Rune); got != test.Expected {
			t.Log("Key     ", test.Key, string(test.Rune))
			t.Log("Command ", got)
			t.Log("Expected", test.Expected)
			t.Fail()
		}
	}
}

func TestForward(t *testing.T) {
	keys := make(chan keyboard.KeyEvent, 3)
	commands := make(chan Command, 1)
	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		forward(keys, commands, done)
		close(finished)
	}()

	keys <- keyboard.KeyEvent{Rune: 'x'}
	keys <- keyboard.KeyEvent{Key: keyboard.KeySpace}
	if c := <-commands; c != Pause {
		t.Errorf("expected pause, got %v", c)
	}

	// Nobody drains commands any more, forward must still stop.
	keys <- keyboard.KeyEvent{Key: keyboard.KeyEsc}
	keys <- keyboard.KeyEvent{Key: keyboard.KeyEsc}
	close(done)

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("forward still blocked after done was closed")
	}
}

func TestForwardStopsWithKeys(t *testing.T) {
	keys := make(chan keyboard.KeyEvent)
	finished := make(chan struct{})
	go func() {
		forward(keys, make(chan Command), make(chan struct{}))
		close(finished)
	}()
	close(keys)

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("forward still running after the keyboard closed")
	}
}
