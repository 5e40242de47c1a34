package input

import (
	"log"

	"github.com/eiannone/keyboard"
)

type Command uint8

const (
	None Command = iota
	Quit
	Pause
)

// CommandFor maps a key press to a viewer command.
func CommandFor(key keyboard.Key, r rune) Command {
	switch {
	case key == keyboard.KeyEsc || key == keyboard.KeyCtrlC || r == 'q':
		return Quit
	case key == keyboard.KeySpace || r == 'p':
		return Pause
	}
	return None
}

// Listen opens the keyboard and sends a command for every recognised key
// press. The returned function restores the terminal and stops sending.
func Listen(commands chan<- Command) (func(), error) {
	keys, err := keyboard.GetKeys(16)
	if nil != err {
		return nil, err
	}
	done := make(chan struct{})
	go forward(keys, commands, done)
	return func() {
		close(done)
		if err := keyboard.Close(); nil != err {
			log.Println("unable to close keyboard", err)
		}
	}, nil
}

// forward runs until keys is closed or done is closed, whichever is first.
func forward(keys <-chan keyboard.KeyEvent, commands chan<- Command, done <-chan struct{}) {
	for {
		var event keyboard.KeyEvent
		select {
		case <-done:
			return
		case e, ok := <-keys:
			if !ok {
				return
			}
			event = e
		}
		if nil != event.Err {
			log.Println("unable to read key", event.Err)
			continue
		}
		c := CommandFor(event.Key, event.Rune)
		if c == None {
			continue
		}
		select {
		case commands <- c:
		case <-done:
			return
		}
	}
}
