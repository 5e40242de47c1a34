package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"git.lost.host/meutraa/arcview/internal/config"
	"git.lost.host/meutraa/arcview/internal/input"
)

func main() {
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

func run() error {
	if err := config.Parse(os.Args[1:]); nil != err {
		return err
	}

	p := &Program{}
	defer p.Deinit()
	if err := p.Init(); nil != err {
		return err
	}

	commands := make(chan input.Command, 16)
	closeInput, err := input.Listen(commands)
	if nil != err {
		return fmt.Errorf("unable to open keyboard: %w", err)
	}
	defer closeInput()

	if err := p.Renderer.Init(); nil != err {
		return err
	}
	defer func() {
		if err := p.Renderer.Deinit(); nil != err {
			log.Println("unable to restore terminal", err)
		}
	}()

	if err := p.Clock.Start(*config.Delay); nil != err {
		return err
	}

	rows, _ := p.Renderer.Size()
	p.Renderer.RenderLoop(*config.Delay, func(_ time.Time, _ time.Duration) bool {
		for i := len(commands); i > 0; i-- {
			switch <-commands {
			case input.Quit:
				return false
			case input.Pause:
				p.Clock.Pause()
			}
		}

		tick := p.Clock.Tick()
		if p.Ended(tick) {
			return false
		}
		p.Render(tick)
		if p.Clock.Paused() {
			p.Renderer.AddDecoration(1, rows, "paused", 0)
		}
		return true
	})

	return nil
}
