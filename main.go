package main

import (
	"context"
	"fmt"
	"github.com/alecthomas/kingpin/v2"
	"github.com/blaubaer/cw-keyer/pkg/app"
	log "github.com/echocat/slf4g"
	"github.com/echocat/slf4g/native"
	"github.com/echocat/slf4g/native/consumer"
	"github.com/echocat/slf4g/native/facade/value"
	"github.com/echocat/slf4g/native/formatter"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	consumer.Default = consumer.NewWriter(os.Stderr)

	lv := value.NewProvider(native.DefaultProvider)
	lv.Consumer.Formatter.Codec = value.MappingFormatterCodec{
		"text": formatter.NewText(func(v *formatter.Text) {
			bv := true
			v.AllowMultiLineMessage = &bv
			v.MultiLineMessageAfterFields = &bv
		}),
		"json": formatter.NewJson(),
	}

	a := app.NewApp()

	cmd := kingpin.New(os.Args[0], "Iambic CW keyer with side tone and live decoding.")
	a.SetupConfiguration(cmd)

	cmd.Command("run", "Starts the keyer.").
		Default().
		Action(func(*kingpin.ParseContext) error {
			return run(a)
		})
	cmd.Command("configuration", "Prints the effective configuration as YAML.").
		Action(func(*kingpin.ParseContext) error {
			return a.PrintConfiguration(os.Stdout)
		})

	cmd.Flag("log.level", "").
		SetValue(lv.Level)
	cmd.Flag("log.format", "").
		Default("text").
		SetValue(lv.Consumer.Formatter)
	cmd.Flag("log.color", "").
		Default("auto").
		SetValue(lv.Consumer.Formatter.ColorMode)

	kingpin.MustParse(cmd.Parse(os.Args[1:]))
}

func run(a *app.App) (rErr error) {
	if err := a.Initialize(); err != nil {
		return err
	}
	defer func() {
		if err := a.Dispose(); err != nil && rErr == nil {
			rErr = err
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(c)
		select {
		case <-c:
			log.Info("Terminated. Going down...")
			cancel()
		case <-ctx.Done():
		}
	}()

	_, _ = fmt.Fprintf(a.Output, "MIDI CW Keyer, %d WPM\n", a.Configuration().Wpm)

	return a.Run(ctx)
}
