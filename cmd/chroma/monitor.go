package main

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pdf/gochroma"
	"github.com/pdf/gochroma/common"
)

var (
	flagScanDuration time.Duration

	cmdMonitor = &cobra.Command{
		Use:   `monitor`,
		Short: "print stable-color changes from samples read on stdin",
		Run:   monitor,
	}

	cmdScan = &cobra.Command{
		Use:   `scan`,
		Short: "derive a color spec from samples read on stdin",
		Run:   scan,
	}
)

func init() {
	cmdScan.Flags().DurationVarP(&flagScanDuration, `duration`, `d`, 5*time.Second, `how long to accumulate samples`)
}

// lineSource reads `R,G,B` triplets from stdin, one per line, and repeats
// the last good reading once the stream dries up or a line fails to parse.
type lineSource struct {
	scanner *bufio.Scanner
	last    common.Color
	sync.Mutex
}

func newLineSource() *lineSource {
	return &lineSource{scanner: bufio.NewScanner(os.Stdin)}
}

// Sample satisfies common.SampleSource.
func (s *lineSource) Sample() common.Color {
	s.Lock()
	defer s.Unlock()
	if !s.scanner.Scan() {
		return s.last
	}
	color, err := parseColor(strings.TrimSpace(s.scanner.Text()))
	if err != nil {
		logger.WithField(`error`, err).Warnln(`Skipping bad sample line`)
		return s.last
	}
	s.last = color
	return s.last
}

func parseColor(line string) (common.Color, error) {
	parts := strings.Split(line, `,`)
	if len(parts) != 3 {
		return common.Color{}, fmt.Errorf(`expected R,G,B, got %q`, line)
	}
	var channels [3]uint8
	for i, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return common.Color{}, err
		}
		channels[i] = uint8(v)
	}
	return common.Color{R: channels[0], G: channels[1], B: channels[2]}, nil
}

func setupController() *gochroma.Controller {
	controller, err := gochroma.NewController(newLineSource())
	if err != nil {
		logger.WithField(`error`, err).Fatalln(`Failed initializing controller`)
	}
	err = controller.Configure(gochroma.Config{
		Stability:       flagStability,
		SampleFrequency: flagFrequency,
	})
	if err != nil {
		logger.WithField(`error`, err).Fatalln(`Failed configuring controller`)
	}
	return controller
}

func monitor(c *cobra.Command, args []string) {
	controller := setupController()
	defer func() { _ = controller.Close() }()

	sub, err := controller.NewSubscription()
	if err != nil {
		logger.WithField(`error`, err).Fatalln(`Failed subscribing`)
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	for {
		select {
		case <-interrupt:
			return
		case event := <-sub.Events():
			if update, ok := event.(common.EventUpdateColor); ok {
				fmt.Printf("%d,%d,%d\n", update.Color.R, update.Color.G, update.Color.B)
			}
		}
	}
}

func scan(c *cobra.Command, args []string) {
	controller := setupController()
	defer func() { _ = controller.Close() }()

	s, err := controller.StartScan(flagFrequency)
	if err != nil {
		logger.WithField(`error`, err).Fatalln(`Failed starting scan`)
	}
	time.Sleep(flagScanDuration)
	s.Stop()

	spec, err := s.ColorSpec()
	if err != nil {
		logger.WithFields(logrus.Fields{
			`error`: err,
			`count`: s.Count(),
		}).Fatalln(`Scan accumulated no usable samples`)
	}
	fmt.Printf("r: %d±%d g: %d±%d b: %d±%d (%d samples)\n",
		spec.R.Value, spec.R.Tolerance,
		spec.G.Value, spec.G.Tolerance,
		spec.B.Value, spec.B.Tolerance,
		s.Count())
}
