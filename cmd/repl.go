package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"fxba/calculator"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Key-by-key calculator shell",
	Long: `Read keys from stdin, one whitespace-separated token per key.

  numbers     360  5.4  -100  .5
  keys        cpt sto rcl +/- bs ce cw bgn model up down ins del
  worksheets  ws:tvm ws:cf ws:bond ws:depr ws:stat ws:brkevn ws:profit ws:date
  variables   n i/y pv pmt fv npv irr ...

Example:
  360 n 5.4 i/y 250000 pv cpt pmt`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

// lineKeys reads stdin on its own goroutine and hands keys to the
// calculator loop through a channel.
type lineKeys struct {
	events chan calculator.KeyEvent
}

func newLineKeys(ctx context.Context, in io.Reader, errOut io.Writer) *lineKeys {
	k := &lineKeys{events: make(chan calculator.KeyEvent, 64)}
	go k.read(ctx, in, errOut)
	return k
}

func (k *lineKeys) read(ctx context.Context, in io.Reader, errOut io.Writer) {
	defer close(k.events)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		events, err := parseLine(scanner.Text())
		if err != nil {
			fmt.Fprintln(errOut, err)
			continue
		}
		for _, ev := range events {
			select {
			case k.events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (k *lineKeys) Poll() (calculator.KeyEvent, bool) {
	select {
	case ev, ok := <-k.events:
		return ev, ok
	default:
		return calculator.KeyEvent{}, false
	}
}

func (k *lineKeys) Wait(ctx context.Context) (calculator.KeyEvent, error) {
	select {
	case ev, ok := <-k.events:
		if !ok {
			return calculator.KeyEvent{}, io.EOF
		}
		return ev, nil
	case <-ctx.Done():
		return calculator.KeyEvent{}, ctx.Err()
	}
}

type systemClock struct {
	start time.Time
}

func (c systemClock) NowMs() uint64 {
	return uint64(time.Since(c.start).Milliseconds())
}

func (systemClock) SleepMs(ms uint32) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
}

// lineRenderer prints the indicators and display whenever they change.
func lineRenderer(w io.Writer) calculator.Renderer {
	last := ""
	return func(c *calculator.Calculator) {
		line := fmt.Sprintf("[%s] %s", strings.Join(c.Indicators(), " "), c.Display())
		if line == last {
			return
		}
		last = line
		fmt.Fprintln(w, line)
	}
}

func runShell(ctx context.Context, calc *calculator.Calculator, in io.Reader, out, errOut io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keys := newLineKeys(ctx, in, errOut)
	return calculator.Run(ctx, calc, keys, systemClock{start: time.Now()}, lineRenderer(out))
}

func runRepl(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := cfg.NewLogger(cmd.ErrOrStderr())

	model := calculator.ModelStandard
	if pro, _ := cfg.Professional(); pro {
		model = calculator.ModelProfessional
	}
	calc := calculator.New(model,
		calculator.WithTimeout(uint64(cfg.StoRclTimeout.Milliseconds())),
		calculator.WithPollInterval(uint32(cfg.PollInterval.Milliseconds())),
		calculator.WithLogger(logger),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = runShell(ctx, calc, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err == context.Canceled {
		return nil
	}
	return err
}
