package main

import (
	"fmt"
	"os"

	"github.com/on-the-ground/memoize_go/fib"
	"github.com/on-the-ground/memoize_go/memo"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

func main() {
	app := cli.NewApp()
	app.Name = "fib"
	app.Usage = "compute Fibonacci numbers with a memoized recursion"
	app.Flags = []cli.Flag{
		cli.UintFlag{
			Name:  "n",
			Value: 10,
			Usage: "index of the Fibonacci number (at most 93)",
		},
		cli.BoolFlag{
			Name:  "shared",
			Usage: "use a memo table that is safe for concurrent use",
		},
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "log every memo miss",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	n := c.Uint("n")
	if n > 93 {
		return fmt.Errorf("n = %d overflows uint64, use at most 93", n)
	}

	logger, err := newLogger(c.Bool("verbose"))
	if err != nil {
		return fmt.Errorf("fail to build logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	opts := []memo.Option{memo.WithLogger(logger)}
	if c.Bool("shared") {
		opts = append(opts, memo.WithSharedAccess())
	}
	f := fib.New(opts...)

	fmt.Printf("fib(%d) = %d\n", n, f.Of(n))

	stats := f.Memo().Stats()
	logger.Info("memo stats",
		zap.Stringer("memoizer_id", f.Memo().ID()),
		zap.Int("entries", f.Memo().Len()),
		zap.Uint64("hits", stats.Hits),
		zap.Uint64("misses", stats.Misses),
	)
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
