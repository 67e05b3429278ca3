// Package main provides the micrograd CLI.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/config"
	"github.com/born-ml/micrograd/internal/data"
	"github.com/born-ml/micrograd/internal/train"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	args := os.Args[2:]
	switch os.Args[1] {
	case "version":
		fmt.Printf("micrograd %s\n", version)
	case "demo":
		runDemo(args)
	case "train":
		runTrain(args)
	case "moons":
		runMoons(args)
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("micrograd - scalar reverse-mode autodiff and MLP training")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Differentiate the reference expression (-dot graph.dot)")
	fmt.Println("  train      Train an MLP (-config run.yaml, -data file.csv)")
	fmt.Println("  moons      Write a synthetic two-moons dataset as CSV")
}

// runDemo evaluates the reference expression and prints g, dg/da and dg/db.
func runDemo(args []string) {
	fs := flag.NewFlagSet("demo", flag.ExitOnError)
	dotPath := fs.String("dot", "", "Write the computation graph in Graphviz DOT format to this file")
	_ = fs.Parse(args)

	a := autodiff.New(-4.0)
	b := autodiff.New(2.0)

	c := a.Add(b)
	d := a.Mul(b).Add(b.PowScalar(3))
	c = c.Add(c.AddScalar(1))
	c = c.Add(autodiff.Scalar(1).Add(c)).Add(a.Neg())
	d = d.Add(d.MulScalar(2)).Add(b.Add(a).ReLU())
	d = d.Add(autodiff.Scalar(3).Mul(d)).Add(b.Sub(a).ReLU())
	e := c.Sub(d)
	f := e.PowScalar(2)
	g := f.Div(autodiff.Scalar(2))
	g = g.Add(autodiff.Scalar(10).Div(f))

	g.Backward()

	fmt.Printf("g     = %.4f\n", g.Value())
	fmt.Printf("dg/da = %.4f\n", a.Grad())
	fmt.Printf("dg/db = %.4f\n", b.Grad())
	fmt.Printf("nodes = %d\n", len(autodiff.TopologicalOrder(g)))

	if *dotPath == "" {
		return
	}
	if err := writeFile(*dotPath, func(w io.Writer) error { return autodiff.WriteDOT(w, g) }); err != nil {
		log.Fatalf("Failed to write graph: %v", err)
	}
	fmt.Printf("graph written to %s (render with: dot -Tsvg %s -o graph.svg)\n", *dotPath, *dotPath)
}

func runTrain(args []string) {
	fs := flag.NewFlagSet("train", flag.ExitOnError)
	configPath := fs.String("config", "", "YAML run configuration (defaults to the two-moons setup)")
	dataPath := fs.String("data", "", "CSV dataset, overrides data.path")
	epochs := fs.Int("epochs", 0, "Number of epochs, overrides training.epochs")
	lr := fs.Float64("lr", 0, "Initial learning rate, overrides training.learning_rate")
	workers := fs.Int("workers", -1, "Evaluation workers, overrides training.workers")
	verbose := fs.Bool("v", false, "Log every optimisation step")
	dump := fs.Bool("dump-config", false, "Print the effective configuration and exit")
	_ = fs.Parse(args)

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *dataPath != "" {
		cfg.Data.Path = *dataPath
	}
	if *epochs > 0 {
		cfg.Training.Epochs = *epochs
	}
	if *lr > 0 {
		cfg.Training.LearningRate = *lr
	}
	if *workers >= 0 {
		cfg.Training.Workers = *workers
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if *dump {
		raw, err := cfg.Marshal()
		if err != nil {
			log.Fatalf("Failed to encode config: %v", err)
		}
		fmt.Print(string(raw))
		return
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	d, scaler, err := train.LoadData(cfg.Data, cfg.Model.Seed)
	if err != nil {
		log.Fatalf("Failed to load data: %v", err)
	}
	if scaler != nil {
		logger.Info("features standardised",
			slog.Any("mean", scaler.Mean),
			slog.Any("std", scaler.Std),
		)
	}

	trainer, err := train.FromConfig(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to build trainer: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	history, err := trainer.Fit(ctx, d)
	stop()
	if err != nil {
		log.Fatalf("Training failed: %v", err)
	}

	last := history.Last()
	fmt.Printf("%s\n", trainer.Model())
	fmt.Printf("epochs=%d loss=%.4f accuracy=%.1f%%\n", len(history), last.Loss, 100*last.Accuracy)
}

func runMoons(args []string) {
	fs := flag.NewFlagSet("moons", flag.ExitOnError)
	n := fs.Int("n", 100, "Number of samples")
	noise := fs.Float64("noise", 0.1, "Gaussian noise standard deviation")
	seed := fs.Int64("seed", 1337, "Random seed")
	outPath := fs.String("o", "", "Output file (default stdout)")
	_ = fs.Parse(args)

	//nolint:gosec // Using math/rand for reproducible datasets (not security-critical)
	d := data.Moons(*n, *noise, rand.New(rand.NewSource(*seed)))

	write := func(w io.Writer) error { return data.WriteCSV(w, d) }
	if *outPath == "" {
		if err := write(os.Stdout); err != nil {
			log.Fatalf("Failed to write dataset: %v", err)
		}
		return
	}
	if err := writeFile(*outPath, write); err != nil {
		log.Fatalf("Failed to write dataset: %v", err)
	}
}

// writeFile creates path, runs write on it and closes it. A close error is
// reported when write itself succeeded.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return write(f)
}
