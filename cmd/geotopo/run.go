package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/Panjichuan/gempy/config"
	"github.com/Panjichuan/gempy/label"
	"github.com/Panjichuan/gempy/metrics"
	"github.com/Panjichuan/gempy/solution"
	"github.com/Panjichuan/gempy/topology"
	"github.com/Panjichuan/gempy/volio"
)

// run executes one analysis and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("geotopo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML or TOML config file")
	modelPath := fs.String("model", "", "model volume file (.gtv)")
	outPath := fs.String("out", "", "result document path (default stdout)")
	format := fs.String("format", "", "result format: json or yaml")
	faults := fs.Int("faults", 0, "expected number of fault blocks (0 accepts any)")
	layers := fs.Int("layers", 0, "number of lithology layers")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, "geotopo:", err)
		return 1
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "model":
			cfg.Model.Path = *modelPath
		case "out":
			cfg.Output.Path = *outPath
		case "format":
			cfg.Output.Format = *format
		case "faults":
			cfg.Model.Faults = *faults
		case "layers":
			cfg.Model.Layers = *layers
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, "geotopo:", err)
		return 1
	}

	logger, closer, err := cfg.Logging.NewLogger(stderr)
	if err != nil {
		fmt.Fprintln(stderr, "geotopo:", err)
		return 1
	}
	defer closer.Close()
	runID := uuid.NewString()
	logger = logger.With(slog.String("run_id", runID))

	reg := metrics.NewRegistry()
	start := time.Now()
	doc, res, err := analyse(cfg, logger)
	if err == nil {
		doc.RunID = runID
		err = writeDocument(cfg.Output, doc, stdout)
	}
	elapsed := time.Since(start)

	code := 0
	if err != nil {
		reg.RecordFailure(err, elapsed)
		logger.Error("analysis failed",
			slog.String("model", cfg.Model.Path),
			slog.String("defect", metrics.DefectKind(err)),
			slog.Any("error", err))
		code = 1
	} else {
		reg.RecordAnalysis(res, elapsed)
		logger.Info("analysis complete",
			slog.String("model", cfg.Model.Path),
			slog.Int("geobodies", len(doc.Nodes)),
			slog.Int("edges", len(doc.Edges)),
			slog.Duration("elapsed", elapsed))
	}

	if cfg.Metrics.Textfile != "" {
		if err := reg.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			logger.Error("failed to write metrics", slog.Any("error", err))
			code = 1
		}
	}
	return code
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		cfg := config.Default()
		return &cfg, nil
	}
	return config.Load(path)
}

// analyse loads the model and optional catalog and runs the pipeline.
func analyse(cfg *config.Config, logger *slog.Logger) (*Document, *topology.Result, error) {
	info, err := os.Stat(cfg.Model.Path)
	if err != nil {
		return nil, nil, err
	}
	model, err := volio.Open(cfg.Model.Path)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("model loaded",
		slog.String("size", humanize.Bytes(uint64(info.Size()))),
		slog.String("shape", model.Shape.String()),
		slog.Int("blocks", model.Blocks.Blocks()),
		slog.Int("realizations", model.Blocks.Realizations()))

	var catalog *solution.Catalog
	if cfg.Model.Catalog != "" {
		if catalog, err = volio.LoadCatalog(cfg.Model.Catalog); err != nil {
			return nil, nil, err
		}
		if n := len(catalog.FaultIDs()); n != model.Blocks.Faults() {
			return nil, nil, fmt.Errorf("%w: catalog lists %d faults, model has %d",
				label.ErrFaultCountMismatch, n, model.Blocks.Faults())
		}
	}
	if want := cfg.Model.Faults; want > 0 && want != model.Blocks.Faults() {
		return nil, nil, fmt.Errorf("%w: expected %d faults, model has %d",
			label.ErrFaultCountMismatch, want, model.Blocks.Faults())
	}

	lb, fb, err := solution.Extract(model.Blocks, model.Shape)
	if err != nil {
		return nil, nil, err
	}
	opts, err := cfg.Analysis.Options()
	if err != nil {
		return nil, nil, err
	}
	opts = append(opts, topology.WithLogger(logger))

	res, err := topology.Analyze(lb, fb, cfg.Model.Layers, opts...)
	if err != nil {
		return nil, nil, err
	}
	doc, err := newDocument(res, catalog)
	if err != nil {
		return nil, nil, err
	}
	return doc, res, nil
}

func writeDocument(out config.OutputConfig, doc *Document, stdout io.Writer) error {
	if out.Path == "" {
		return doc.Encode(stdout, out.Format)
	}
	f, err := os.Create(out.Path)
	if err != nil {
		return err
	}
	if err := doc.Encode(f, out.Format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
