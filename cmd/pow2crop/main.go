package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/menta2k/pow2crop/internal/config"
	"github.com/menta2k/pow2crop/internal/utils"
	"github.com/menta2k/pow2crop/pkg/batch"
	"github.com/menta2k/pow2crop/pkg/sizing"
	"github.com/menta2k/pow2crop/pkg/types"
)

func main() {
	var in, out, configPath string
	var uniform, exact, recursive bool

	flag.StringVar(&in, "in", ".", "input directory containing PNG files")
	flag.StringVar(&out, "out", "", "output directory (default: <in>/cropped)")
	flag.BoolVar(&uniform, "uniform", false, "share one output size across the batch, based on the largest content")
	flag.BoolVar(&exact, "exact", false, "use exact content dimensions instead of rounding up to powers of two")
	flag.BoolVar(&recursive, "recursive", false, "search the input directory recursively")
	flag.StringVar(&configPath, "config", "", "JSON config file (explicit flags override config values)")
	flag.Parse()

	if configPath == "" && utils.FileExists(config.GetConfigPath()) {
		configPath = config.GetConfigPath()
	}

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.LoadFromFile(configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}

	// Explicitly set flags win over config values.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "in":
			cfg.Input.Dir = in
		case "out":
			cfg.Output.Dir = out
		case "uniform":
			cfg.Sizing.Uniform = uniform
		case "exact":
			cfg.Sizing.Exact = exact
		case "recursive":
			cfg.Input.Recursive = recursive
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	if !utils.DirExists(cfg.Input.Dir) {
		log.Fatalf("input directory does not exist: %s", cfg.Input.Dir)
	}

	files, err := utils.ListPNGFiles(cfg.Input.Dir, cfg.Input.Recursive)
	if err != nil {
		log.Fatal(err)
	}
	if len(files) == 0 {
		log.Printf("no PNG files found in %s", cfg.Input.Dir)
		return
	}

	outDir := cfg.Output.Dir
	if outDir == "" {
		outDir = filepath.Join(cfg.Input.Dir, "cropped")
	}

	mode := sizing.Mode{Uniform: cfg.Sizing.Uniform, Exact: cfg.Sizing.Exact}
	results, err := batch.New(mode).Run(files, outDir)
	if err != nil {
		log.Fatal(err)
	}

	if mode.Uniform {
		for _, r := range results {
			if r.Outcome == types.OutcomeCompleted {
				log.Printf("using uniform size (%s) for all images: %s", mode, r.Target)
				break
			}
		}
	}

	var completed, skipped, errored int
	for _, r := range results {
		name := filepath.Base(r.File)
		switch r.Outcome {
		case types.OutcomeCompleted:
			completed++
			log.Printf("processed %s: %s -> %s", name, r.Content, r.Target)
		case types.OutcomeSkipped:
			skipped++
			log.Printf("skipping %s - completely transparent", name)
		case types.OutcomeErrored:
			errored++
			log.Printf("error processing %s: %v", name, r.Err)
		}
	}

	log.Printf("done: %d processed, %d skipped, %d errors -> %s", completed, skipped, errored, outDir)
}
