// Package batch orchestrates cropping runs over sets of PNG files.
package batch

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/menta2k/pow2crop/internal/utils"
	"github.com/menta2k/pow2crop/pkg/bounds"
	"github.com/menta2k/pow2crop/pkg/compositor"
	"github.com/menta2k/pow2crop/pkg/mask"
	"github.com/menta2k/pow2crop/pkg/processing"
	"github.com/menta2k/pow2crop/pkg/sizing"
	"github.com/menta2k/pow2crop/pkg/types"
)

// Batch runs the decode -> mask -> bounds -> composite -> encode pipeline
// over a set of files. Failures are scoped to the file that caused them;
// the batch always attempts every file.
type Batch struct {
	processor *processing.Processor
	mode      sizing.Mode
}

// New creates a batch with the given sizing mode.
func New(mode sizing.Mode) *Batch {
	return &Batch{
		processor: processing.NewProcessor(),
		mode:      mode,
	}
}

// Mode returns the sizing mode the batch was created with.
func (b *Batch) Mode() sizing.Mode {
	return b.mode
}

// Run processes the files and writes one output per completed file under
// outDir, preserving base names. outDir is created if absent; failing to
// create it is the only error that aborts the run.
func (b *Batch) Run(files []string, outDir string) ([]types.Result, error) {
	if err := utils.EnsureDir(outDir); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", outDir, err)
	}
	if b.mode.Uniform {
		return b.runUniform(files, outDir), nil
	}
	results := make([]types.Result, len(files))
	for i, f := range files {
		results[i] = b.processFile(f, outDir)
	}
	return results, nil
}

// processFile handles one file in per-image mode: the target size depends
// only on the file's own content bounds.
func (b *Batch) processFile(path, outDir string) types.Result {
	res := types.Result{File: path}
	img, err := b.processor.LoadImage(path)
	if err != nil {
		res.Outcome = types.OutcomeErrored
		res.Err = err
		return res
	}
	box, ok := bounds.Find(mask.FromImage(img))
	if !ok {
		res.Outcome = types.OutcomeSkipped
		return res
	}
	res.Content = box.Dimensions()
	res.Target = b.mode.Target(res.Content)
	return b.writeOutput(img, box, res, outDir)
}

// runUniform is the two-phase pipeline: phase 1 measures content bounds for
// every file, a max reduction over the measurements resolves one shared
// target, and phase 2 re-decodes and composites each measured file. Images
// are not held across phases, so memory stays bounded to one file at a time.
func (b *Batch) runUniform(files []string, outDir string) []types.Result {
	results := make([]types.Result, len(files))
	boxes := make([]bounds.Box, len(files))
	pending := make([]int, 0, len(files))
	contents := make([]types.Dimensions, 0, len(files))

	for i, f := range files {
		res := types.Result{File: f}
		img, err := b.processor.LoadImage(f)
		if err != nil {
			res.Outcome = types.OutcomeErrored
			res.Err = err
			results[i] = res
			continue
		}
		box, ok := bounds.Find(mask.FromImage(img))
		if !ok {
			res.Outcome = types.OutcomeSkipped
			results[i] = res
			continue
		}
		res.Content = box.Dimensions()
		results[i] = res
		boxes[i] = box
		pending = append(pending, i)
		contents = append(contents, res.Content)
	}

	target := b.mode.Target(sizing.MaxDimensions(contents))
	for _, i := range pending {
		results[i].Target = target
		img, err := b.processor.LoadImage(files[i])
		if err != nil {
			// The file was readable in phase 1 but changed underneath us.
			results[i].Outcome = types.OutcomeErrored
			results[i].Err = err
			continue
		}
		results[i] = b.writeOutput(img, boxes[i], results[i], outDir)
	}
	return results
}

func (b *Batch) writeOutput(img *image.NRGBA, box bounds.Box, res types.Result, outDir string) types.Result {
	out := compositor.Composite(img, box, res.Target)
	dst := filepath.Join(outDir, filepath.Base(res.File))
	if err := b.processor.SaveImage(out, dst); err != nil {
		res.Outcome = types.OutcomeErrored
		res.Err = err
		return res
	}
	res.Outcome = types.OutcomeCompleted
	return res
}
