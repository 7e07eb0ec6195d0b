// Package convert turns point exports into mesh documents: it parses each
// file, segments the points into rows, triangulates them and writes the
// JSON, plus optional preview images.
package convert

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gridmesh/pkg/cfg"
	"gridmesh/pkg/fudata"
	"gridmesh/pkg/geometry"
	"gridmesh/pkg/logger"
	"gridmesh/pkg/mesh"
	"gridmesh/pkg/meshjson"
	"gridmesh/pkg/preview"
	"gridmesh/pkg/rows"
)

// Options configures a conversion run.
type Options struct {
	// In is a directory of subdirectories of .txt exports, or a single
	// .txt file.
	In string
	// Out is the directory the mesh documents are written under. Each
	// input subdirectory gets a matching output subdirectory.
	Out string

	Orientation rows.Orientation
	Tuning      cfg.Tuning

	// Blind triangulates every file as a complete lattice. Files whose rows
	// differ in width fall back to the regular triangulation.
	Blind bool

	// Diagnostic outputs written next to the JSON.
	PNG  bool
	SVG  bool
	Keys bool

	// Workers is the number of files converted at once. Values below 2
	// convert one file at a time in path order.
	Workers int

	Log *logger.Logger
}

// DefaultOptions returns the options used by the command line tool.
func DefaultOptions() Options {
	return Options{
		In:          filepath.Join("resources", "forudesigns", "in"),
		Out:         filepath.Join("resources", "forudesigns", "out"),
		Orientation: rows.Auto,
		Tuning:      cfg.Default(),
		Workers:     1,
	}
}

func (o Options) log() *logger.Logger {
	if o.Log == nil {
		return logger.Discard()
	}
	return o.Log
}

// Report describes the conversion of one file.
type Report struct {
	Input  string
	Output string

	Orientation   rows.Orientation
	LowConfidence bool
	Stats         rows.WidthStats
	Triangles     int
	Seams         int
	Coincident    int

	Err error
}

// Job is one input file and where its mesh document goes.
type Job struct {
	Input  string
	Output string
}

// outputPath maps in/<subdir>/<name>.txt to out/<subdir>/<name>.json.
func outputPath(out, subdir, filename string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	return filepath.Join(out, subdir, base+".json")
}

// File converts a single export.
func File(job Job, opts Options) Report {
	l := opts.log()
	rep := Report{Input: job.Input, Output: job.Output}
	l.Infof("Processing file %s", job.Input)

	pairs, err := fudata.ReadFile(job.Input)
	if err != nil {
		rep.Err = err
		return rep
	}

	if groups := geometry.Coincident(geometry.Befores(pairs)); len(groups) > 0 {
		rep.Coincident = len(groups)
		l.Warnf("%s: %d groups of coincident before points, first %v", job.Input, len(groups), groups[0])
	}

	res := rows.Chunk(pairs, opts.Orientation, opts.Tuning)
	rep.Orientation = res.Orientation
	rep.LowConfidence = res.LowConfidence
	if res.LowConfidence {
		l.Warnf("%s: only %d points, row detection will likely be problematic", job.Input, len(pairs))
	}

	rs := rows.Normalize(res.Rows)
	rep.Stats = rows.Stats(rs)
	l.Infof("Orientation %v, %d rows; max length: %d, median length: %g, most common length: %d",
		res.Orientation, rep.Stats.Rows, rep.Stats.Max, rep.Stats.Median, rep.Stats.Mode)
	l.Block(logger.LevelDebug, "Row lengths", fmt.Sprint(rs.Widths()))

	m := mesh.Build(rs)
	if opts.Blind {
		blind, err := mesh.BuildBlind(rs)
		switch {
		case errors.Is(err, mesh.ErrRaggedRows):
			l.Warnf("%s: %s, using row-wise triangulation", job.Input, err)
		case err != nil:
			rep.Err = err
			return rep
		default:
			m = blind
		}
	}
	if err := m.Validate(); err != nil {
		rep.Err = fmt.Errorf("%s: %w", job.Input, err)
		return rep
	}
	rep.Triangles = len(m.Triangles)
	rep.Seams = mesh.Seams(rs)
	if rep.Seams > 0 {
		l.Infof("%d row boundaries left open where the row length changes", rep.Seams)
	}

	if err := write(job.Output, m); err != nil {
		rep.Err = err
		return rep
	}
	l.Infof("Writing output file to %s", job.Output)

	if err := diagnostics(job.Output, m, res, rs, opts); err != nil {
		rep.Err = err
	}
	return rep
}

func write(path string, m mesh.Mesh) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	fq, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := meshjson.Encode(fq, m); err != nil {
		fq.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return fq.Close()
}

// diagnostics writes the preview files requested by opts next to output.
func diagnostics(output string, m mesh.Mesh, res rows.Result, rs rows.RowSet, opts Options) error {
	base := strings.TrimSuffix(output, filepath.Ext(output))
	po := preview.DefaultOptions()
	po.Widths = rs.Widths()
	po.Labels = true

	for _, v := range []preview.View{preview.Before, preview.After} {
		if opts.PNG {
			if err := preview.SavePNG(base+"."+v.String()+".png", m, v, po); err != nil {
				return err
			}
		}
		if opts.SVG {
			if err := preview.SaveSVG(base+"."+v.String()+".svg", m, v, po); err != nil {
				return err
			}
		}
	}
	if opts.Keys && len(res.Rows) > 0 {
		if err := preview.SaveKeys(base+".keys.png", res); err != nil {
			return err
		}
	}
	return nil
}

// Plan lists the jobs for opts.In in path order.
func Plan(opts Options) ([]Job, error) {
	fs, err := os.Stat(opts.In)
	if err != nil {
		return nil, err
	}
	if fs.Mode().IsRegular() {
		return []Job{{Input: opts.In, Output: outputPath(opts.Out, "", filepath.Base(opts.In))}}, nil
	}

	l := opts.log()
	subdirs, err := os.ReadDir(opts.In)
	if err != nil {
		return nil, err
	}
	var jobs []Job
	for _, subdir := range subdirs {
		path := filepath.Join(opts.In, subdir.Name())
		l.Infof("Checking path %s", path)
		if !subdir.IsDir() {
			continue
		}
		l.Infof("Found directory %s", path)

		files, err := os.ReadDir(path)
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			if f.IsDir() || filepath.Ext(f.Name()) != ".txt" {
				continue
			}
			jobs = append(jobs, Job{
				Input:  filepath.Join(path, f.Name()),
				Output: outputPath(opts.Out, subdir.Name(), f.Name()),
			})
		}
	}
	return jobs, nil
}

// Batch converts every job in opts.In. A failing file is recorded in its
// Report and does not stop the others; the returned error is reserved for
// problems finding the inputs and for cancellation of ctx.
func Batch(ctx context.Context, opts Options) ([]Report, error) {
	jobs, err := Plan(opts)
	if err != nil {
		return nil, err
	}
	return run(ctx, jobs, opts)
}

// Failed counts the reports that carry an error.
func Failed(reports []Report) int {
	n := 0
	for _, r := range reports {
		if r.Err != nil {
			n++
		}
	}
	return n
}
