// Package check provides the self-diagnostic (check subcommand): it runs a
// fixed set of shape fixtures through the detection cascade and reports
// which strategy claimed each one. Useful after touching the classifier
// patterns or the strategy order.
package check

import (
	"fmt"

	"go.uber.org/zap"

	"zoneremap/internal/engine"
)

// fixture is one known input shape with the strategy expected to claim it.
type fixture struct {
	name     string
	input    string
	strategy string // Empty means the cascade must fail.
	rows     int
}

// fixtures covers every detector plus the terminal-failure path.
var fixtures = []fixture{
	{
		name:     "rowwise aligned",
		input:    "FDT325FAT22-001 FBB325 FBB325-3\nFDT326FAT23 FBB24 FBB326-1",
		strategy: "rowwise",
		rows:     2,
	},
	{
		name:     "vertical blank-separated blocks",
		input:    "FDT325FAT22\nFDT326FAT23\n\nFBB325\nFBB326\n\nFBB325-3\nFBB326-1",
		strategy: "vertical-blocks",
		rows:     2,
	},
	{
		name:     "vertical phase scan",
		input:    "FDT325FAT22\nFDT326FAT23\nFBB325\nFBB326\nFBB325-3\nFBB326-1",
		strategy: "vertical-blocks",
		rows:     2,
	},
	{
		name:     "single line bulk triples",
		input:    "FDT325FAT22 FBB325 FBB325-3 FDT326FAT23 FBB326 FBB326-1 FDT327FAT24 FBB327 FBB327-2",
		strategy: "single-line-bulk",
		rows:     3,
	},
	{
		name:     "wrapped zone merge",
		input:    "FDT325FAT22 FBB325\nFBB325-3",
		strategy: "wrap-merge",
		rows:     1,
	},
	{
		name:  "unrecognizable input",
		input: "hello\nworld",
	},
}

// Run executes every fixture and logs the outcome. Returns an error if any
// fixture was claimed by the wrong strategy or yielded the wrong row count;
// informational only otherwise.
func Run(log *zap.Logger) error {
	eng := &engine.Engine{}
	failures := 0

	for _, f := range fixtures {
		res, err := eng.Run(f.input)
		switch {
		case f.strategy == "":
			if err == nil {
				log.Error("fixture accepted but should fail",
					zap.String("fixture", f.name), zap.String("strategy", res.Strategy))
				failures++
				continue
			}
			log.Info("fixture fails as expected", zap.String("fixture", f.name))
		case err != nil:
			log.Error("fixture not recognized",
				zap.String("fixture", f.name), zap.Error(err))
			failures++
		case res.Strategy != f.strategy || len(res.Rows) != f.rows:
			log.Error("fixture claimed by wrong strategy",
				zap.String("fixture", f.name),
				zap.String("want", f.strategy), zap.String("got", res.Strategy),
				zap.Int("want_rows", f.rows), zap.Int("got_rows", len(res.Rows)))
			failures++
		default:
			log.Info("fixture ok",
				zap.String("fixture", f.name),
				zap.String("strategy", res.Strategy), zap.Int("rows", len(res.Rows)))
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d fixtures failed", failures, len(fixtures))
	}
	log.Info("all fixtures passed", zap.Int("fixtures", len(fixtures)))
	return nil
}
