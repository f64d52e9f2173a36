package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/clibind/argspec"
	"github.com/vk/clibind/bind"
	"github.com/vk/clibind/host"
	"github.com/vk/clibind/internal/ctxlog"
)

var (
	defaultMarker    = cty.StringVal(" ~")
	defaultCreateNew = cty.False
)

// stampApp declares the stamp command: two required file paths, an optional
// marker that may be given positionally or by name, and a flag permitting
// creation of the destination file.
func stampApp() host.App {
	spec, err := argspec.New([]argspec.Param{
		{Name: "in_file", Kind: argspec.PositionalOnly},
		{Name: "out_file", Kind: argspec.PositionalOnly},
		{Name: "marker", Kind: argspec.Ambiguous, Default: &defaultMarker},
		{Name: "create_new", Kind: argspec.NamedOnly, Default: &defaultCreateNew},
	})
	if err != nil {
		// The parameter list is static, so a failure here is a programming
		// error, not a user error.
		panic(err)
	}

	return host.App{
		Name: "stamp",
		Doc:  "Read a file and write a copy with a marker appended to every line.",
		Spec: spec,
		ParamDocs: map[string]string{
			"marker":     "text appended to each line.",
			"create_new": "create the destination file if it does not exist.",
		},
	}
}

// stamp is the hosted operation. The marker parameter is positional-or-named,
// so it arrives either as the third positional value or under its name.
func stamp(ctx context.Context, args *bind.BoundArgs) error {
	inFile := args.Positionals[0].AsString()
	outFile := args.Positionals[1].AsString()

	marker, ok := args.Named["marker"]
	if !ok {
		marker = args.Positionals[2]
	}
	if !marker.Type().Equals(cty.String) {
		return fmt.Errorf("marker requires a value, e.g. --marker=!!")
	}

	// A bare flag arrives as a bool; a valued form arrives as a string and
	// counts as an affirmative either way.
	cn := args.Named["create_new"]
	createNew := !cn.Type().Equals(cty.Bool) || cn.True()

	data, err := os.ReadFile(inFile)
	if err != nil {
		return fmt.Errorf("read %s: %w", inFile, err)
	}

	if !createNew {
		if _, err := os.Stat(outFile); err != nil {
			return fmt.Errorf("destination %s is not writable without --create-new: %w", outFile, err)
		}
	}

	var b strings.Builder
	if len(data) > 0 {
		for _, line := range strings.Split(strings.TrimSuffix(string(data), "\n"), "\n") {
			b.WriteString(line)
			b.WriteString(marker.AsString())
			b.WriteByte('\n')
		}
	}
	if err := os.WriteFile(outFile, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outFile, err)
	}

	ctxlog.FromContext(ctx).Debug("Stamped file written.",
		"source", inFile, "destination", outFile, "bytes", b.Len())
	return nil
}
